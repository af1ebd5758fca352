// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - Neighbors() returns neighbors in first-link order.
//
// Concurrency:
//   - AddNode under mu write lock; every query under mu read lock.
package core

import "fmt"

// AddNode inserts a new node wrapping payload.
//
// Implementation:
//   - Stage 1: Under mu write lock, reject a payload already in the index.
//   - Stage 2: Allocate the node, append it to the ordered catalog, index it.
//
// Returns:
//   - *Node[T]: the newly created node.
//   - error: ErrDuplicateNode (wrapped with the payload) if already present;
//     the graph is left unchanged in that case.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[T]) AddNode(payload T) (*Node[T], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[payload]; exists {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateNode, payload)
	}

	n := &Node[T]{
		value:   payload,
		owner:   g,
		weights: make(map[*Node[T]]float64),
	}
	g.nodes = append(g.nodes, n)
	g.index[payload] = n

	return n, nil
}

// Find returns the node wrapping payload, or (nil, false) if absent.
// Complexity: O(1).
func (g *Graph[T]) Find(payload T) (*Node[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.index[payload]

	return n, ok
}

// Has reports whether a node wrapping payload exists.
// Complexity: O(1).
func (g *Graph[T]) Has(payload T) bool {
	_, ok := g.Find(payload)

	return ok
}

// Nodes returns a snapshot of all nodes in insertion order.
//
// Each call allocates a fresh slice, so callers may iterate it while the
// graph is mutated without observing the mutation, and a second call always
// starts from the beginning with the current state.
//
// Complexity: O(V).
func (g *Graph[T]) Nodes() []*Node[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node[T], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Values returns the payloads of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Values() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.value
	}

	return out
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Value returns the payload wrapped by n.
func (n *Node[T]) Value() T { return n.value }

// Neighbors returns the nodes adjacent to n in first-link order.
// Complexity: O(deg(n)).
func (n *Node[T]) Neighbors() []*Node[T] {
	n.owner.mu.RLock()
	defer n.owner.mu.RUnlock()

	out := make([]*Node[T], len(n.order))
	copy(out, n.order)

	return out
}

// Degree returns the number of distinct neighbors of n.
func (n *Node[T]) Degree() int {
	n.owner.mu.RLock()
	defer n.owner.mu.RUnlock()

	return len(n.order)
}

// EdgeWeight returns the weight of the edge between n and neighbor.
//
// Errors:
//   - ErrNotNeighbors if the two nodes share no edge (including neighbor == nil).
//
// Complexity: O(1).
func (n *Node[T]) EdgeWeight(neighbor *Node[T]) (float64, error) {
	n.owner.mu.RLock()
	defer n.owner.mu.RUnlock()

	w, ok := n.weights[neighbor]
	if !ok {
		return 0, ErrNotNeighbors
	}

	return w, nil
}
