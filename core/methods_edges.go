// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/EdgeCount.
//
// Determinism:
//   - A neighbor is appended to Node.order only on first link; overwriting a
//     weight never reorders adjacency.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"math"
)

// AddEdge links the nodes wrapping a and b with an undirected edge of the
// given weight, overwriting any weight already stored for the pair.
//
// Steps:
//  1. Validate weight (non-negative, not NaN) and reject a == b.
//  2. Under mu write lock, resolve both payloads (ErrNodeNotFound).
//  3. Store weight in both directions; record first-link order.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(a, b T, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("%w: %v–%v weight=%g", ErrNegativeWeight, a, b, weight)
	}
	if a == b {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	nb, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}

	if _, linked := na.weights[nb]; !linked {
		na.order = append(na.order, nb)
		nb.order = append(nb.order, na)
		g.edges++
	}
	na.weights[nb] = weight
	nb.weights[na] = weight

	return nil
}

// HasEdge reports whether an edge links a and b. Absent payloads yield false.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(a, b T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, ok := g.index[a]
	if !ok {
		return false
	}
	nb, ok := g.index[b]
	if !ok {
		return false
	}
	_, linked := na.weights[nb]

	return linked
}

// Weight returns the weight of the edge between a and b.
//
// Errors:
//   - ErrNodeNotFound if either payload is absent.
//   - ErrNotNeighbors if both exist but share no edge.
func (g *Graph[T]) Weight(a, b T) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	na, ok := g.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	nb, ok := g.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}
	w, linked := na.weights[nb]
	if !linked {
		return 0, fmt.Errorf("%w: %v–%v", ErrNotNeighbors, a, b)
	}

	return w, nil
}

// EdgeCount returns the number of undirected edges (each pair counted once).
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
