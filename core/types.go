// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Graph, sentinel errors and the NewGraph constructor.
// Policy:
//   - Node identity is payload equality; the graph never holds two nodes for one payload.
//   - Adjacency is stored on the node and mirrored for every edge (undirected).
//   - All mutable state is guarded by Graph.mu.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates AddNode was called with a payload already in the graph.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a payload absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrLoopNotAllowed indicates an edge from a node to itself was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotNeighbors indicates a weight lookup for two nodes that share no edge.
	ErrNotNeighbors = errors.New("core: nodes are not neighbors")
)

// Node wraps one payload and owns its weighted adjacency.
//
// weights maps neighbor → edge weight; order records neighbors in the order
// they were first linked so iteration is deterministic.
type Node[T comparable] struct {
	value   T
	owner   *Graph[T]
	weights map[*Node[T]]float64
	order   []*Node[T]
}

// Graph is an undirected weighted graph over comparable payloads.
//
// nodes preserves insertion order; index gives O(1) payload lookup.
// edges counts undirected edges (each pair once).
type Graph[T comparable] struct {
	mu sync.RWMutex

	nodes []*Node[T]
	index map[T]*Node[T]
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{
		nodes: make([]*Node[T], 0),
		index: make(map[T]*Node[T]),
	}
}
