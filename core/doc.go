// Package core provides a small, thread-safe, in-memory undirected weighted
// graph keyed by comparable payloads.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes wrap a payload T (any comparable type, e.g. a waypoint ID) and are
//     kept in insertion order. Node identity is payload equality.
//   - Edges are undirected: AddEdge(a, b, w) sets weight(a→b) = weight(b→a) = w.
//     Re-adding an existing pair overwrites the weight (idempotent for equal w).
//   - Weights are float64 and must be non-negative; self-loops are rejected.
//   - Neighbor iteration order is the order in which each neighbor was first
//     linked, so every traversal over the same build sequence is reproducible.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(payload T) (*Node[T], error)      // O(1)
//	Find(payload T) (*Node[T], bool)          // O(1)
//	Has(payload T) bool                       // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b T, weight float64) error     // O(1) amortized
//	HasEdge(a, b T) bool                      // O(1)
//	Weight(a, b T) (float64, error)           // O(1)
//
//	// Query
//	Nodes() []*Node[T]                        // O(V), fresh snapshot each call
//	Len() int                                 // O(1)
//	EdgeCount() int                           // O(1)
//
//	// Per node
//	(*Node[T]).Value() T
//	(*Node[T]).Neighbors() []*Node[T]         // O(d), insertion order
//	(*Node[T]).EdgeWeight(n *Node[T]) (float64, error)
//	(*Node[T]).Degree() int
//
// Concurrency:
//
// A single sync.RWMutex guards nodes and adjacency. Mutations take the write
// lock, queries take the read lock, so a graph that is built once and then
// only read may be shared by any number of concurrent searches.
//
// Errors:
//
//	ErrDuplicateNode  – AddNode with a payload that is already present.
//	ErrNodeNotFound   – an edge or query references an absent payload.
//	ErrNegativeWeight – AddEdge with a negative or NaN weight.
//	ErrLoopNotAllowed – AddEdge(a, a, …).
//	ErrNotNeighbors   – EdgeWeight/Weight for a pair without an edge.
package core
