// Package dijkstra finds the shortest path between two nodes of a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - FindShortestPath returns the full node sequence from start to end and
//     its total weight, or Found == false when end is unreachable.
//   - Every node gets a transient search record (distance, previous record)
//     that lives only for the duration of one call; nothing is written to the
//     graph, so independent searches may run concurrently over one graph.
//   - Unsettled records sit in a searchlist.List ordered by distance. Relaxing
//     an edge that strictly improves a record repositions it in place
//     (decrease-key), and a pending map answers "is this neighbor still
//     unsettled" in O(1).
//
// Determinism:
//
//   - Records enter the list in graph node order; neighbors are relaxed in
//     first-link order; equal distances are served first-in first-out.
//     Identical graphs therefore always produce identical paths, including
//     when several shortest paths tie.
//
// Key features:
//
//   - MaxDistance: give up once the nearest unsettled record is farther.
//   - InfEdgeThreshold: treat any edge with weight ≥ threshold as impassable.
//   - OnSettle / WithSettleHook: observe nodes in the order their distances
//     become final; WithSettleHook receives the payload as T.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil graph.
//   - ErrStartNotFound / ErrEndNotFound:
//     Returned if either payload is absent; both wrap core.ErrNodeNotFound.
//   - ErrBadMaxDistance / ErrBadInfThreshold:
//     Raised (via panic) by the option constructors on meaningless values.
//
// API reference:
//
//	func FindShortestPath[T comparable](
//	    g *core.Graph[T],
//	    start, end T,
//	    opts ...Option,
//	) (Result[T], error)
package dijkstra
