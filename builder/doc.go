// Package builder turns a scene's labeled points into the proximity graph that
// routes are searched on.
//
// The package offers one entry point and a handful of functional options:
//
//   - BuildGraph(points, startID, endID, opts...) → *core.Graph[waypoint.ID]
//   - Configuration primitives:
//     – Option:            a function that mutates builderConfig before use.
//     – builderConfig:     thresholds and logger.
//   - Threshold options:
//     – WithThresholds(x, y), WithXThreshold(x), WithYThreshold(y).
//   - Diagnostics:
//     – WithLogger(log15.Logger): debug summary of nodes, edges and rejected candidates.
//
// Edge rule:
//
// Two distinct points i and j are linked iff
//
//	|xi − xj| ≤ XThreshold  and  |yi − yj| ≤ YThreshold
//
// and the edge weight is the Euclidean distance between them. Both bounds are
// inclusive. A point is never paired with itself, so the graph has no loops.
//
// Node order:
//
// Start first, then every other point in input order, then end. Node order
// drives neighbor order, which in turn drives tie-breaking in the search, so
// identical inputs always yield identical graphs and identical routes.
//
// Candidate pairs:
//
// Instead of testing all n² ordered pairs, each point queries an R-tree
// (github.com/dhconnelly/rtreego) for points inside its threshold box; the
// exact per-axis test above is then applied to every candidate, so the edge
// set is identical to the exhaustive nested loop.
//
// Guarantees:
//
//   - Deterministic output for identical inputs and options.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrStartNotFound, ErrEndNotFound, ErrStartIsEnd,
//     ErrNoPoints) plus core/waypoint sentinels, wrapped with %w.
//   - Complexity: O(n log n) index build, O(n·(log n + c)) queries where c is
//     the number of candidates per point.
package builder
