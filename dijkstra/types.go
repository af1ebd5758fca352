// Package dijkstra defines the result type, sentinel errors and functional
// options for the single-pair shortest-path search.
//
// Options:
//
//	– WithMaxDistance:      stop (no path) once the next settled distance exceeds the cap.
//	– WithInfEdgeThreshold: edges with weight >= threshold are treated as impassable.
//	– WithOnSettle:         hook invoked for every node as it is settled.
//	– WithSettleHook:       the same hook with a typed payload.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrStartNotFound   if the start payload is not a node (wraps core.ErrNodeNotFound).
//	– ErrEndNotFound     if the end payload is not a node (wraps core.ErrNodeNotFound).
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN (panic in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN (panic in the option constructor).
//	– ErrHookType        if a WithSettleHook type differs from the graph payload type.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/shortway/core"
)

// Sentinel errors returned by FindShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to FindShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates the start payload does not resolve to a node.
	ErrStartNotFound = fmt.Errorf("dijkstra: start: %w", core.ErrNodeNotFound)

	// ErrEndNotFound indicates the end payload does not resolve to a node.
	ErrEndNotFound = fmt.Errorf("dijkstra: end: %w", core.ErrNodeNotFound)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrHookType indicates a WithSettleHook whose type does not match the
	// graph's payload type.
	ErrHookType = errors.New("dijkstra: settle hook type does not match graph payload")
)

// Result is the outcome of one search.
//
// Found reports whether end is reachable from start. When it is, Path lists
// the payloads from start to end inclusive and Distance is the sum of edge
// weights along it. When it is not, Path is nil and Distance is +Inf.
type Result[T comparable] struct {
	Found    bool
	Path     []T
	Distance float64
}

// Hops returns the number of edges on the path (0 when not found or start == end).
func (r Result[T]) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Options configures the behavior of FindShortestPath.
//
// MaxDistance      – cap on settled distance; the search reports no path once
//
//	the next record to settle is farther. Must be ≥ 0. Default +Inf.
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default +Inf (no obstacles).
//
// OnSettle         – called with each node's payload and final distance, in
//
//	settling order. Default nil.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	OnSettle         func(value any, distance float64)

	hookType func(any) bool // set by WithSettleHook
}

// Option represents a functional option for configuring FindShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at and above which edges are skipped.
// Panics with ErrBadInfThreshold on a non-positive or NaN value.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers fn to observe every settled node. value is always
// the node's T payload; WithSettleHook spares callers the assertion. A nil fn
// clears any previously registered hook.
func WithOnSettle(fn func(value any, distance float64)) Option {
	return func(o *Options) {
		o.OnSettle, o.hookType = fn, nil
	}
}

// WithSettleHook is WithOnSettle with the payload typed. T must match the
// searched graph's payload type; FindShortestPath rejects a mismatch with
// ErrHookType before searching. A nil fn clears any registered hook.
func WithSettleHook[T comparable](fn func(value T, distance float64)) Option {
	return func(o *Options) {
		if fn == nil {
			o.OnSettle, o.hookType = nil, nil
			return
		}
		o.OnSettle = func(v any, d float64) { fn(v.(T), d) }
		o.hookType = func(v any) bool {
			_, ok := v.(T)
			return ok
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no distance cap, no impassable edges, no settle hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
