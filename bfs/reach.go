package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortway/core"
)

var (
	// ErrNilGraph is returned by Walk for a nil graph.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotFound wraps core.ErrNodeNotFound for a start absent from the graph.
	ErrStartNotFound = fmt.Errorf("bfs: start: %w", core.ErrNodeNotFound)

	// ErrNotReached is returned by Reach.PathTo for a node the walk never found.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Passable reports whether the link from -> to with weight w may be crossed.
type Passable[T comparable] func(from, to T, w float64) bool

// Below admits links strictly lighter than limit, the same rule
// dijkstra.WithInfEdgeThreshold applies.
func Below[T comparable](limit float64) Passable[T] {
	return func(_, _ T, w float64) bool { return w < limit }
}

// Option customizes a Walk.
type Option[T comparable] func(*walkConfig[T])

type walkConfig[T comparable] struct {
	passable Passable[T]
}

// WithPassable restricts the walk to links fn admits. A nil fn is ignored.
func WithPassable[T comparable](fn Passable[T]) Option[T] {
	return func(c *walkConfig[T]) {
		if fn != nil {
			c.passable = fn
		}
	}
}

// Reach is the outcome of one walk.
type Reach[T comparable] struct {
	// Start is the node the walk began at.
	Start T
	// Order lists every reached node in discovery order, Start first.
	Order []T

	hops   map[T]int
	parent map[T]T
}

// Len returns the number of reached nodes, Start included.
func (r *Reach[T]) Len() int { return len(r.Order) }

// Reached reports whether v is connected to Start.
func (r *Reach[T]) Reached(v T) bool {
	_, ok := r.hops[v]

	return ok
}

// Hops returns the fewest links between Start and v.
func (r *Reach[T]) Hops(v T) (int, bool) {
	h, ok := r.hops[v]

	return h, ok
}

// PathTo returns a fewest-link chain from Start to v, both inclusive.
func (r *Reach[T]) PathTo(v T) ([]T, error) {
	h, ok := r.hops[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, v)
	}

	path := make([]T, h+1)
	for cur := v; h >= 0; h-- {
		path[h] = cur
		cur = r.parent[cur]
	}

	return path, nil
}
