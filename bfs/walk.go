package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortway/core"
)

// Walk discovers every node connected to start through passable links.
//
// Validation order: ErrNilGraph, ErrStartNotFound. Cancellation of ctx is
// checked once per expanded node and returns ctx.Err().
//
// Complexity: O(V + E) time, O(V) space.
func Walk[T comparable](ctx context.Context, g *core.Graph[T], start T, opts ...Option[T]) (*Reach[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := walkConfig[T]{passable: func(T, T, float64) bool { return true }}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, ok := g.Find(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.Len()
	r := &Reach[T]{
		Start:  start,
		Order:  make([]T, 0, n),
		hops:   make(map[T]int, n),
		parent: make(map[T]T, n),
	}
	queue := make([]*core.Node[T], 0, n)

	r.hops[start] = 0
	r.Order = append(r.Order, start)
	queue = append(queue, root)

	// Order doubles as the queue's payload list; head walks both.
	for head := 0; head < len(queue); head++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[head]
		from := cur.Value()
		for _, nb := range cur.Neighbors() {
			to := nb.Value()
			if _, seen := r.hops[to]; seen {
				continue
			}
			w, err := cur.EdgeWeight(nb)
			if err != nil {
				return nil, fmt.Errorf("bfs: link %v-%v: %w", from, to, err)
			}
			if !cfg.passable(from, to, w) {
				continue
			}
			r.hops[to] = r.hops[from] + 1
			r.parent[to] = from
			r.Order = append(r.Order, to)
			queue = append(queue, nb)
		}
	}

	return r, nil
}
