package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortway/core"
	"github.com/katalvlaran/shortway/searchlist"
)

// FindShortestPath computes the shortest path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrStartNotFound).
//  3. g must contain end (ErrEndNotFound).
//  4. a WithSettleHook must take T (ErrHookType).
//
// An unreachable end is not an error: the Result has Found == false.
// When start == end the path is [start] with distance 0.
//
// Ties between equal distances are broken first-in first-out: records keep
// node insertion order, and a record whose distance drops is placed after
// every pending record already at that distance.
//
// Complexity:
//
//   - Time:  O(V² + E) with the linked search list (each reposition walks the list).
//   - Space: O(V)
func FindShortestPath[T comparable](g *core.Graph[T], start, end T, opts ...Option) (Result[T], error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result[T]{}, ErrNilGraph
	}
	startNode, ok := g.Find(start)
	if !ok {
		return Result[T]{}, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	endNode, ok := g.Find(end)
	if !ok {
		return Result[T]{}, fmt.Errorf("%w: %v", ErrEndNotFound, end)
	}
	if cfg.hookType != nil && !cfg.hookType(start) {
		return Result[T]{}, fmt.Errorf("%w: %T", ErrHookType, start)
	}

	// 3) Run.
	r := &runner[T]{
		g:       g,
		options: cfg,
		end:     endNode,
	}
	r.init(startNode)
	last, err := r.process()
	if err != nil {
		return Result[T]{}, err
	}
	if last == nil {
		return Result[T]{Distance: math.Inf(1)}, nil
	}

	return Result[T]{Found: true, Path: last.path(), Distance: last.distance}, nil
}

// record is the per-search bookkeeping for one node.
type record[T comparable] struct {
	node     *core.Node[T]
	distance float64
	previous *record[T]
}

// path walks previous links back to the start and returns the payloads in
// start-to-end order.
func (rec *record[T]) path() []T {
	var n int
	for cur := rec; cur != nil; cur = cur.previous {
		n++
	}
	out := make([]T, n)
	for cur := rec; cur != nil; cur = cur.previous {
		n--
		out[n] = cur.node.Value()
	}

	return out
}

// runner holds the mutable state for a single search.
type runner[T comparable] struct {
	g       *core.Graph[T]               // read-only within the search
	options Options                      // MaxDistance, InfEdgeThreshold, OnSettle
	end     *core.Node[T]                // node whose settling ends the search
	list    *searchlist.List[*record[T]] // every unsettled record, ascending by distance
	pending map[*core.Node[T]]*record[T] // unsettled records by node
}

// init creates one record per node (0 for start, +Inf otherwise) and puts
// every record into both the search list and the pending map.
func (r *runner[T]) init(start *core.Node[T]) {
	nodes := r.g.Nodes()
	r.list = searchlist.New(func(rec *record[T]) float64 { return rec.distance })
	r.pending = make(map[*core.Node[T]]*record[T], len(nodes))

	for _, n := range nodes {
		rec := &record[T]{node: n, distance: math.Inf(1)}
		if n == start {
			rec.distance = 0
		}
		r.pending[n] = rec
		r.list.Add(rec)
	}
}

// process settles records in ascending distance order until end is settled
// (returning its record) or no reachable record remains (returning nil).
//
// Loop termination conditions:
//
//   - The list becomes empty.
//   - The next record is at +Inf: everything left is unreachable.
//   - The next record is beyond MaxDistance.
//   - The end record is settled.
func (r *runner[T]) process() (*record[T], error) {
	for {
		cur, ok := r.list.RemoveFirst()
		if !ok {
			return nil, nil
		}
		delete(r.pending, cur.node)

		if math.IsInf(cur.distance, 1) || cur.distance > r.options.MaxDistance {
			return nil, nil
		}
		if r.options.OnSettle != nil {
			r.options.OnSettle(cur.node.Value(), cur.distance)
		}
		if cur.node == r.end {
			return cur, nil
		}
		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}
}

// relax offers cur.distance + w to every pending neighbor and repositions
// those that strictly improve.
func (r *runner[T]) relax(cur *record[T]) error {
	for _, nb := range cur.node.Neighbors() {
		rec, ok := r.pending[nb]
		if !ok {
			continue
		}
		w, err := cur.node.EdgeWeight(nb)
		if err != nil {
			return fmt.Errorf("dijkstra: edge %v–%v: %w", cur.node.Value(), nb.Value(), err)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if cand := cur.distance + w; cand < rec.distance {
			rec.distance = cand
			rec.previous = cur
			r.list.Reposition(rec)
		}
	}

	return nil
}
