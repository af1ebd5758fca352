// SPDX-License-Identifier: MIT
// Package: shortway/builder
//
// api.go — BuildGraph, the single public constructor.
//
// Flow:
//   1. Resolve config from options.
//   2. Order points: start, intermediates (input order), end.
//   3. Add one node per point (duplicates surface core.ErrDuplicateNode).
//   4. For each point i, query the R-tree for candidates j > i, apply the exact
//      per-axis test, and link the pair with its Euclidean distance.

package builder

import (
	"github.com/katalvlaran/shortway/core"
	"github.com/katalvlaran/shortway/waypoint"
)

// BuildGraph builds the proximity graph over points.
//
// startID and endID must each name a point in points and must differ. Every
// point must have finite coordinates and a unique ID.
//
// Complexity: O(n log n + E) for n points and E candidate pairs.
func BuildGraph(points []waypoint.Point, startID, endID waypoint.ID, opts ...Option) (*core.Graph[waypoint.ID], error) {
	cfg := newBuilderConfig(opts...)

	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if startID == endID {
		return nil, builderErrorf("validate", "%w: %v", ErrStartIsEnd, startID)
	}

	ordered, err := orderPoints(points, startID, endID)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph[waypoint.ID]()
	for _, p := range ordered {
		if _, err = g.AddNode(p.ID); err != nil {
			return nil, builderErrorf("nodes", "%w", err)
		}
	}

	idx := newPointIndex(ordered)
	var candidates, rejected int
	for i, p := range ordered {
		orders, qerr := idx.within(p, cfg.xThreshold, cfg.yThreshold)
		if qerr != nil {
			return nil, builderErrorf("index", "query %v: %w", p, qerr)
		}
		for _, j := range orders {
			// Each unordered pair once; j == i is the point itself.
			if j <= i {
				continue
			}
			candidates++
			q := ordered[j]
			dx, dy := p.AxisDelta(q)
			if dx > cfg.xThreshold || dy > cfg.yThreshold {
				rejected++
				continue
			}
			if err = g.AddEdge(p.ID, q.ID, p.Distance(q)); err != nil {
				return nil, builderErrorf("edges", "%w", err)
			}
		}
	}

	cfg.logger.Debug("proximity graph built",
		"nodes", g.Len(),
		"edges", g.EdgeCount(),
		"candidates", candidates,
		"rejected", rejected,
		"x", cfg.xThreshold,
		"y", cfg.yThreshold,
	)

	return g, nil
}

// orderPoints validates points and returns them as start, intermediates in
// input order, end. Only the first occurrence of startID and endID takes the
// start and end slots; any repeat stays among the intermediates so that node
// insertion reports it as a duplicate.
func orderPoints(points []waypoint.Point, startID, endID waypoint.ID) ([]waypoint.Point, error) {
	var (
		start, end         waypoint.Point
		haveStart, haveEnd bool
	)
	mid := make([]waypoint.Point, 0, len(points))
	for _, p := range points {
		if err := p.Validate(); err != nil {
			return nil, builderErrorf("validate", "%w", err)
		}
		switch {
		case p.ID == startID && !haveStart:
			start, haveStart = p, true
		case p.ID == endID && !haveEnd:
			end, haveEnd = p, true
		default:
			mid = append(mid, p)
		}
	}
	if !haveStart {
		return nil, builderErrorf("validate", "%w: %v", ErrStartNotFound, startID)
	}
	if !haveEnd {
		return nil, builderErrorf("validate", "%w: %v", ErrEndNotFound, endID)
	}

	ordered := make([]waypoint.Point, 0, len(points))
	ordered = append(ordered, start)
	ordered = append(ordered, mid...)

	return append(ordered, end), nil
}
