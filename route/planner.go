package route

import (
	"context"
	"errors"
	"fmt"
	"math"

	log "github.com/inconshreveable/log15/v3"

	"github.com/katalvlaran/shortway/bfs"
	"github.com/katalvlaran/shortway/builder"
	"github.com/katalvlaran/shortway/core"
	"github.com/katalvlaran/shortway/dijkstra"
	"github.com/katalvlaran/shortway/events"
	"github.com/katalvlaran/shortway/scene"
	"github.com/katalvlaran/shortway/traveler"
	"github.com/katalvlaran/shortway/waypoint"
)

// ErrNilScene is returned by NewPlanner for a nil scene.
var ErrNilScene = errors.New("route: scene is nil")

// Planner owns the graph for one scene. It is safe for concurrent Plan calls.
type Planner struct {
	scene      *scene.Scene
	graph      *core.Graph[waypoint.ID]
	index      waypoint.Index
	start, end waypoint.ID
	x, y       float64
	cfg        config
}

type config struct {
	bus         *events.Bus
	logger      log.Logger
	maxDistance float64
	maxLink     float64
	thresholds  *scene.Thresholds
}

// Option customizes a Planner.
type Option func(*config)

// WithThresholds overrides the scene's thresholds. Panics on a negative,
// NaN or infinite value.
func WithThresholds(x, y float64) Option {
	builder.WithThresholds(x, y) // validates

	return func(c *config) { c.thresholds = &scene.Thresholds{X: x, Y: y} }
}

// WithBus publishes PathFound for every found route, and hands b to
// travelers created by the planner.
func WithBus(b *events.Bus) Option {
	return func(c *config) { c.bus = b }
}

// WithLogger logs graph construction and every plan. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("route: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithMaxDistance reports no route when the shortest one is longer than d.
// Panics on a negative or NaN value.
func WithMaxDistance(d float64) Option {
	dijkstra.WithMaxDistance(d) // validates

	return func(c *config) { c.maxDistance = d }
}

// WithMaxLink makes links of length w or more impassable, for the search
// and for reachability reports alike. Panics on a non-positive or NaN value.
func WithMaxLink(w float64) Option {
	dijkstra.WithInfEdgeThreshold(w) // validates

	return func(c *config) { c.maxLink = w }
}

// NewPlanner validates s and builds its proximity graph.
func NewPlanner(s *scene.Scene, opts ...Option) (*Planner, error) {
	if s == nil {
		return nil, ErrNilScene
	}

	cfg := config{maxDistance: math.Inf(1), maxLink: math.Inf(1)}
	for _, opt := range opts {
		opt(&cfg)
	}
	base := cfg.logger
	if base == nil {
		base = log.New()
		base.SetHandler(log.DiscardHandler())
	}
	cfg.logger = base.New("module", "route", "scene", s.Name)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	start, end, err := s.Endpoints()
	if err != nil {
		return nil, err
	}
	index, err := waypoint.NewIndex(s.Points())
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	x, y := builder.DefaultXThreshold, builder.DefaultYThreshold
	switch {
	case cfg.thresholds != nil:
		x, y = cfg.thresholds.X, cfg.thresholds.Y
	case s.Thresholds != nil:
		x, y = s.Thresholds.X, s.Thresholds.Y
	}

	g, err := builder.BuildGraph(s.Points(), start, end,
		builder.WithThresholds(x, y),
		builder.WithLogger(base.New("scene", s.Name)),
	)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}

	return &Planner{
		scene: s,
		graph: g,
		index: index,
		start: start,
		end:   end,
		x:     x,
		y:     y,
		cfg:   cfg,
	}, nil
}

// Graph returns the planner's proximity graph. Callers must not mutate it.
func (p *Planner) Graph() *core.Graph[waypoint.ID] { return p.graph }

// Thresholds returns the thresholds the graph was built with.
func (p *Planner) Thresholds() (x, y float64) { return p.x, p.y }

// Endpoints returns the start and end waypoint IDs.
func (p *Planner) Endpoints() (start, end waypoint.ID) { return p.start, p.end }

// Scene returns the scene the planner was built from.
func (p *Planner) Scene() *scene.Scene { return p.scene }

// Plan searches for the shortest route from start to end.
func (p *Planner) Plan(ctx context.Context) (Route, error) {
	if err := ctx.Err(); err != nil {
		return Route{}, err
	}

	var settled int
	res, err := dijkstra.FindShortestPath(p.graph, p.start, p.end,
		dijkstra.WithMaxDistance(p.cfg.maxDistance),
		dijkstra.WithInfEdgeThreshold(p.cfg.maxLink),
		dijkstra.WithSettleHook(func(waypoint.ID, float64) { settled++ }),
	)
	if err != nil {
		return Route{}, fmt.Errorf("route: %w", err)
	}
	reach, err := bfs.Walk(ctx, p.graph, p.start,
		bfs.WithPassable(bfs.Below[waypoint.ID](p.cfg.maxLink)),
	)
	if err != nil {
		return Route{}, fmt.Errorf("route: reachability: %w", err)
	}

	r := Route{Scene: p.scene.Name, Found: res.Found, Settled: settled}
	if !res.Found {
		return p.noRoute(r, reach)
	}

	pts, ok := p.index.Resolve(res.Path)
	if !ok {
		return Route{}, fmt.Errorf("route: path %v: %w", res.Path, core.ErrNodeNotFound)
	}
	r.Path = res.Path
	r.Distance = res.Distance
	r.Hops = res.Hops()
	r.FewestHops, _ = reach.Hops(p.end)
	r.Bounds = waypoint.Bound(pts)
	r.Stops = make([]Stop, len(pts))
	for i, pt := range pts {
		r.Stops[i] = Stop{ID: pt.ID, X: pt.X, Y: pt.Y}
	}

	p.cfg.logger.Info("route found", "distance", r.Distance, "hops", r.Hops, "fewest_hops", r.FewestHops, "settled", settled)
	if p.cfg.bus != nil {
		p.cfg.bus.PublishPathFound(events.PathFound{
			Scene:    r.Scene,
			Distance: r.Distance,
			Path:     append([]waypoint.ID(nil), r.Path...),
		})
	}

	return r, nil
}

// noRoute fills in the reachability report for a missing route: how many
// waypoints the start connects to, and the fewest-link chain to the one of
// them nearest the end.
func (p *Planner) noRoute(r Route, reach *bfs.Reach[waypoint.ID]) (Route, error) {
	r.Path = []waypoint.ID{}
	r.Reachable = reach.Len()

	end := p.index[p.end]
	closest, best := p.start, math.Inf(1)
	for _, id := range reach.Order {
		if d := p.index[id].Distance(end); d < best {
			closest, best = id, d
		}
	}
	chain, err := reach.PathTo(closest)
	if err != nil {
		return Route{}, fmt.Errorf("route: %w", err)
	}
	r.Closest = chain

	p.cfg.logger.Info("no route",
		"reachable", r.Reachable,
		"waypoints", p.graph.Len(),
		"end_reachable", reach.Reached(p.end),
		"closest", closest,
		"closest_gap", best,
		"max_distance", p.cfg.maxDistance,
		"max_link", p.cfg.maxLink,
	)

	return r, nil
}

// Traveler returns a traveler for r that reports completion on the
// planner's bus.
func (p *Planner) Traveler(r Route) *traveler.Traveler {
	return traveler.New(r.Points(),
		traveler.WithBus(p.cfg.bus),
		traveler.WithScene(p.scene.Name),
	)
}
