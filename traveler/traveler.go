// Package traveler consumes a planned route one waypoint at a time.
//
// A Traveler starts targeting the first waypoint of its route (the start).
// Arriving at the current target drops it from the route and targets the
// next one; arriving at any other waypoint only marks it visited. When the
// last waypoint is reached the traveler is done and a TraversalComplete
// event is published with every visited waypoint.
//
// Motion itself is the caller's business: Heading reports the unit direction
// from a position to the current target and nothing more.
package traveler

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/shortway/events"
	"github.com/katalvlaran/shortway/waypoint"
)

// Traveler is safe for concurrent use.
type Traveler struct {
	mu      sync.Mutex
	scene   string
	route   []waypoint.Point
	visited []waypoint.ID
	seen    map[waypoint.ID]bool
	bus     *events.Bus
	done    bool
}

// Option customizes a Traveler.
type Option func(*Traveler)

// WithBus publishes TraversalComplete to b.
func WithBus(b *events.Bus) Option {
	return func(t *Traveler) { t.bus = b }
}

// WithScene tags published events with the scene name.
func WithScene(name string) Option {
	return func(t *Traveler) { t.scene = name }
}

// New returns a Traveler for route. An empty route is done from the start.
func New(route []waypoint.Point, opts ...Option) *Traveler {
	t := &Traveler{
		route: append([]waypoint.Point(nil), route...),
		seen:  make(map[waypoint.ID]bool, len(route)),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.done = len(t.route) == 0

	return t
}

// Target returns the waypoint currently headed for. ok is false once done.
func (t *Traveler) Target() (p waypoint.Point, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.route) == 0 {
		return waypoint.Point{}, false
	}

	return t.route[0], true
}

// Remaining returns the waypoints still to reach, current target first.
func (t *Traveler) Remaining() []waypoint.Point {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]waypoint.Point(nil), t.route...)
}

// Arrive records contact with waypoint id and reports whether it was the
// current target (and so advanced the route). Contact after the traveler is
// done is ignored.
func (t *Traveler) Arrive(id waypoint.ID) bool {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return false
	}
	if !t.seen[id] {
		t.seen[id] = true
		t.visited = append(t.visited, id)
	}
	if t.route[0].ID != id {
		t.mu.Unlock()
		return false
	}

	t.route = t.route[1:]
	if len(t.route) > 0 {
		t.mu.Unlock()
		return true
	}

	t.done = true
	e := events.TraversalComplete{
		Scene:   t.scene,
		Visited: append([]waypoint.ID(nil), t.visited...),
	}
	bus := t.bus
	t.mu.Unlock()

	if bus != nil {
		bus.PublishTraversalComplete(e)
	}

	return true
}

// Visited returns every waypoint touched so far, in first-touch order.
func (t *Traveler) Visited() []waypoint.ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]waypoint.ID(nil), t.visited...)
}

// Done reports whether the whole route has been traversed.
func (t *Traveler) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.done
}

// Heading returns the unit vector from `from` toward the current target.
// It is the zero vector when from is already on the target; ok is false
// once done.
func (t *Traveler) Heading(from orb.Point) (dir orb.Point, ok bool) {
	target, ok := t.Target()
	if !ok {
		return orb.Point{}, false
	}

	to := target.Position()
	d := planar.Distance(from, to)
	if d == 0 {
		return orb.Point{}, true
	}

	return orb.Point{(to[0] - from[0]) / d, (to[1] - from[1]) / d}, true
}
