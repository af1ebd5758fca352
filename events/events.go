// Package events carries route notifications from the planner and traveler
// to whoever is interested (the CLI, the websocket hub, tests).
//
// Delivery is synchronous and in registration order. Listeners may be added
// at any time, including from inside another listener; a listener added during
// a publish first sees the next publish.
package events

import (
	"sync"

	"github.com/katalvlaran/shortway/waypoint"
)

// Event names as they appear on the wire.
const (
	NamePathFound         = "path_found"
	NameTraversalComplete = "traversal_complete"
)

// PathFound is published once per successful plan.
type PathFound struct {
	Scene    string        `json:"scene,omitempty"`
	Distance float64       `json:"distance"`
	Path     []waypoint.ID `json:"path"`
}

// TraversalComplete is published when a traveler reaches the last waypoint
// of its route. Visited lists every waypoint touched on the way, in first
// touch order.
type TraversalComplete struct {
	Scene   string        `json:"scene,omitempty"`
	Visited []waypoint.ID `json:"visited"`
}

// Bus is a typed listener registry. The zero value is ready to use.
type Bus struct {
	mu        sync.RWMutex
	pathFound []func(PathFound)
	completed []func(TraversalComplete)
}

// NewBus returns an empty Bus.
func NewBus() *Bus { return &Bus{} }

// OnPathFound registers fn. A nil fn is ignored.
func (b *Bus) OnPathFound(fn func(PathFound)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	b.pathFound = append(b.pathFound, fn)
	b.mu.Unlock()
}

// OnTraversalComplete registers fn. A nil fn is ignored.
func (b *Bus) OnTraversalComplete(fn func(TraversalComplete)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	b.completed = append(b.completed, fn)
	b.mu.Unlock()
}

// PublishPathFound delivers e to every PathFound listener.
func (b *Bus) PublishPathFound(e PathFound) {
	b.mu.RLock()
	ls := b.pathFound[:len(b.pathFound):len(b.pathFound)]
	b.mu.RUnlock()

	for _, fn := range ls {
		fn(e)
	}
}

// PublishTraversalComplete delivers e to every TraversalComplete listener.
func (b *Bus) PublishTraversalComplete(e TraversalComplete) {
	b.mu.RLock()
	ls := b.completed[:len(b.completed):len(b.completed)]
	b.mu.RUnlock()

	for _, fn := range ls {
		fn(e)
	}
}

// Listeners returns the number of registered listeners per event name.
func (b *Bus) Listeners() map[string]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return map[string]int{
		NamePathFound:         len(b.pathFound),
		NameTraversalComplete: len(b.completed),
	}
}
