package events_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortway/events"
	"github.com/katalvlaran/shortway/waypoint"
)

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	var b events.Bus
	var got []string
	b.OnPathFound(func(e events.PathFound) { got = append(got, "first") })
	b.OnPathFound(func(e events.PathFound) { got = append(got, "second") })

	b.PublishPathFound(events.PathFound{Distance: 3, Path: []waypoint.ID{0, 3}})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBus_PayloadReachesListener(t *testing.T) {
	b := events.NewBus()
	var found events.PathFound
	var done events.TraversalComplete
	b.OnPathFound(func(e events.PathFound) { found = e })
	b.OnTraversalComplete(func(e events.TraversalComplete) { done = e })

	b.PublishPathFound(events.PathFound{Scene: "lvl", Distance: 2.5, Path: []waypoint.ID{1, 2}})
	b.PublishTraversalComplete(events.TraversalComplete{Visited: []waypoint.ID{1, 2}})

	assert.Equal(t, "lvl", found.Scene)
	assert.Equal(t, 2.5, found.Distance)
	assert.Equal(t, []waypoint.ID{1, 2}, done.Visited)
}

func TestBus_NilListenerIgnored(t *testing.T) {
	b := events.NewBus()
	b.OnPathFound(nil)
	b.OnTraversalComplete(nil)

	assert.Equal(t, map[string]int{events.NamePathFound: 0, events.NameTraversalComplete: 0}, b.Listeners())
	assert.NotPanics(t, func() { b.PublishPathFound(events.PathFound{}) })
}

func TestBus_ListenerAddedDuringPublish(t *testing.T) {
	b := events.NewBus()
	calls := 0
	b.OnPathFound(func(events.PathFound) {
		calls++
		b.OnPathFound(func(events.PathFound) { calls += 10 })
	})

	b.PublishPathFound(events.PathFound{})
	require.Equal(t, 1, calls, "late listener waits for the next publish")

	b.PublishPathFound(events.PathFound{})
	assert.Equal(t, 1+1+10, calls)
}

func TestBus_ConcurrentUse(t *testing.T) {
	b := events.NewBus()
	var (
		mu    sync.Mutex
		count int
	)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.OnTraversalComplete(func(events.TraversalComplete) {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
		go func() {
			defer wg.Done()
			b.PublishTraversalComplete(events.TraversalComplete{})
		}()
	}
	wg.Wait()

	mu.Lock()
	before := count
	mu.Unlock()
	b.PublishTraversalComplete(events.TraversalComplete{})
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, before+8, count)
}
