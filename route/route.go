package route

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/shortway/waypoint"
)

// Stop is one waypoint on a route.
type Stop struct {
	ID waypoint.ID `json:"id"`
	X  float64     `json:"x"`
	Y  float64     `json:"y"`
}

// Route is the answer to one Plan call.
//
// FewestHops is the fewest links any start-to-end chain needs, which can be
// below Hops when a longer-hop chain is shorter in distance.
//
// When Found is false, Path and Stops are empty, Distance is zero,
// Reachable holds the number of waypoints connected to the start (itself
// included) and Closest is the fewest-link chain from the start to the
// connected waypoint nearest the end.
type Route struct {
	Scene      string        `json:"scene,omitempty"`
	Found      bool          `json:"found"`
	Path       []waypoint.ID `json:"path"`
	Stops      []Stop        `json:"stops,omitempty"`
	Distance   float64       `json:"distance"`
	Hops       int           `json:"hops"`
	FewestHops int           `json:"fewest_hops"`
	Bounds     orb.Bound     `json:"bounds"`
	Settled    int           `json:"settled"`
	Reachable  int           `json:"reachable,omitempty"`
	Closest    []waypoint.ID `json:"closest,omitempty"`
}

// Points returns the route's stops as waypoint points, in travel order.
func (r Route) Points() []waypoint.Point {
	pts := make([]waypoint.Point, len(r.Stops))
	for i, s := range r.Stops {
		pts[i] = waypoint.New(s.ID, s.X, s.Y)
	}

	return pts
}
