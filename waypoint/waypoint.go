// Package waypoint defines the labeled 2D points routed over by the
// proximity graph, and the planar geometry used to weight edges.
package waypoint

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	// ErrUnknownRole indicates a role name that is not start, end or waypoint.
	ErrUnknownRole = errors.New("waypoint: unknown role")
	// ErrDuplicateID indicates two points share an ID.
	ErrDuplicateID = errors.New("waypoint: duplicate id")
	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("waypoint: coordinate must be finite")
)

// ID uniquely identifies a point within a scene.
type ID int

// String renders the ID for logs and errors.
func (id ID) String() string { return fmt.Sprintf("#%d", int(id)) }

// Role tags a point as the route's start, its end, or an intermediate stop.
type Role int

const (
	// Intermediate is the zero Role: any point that is neither start nor end.
	Intermediate Role = iota
	// Start marks the single point the route begins at.
	Start
	// End marks the single point the route finishes at.
	End
)

// String returns the scene-file spelling of r.
func (r Role) String() string {
	switch r {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "waypoint"
	}
}

// ParseRole maps a scene-file role name to a Role. The empty string and
// "waypoint" both mean Intermediate.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "waypoint", "intermediate":
		return Intermediate, nil
	case "start":
		return Start, nil
	case "end":
		return End, nil
	}

	return Intermediate, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Point is an immutable labeled position.
type Point struct {
	ID ID
	X  float64
	Y  float64
}

// New returns a Point with the given id and coordinates.
func New(id ID, x, y float64) Point {
	return Point{ID: id, X: x, Y: y}
}

// Position returns p as an orb.Point.
func (p Point) Position() orb.Point { return orb.Point{p.X, p.Y} }

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return planar.Distance(p.Position(), other.Position())
}

// AxisDelta returns |p.X-other.X| and |p.Y-other.Y|.
func (p Point) AxisDelta(other Point) (dx, dy float64) {
	return math.Abs(p.X - other.X), math.Abs(p.Y - other.Y)
}

// Validate reports a non-finite coordinate.
func (p Point) Validate() error {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return fmt.Errorf("%w: %v (%g, %g)", ErrBadCoordinate, p.ID, p.X, p.Y)
	}

	return nil
}

// String renders p as "#id(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("%v(%g, %g)", p.ID, p.X, p.Y)
}
