package waypoint

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Index maps IDs to points for a fixed slice of points.
type Index map[ID]Point

// NewIndex indexes points by ID, rejecting duplicates and non-finite coordinates.
func NewIndex(points []Point) (Index, error) {
	idx := make(Index, len(points))
	for _, p := range points {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := idx[p.ID]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateID, p.ID)
		}
		idx[p.ID] = p
	}

	return idx, nil
}

// Resolve maps ids to points, in order. ok is false if any id is unknown.
func (idx Index) Resolve(ids []ID) (points []Point, ok bool) {
	points = make([]Point, 0, len(ids))
	for _, id := range ids {
		p, found := idx[id]
		if !found {
			return nil, false
		}
		points = append(points, p)
	}

	return points, true
}

// Bound returns the axis-aligned bounding box of points.
// An empty slice yields orb's empty bound (IsEmpty reports true).
func Bound(points []Point) orb.Bound {
	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = p.Position()
	}

	return mp.Bound()
}

// PathLength sums the Euclidean lengths of consecutive legs of points.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}

	return total
}
