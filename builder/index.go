package builder

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/shortway/waypoint"
)

// pointEntry wraps a point for R-tree storage. order is the point's node
// position in the graph, used to emit candidates deterministically.
type pointEntry struct {
	order int
	point waypoint.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *pointEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// pointIndex answers "which points lie inside this axis-aligned box".
type pointIndex struct {
	tree *rtreego.Rtree
}

// newPointIndex indexes points; entry i receives order i.
func newPointIndex(points []waypoint.Point) *pointIndex {
	tree := rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)
	for i, p := range points {
		tree.Insert(&pointEntry{
			order: i,
			point: p,
			bbox:  rtreego.Point{p.X, p.Y}.ToRect(queryPad),
		})
	}

	return &pointIndex{tree: tree}
}

// within returns the orders of all indexed points whose boxes intersect the
// box of half-widths (dx, dy) around center, sorted ascending. The result is
// a superset of the points satisfying the exact per-axis test.
func (pi *pointIndex) within(center waypoint.Point, dx, dy float64) ([]int, error) {
	mx, my := margin(center.X, dx), margin(center.Y, dy)
	box, err := rtreego.NewRect(
		rtreego.Point{center.X - dx - mx, center.Y - dy - my},
		[]float64{2 * (dx + mx), 2 * (dy + my)},
	)
	if err != nil {
		return nil, err
	}

	hits := pi.tree.SearchIntersect(box)
	orders := make([]int, 0, len(hits))
	for _, h := range hits {
		orders = append(orders, h.(*pointEntry).order)
	}
	sort.Ints(orders)

	return orders, nil
}

// margin scales queryPad to the magnitude of the box edge so the widening
// survives float rounding at large coordinates.
func margin(c, d float64) float64 {
	return queryPad * math.Max(1, math.Abs(c)+d)
}
