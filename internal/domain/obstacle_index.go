package domain

import (
	"errors"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"

	m "github.com/mouse-blink/visualize/internal/model"
)

// minExtent pads degenerate boxes; rtreego rejects zero-length sides.
const minExtent = 1e-9

var errNaNBound = errors.New("bound has a NaN coordinate")

// obstacleEntry wraps an obstacle for R-tree storage.
type obstacleEntry struct {
	bound orb.Bound
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.rect
}

// ObstacleIndex answers segment/obstacle intersection queries.
type ObstacleIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewObstacleIndex indexes the obstacles of a scenario. Obstacles with a
// negative extent are normalised; NaN extents are left out.
func NewObstacleIndex(obstacles []m.Obstacle) *ObstacleIndex {
	tree := rtreego.NewTree(2, 25, 50)
	size := 0

	for _, obs := range obstacles {
		bounds := obs.Bounds()
		if hasNaN(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y) {
			continue
		}

		b := toBound(bounds)

		rect, err := boundRect(b)
		if err != nil {
			continue
		}

		tree.Insert(&obstacleEntry{bound: b, rect: rect})
		size++
	}

	return &ObstacleIndex{tree: tree, size: size}
}

// Size returns the number of indexed obstacles.
func (ix *ObstacleIndex) Size() int {
	return ix.size
}

// SegmentHits counts the obstacles crossed or touched by segment a-b.
func (ix *ObstacleIndex) SegmentHits(a, b m.Point) int {
	seg := orb.LineString{{a.X, a.Y}, {b.X, b.Y}}

	query, err := boundRect(seg.Bound())
	if err != nil {
		return 0
	}

	hits := 0

	for _, item := range ix.tree.SearchIntersect(query) {
		entry := item.(*obstacleEntry)
		if len(clip.LineString(entry.bound, seg)) > 0 {
			hits++
		}
	}

	return hits
}

// CollidingSegments counts the segments of a polyline that hit at least one
// obstacle.
func (ix *ObstacleIndex) CollidingSegments(points []m.Point) int {
	count := 0

	for i := 0; i+1 < len(points); i++ {
		if ix.SegmentHits(points[i], points[i+1]) > 0 {
			count++
		}
	}

	return count
}

func toBound(b m.Bounds) orb.Bound {
	return orb.MultiPoint{{b.Min.X, b.Min.Y}, {b.Max.X, b.Max.Y}}.Bound()
}

func boundRect(b orb.Bound) (rtreego.Rect, error) {
	if hasNaN(b.Min[0], b.Min[1], b.Max[0], b.Max[1]) {
		return rtreego.Rect{}, errNaNBound
	}

	return rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{
			math.Max(b.Max[0]-b.Min[0], minExtent),
			math.Max(b.Max[1]-b.Min[1], minExtent),
		},
	)
}

func hasNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
