package model

import "math"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Bounds is an axis-aligned box given by its min and max corners.
type Bounds struct {
	Min, Max Point
}

// Width of the box along X.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height of the box along Y.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Obstacle is an axis-aligned rectangle anchored at its lower-left corner.
type Obstacle struct {
	Corner Point
	Width  float64
	Height float64
}

// Bounds returns the rectangle covered by the obstacle.
func (o Obstacle) Bounds() Bounds {
	return Bounds{
		Min: o.Corner,
		Max: Point{X: o.Corner.X + o.Width, Y: o.Corner.Y + o.Height},
	}
}
