package model

import "fmt"

// MarkerShape is the glyph used to draw a point.
type MarkerShape string

// Supported marker shapes.
const (
	MarkerCircle   MarkerShape = "circle"
	MarkerTriangle MarkerShape = "triangle"
	MarkerSquare   MarkerShape = "square"
	MarkerDiamond  MarkerShape = "diamond"
	MarkerCross    MarkerShape = "cross"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MarkerShape) UnmarshalText(text []byte) error {
	shape := MarkerShape(text)
	switch shape {
	case MarkerCircle, MarkerTriangle, MarkerSquare, MarkerDiamond, MarkerCross:
		*s = shape
		return nil
	}

	return fmt.Errorf("unknown marker shape %q", text)
}

// Box is a filled rectangle in world coordinates.
type Box struct {
	Min       Point
	Width     float64
	Height    float64
	Fill      Color
	Edge      Color
	EdgeWidth float64
}

// Polyline is a connected run of segments in world coordinates.
// Width is in pixels.
type Polyline struct {
	Points []Point
	Color  Color
	Width  float64
}

// Marker is a point glyph. Size is the glyph diameter in pixels.
type Marker struct {
	At    Point
	Shape MarkerShape
	Size  float64
	Color Color
}

// Layer groups the elements painted together. Inside a layer boxes are
// painted first, then lines, then markers.
type Layer struct {
	Name    string
	Boxes   []Box
	Lines   []Polyline
	Markers []Marker
}

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Label  string
	Color  Color
	Shape  MarkerShape // empty for line entries
	Line   bool
	Weight float64
}

// Figure is a complete, immutable drawing. Painters turn it into pixels
// without any other state.
type Figure struct {
	Width  int
	Height int
	Title  string
	XLabel string
	YLabel string
	Grid   bool
	World  Bounds
	Layers []Layer
	Legend []LegendEntry
}

// Layer returns the layer with the given name.
func (f Figure) Layer(name string) (Layer, bool) {
	for _, l := range f.Layers {
		if l.Name == name {
			return l, true
		}
	}

	return Layer{}, false
}
