package adapter

import (
	"math"
	"strconv"
	"strings"

	m "github.com/mouse-blink/visualize/internal/model"
)

// Figure margins in pixels around the plot area.
const (
	marginLeft   = 70.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 60.0
)

// Viewport maps world coordinates onto the pixel plot area of a figure with
// an equal aspect ratio. Pixel y grows downwards.
type Viewport struct {
	X, Y          float64 // top-left corner of the plot area
	Width, Height float64
	Scale         float64
	World         m.Bounds
}

// unitWorld replaces worlds that cannot be mapped onto pixels.
var unitWorld = m.Bounds{Max: m.Point{X: 1, Y: 1}}

// NewViewport fits fig.World into fig's pixel size minus the margins and
// centres it. Degenerate worlds are widened to one unit; worlds with an
// infinite bound or a scale that overflows become the unit square.
func NewViewport(fig m.Figure) Viewport {
	world := fig.World
	if !finite(world.Min.X, world.Min.Y, world.Max.X, world.Max.Y) {
		world = unitWorld
	}

	if !(world.Width() > 0) {
		world.Max.X = world.Min.X + 1
	}

	if !(world.Height() > 0) {
		world.Max.Y = world.Min.Y + 1
	}

	availW := math.Max(float64(fig.Width)-marginLeft-marginRight, 1)
	availH := math.Max(float64(fig.Height)-marginTop-marginBottom, 1)
	scale := math.Min(availW/world.Width(), availH/world.Height())

	if !finite(scale) || !(scale > 0) {
		world = unitWorld
		scale = math.Min(availW, availH)
	}

	w := world.Width() * scale
	h := world.Height() * scale

	return Viewport{
		X:      marginLeft + (availW-w)/2,
		Y:      marginTop + (availH-h)/2,
		Width:  w,
		Height: h,
		Scale:  scale,
		World:  world,
	}
}

// ToPixel converts a world point to pixel coordinates.
func (v Viewport) ToPixel(p m.Point) (float64, float64) {
	x := v.X + (p.X-v.World.Min.X)*v.Scale
	y := v.Y + v.Height - (p.Y-v.World.Min.Y)*v.Scale

	return x, y
}

// finite reports whether every value is neither infinite nor NaN.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}

	return true
}

// Ticks returns "nice" tick positions covering [lo, hi] with at most about
// maxTicks entries.
func Ticks(lo, hi float64, maxTicks int) []float64 {
	if !(hi > lo) || maxTicks < 2 {
		return []float64{lo}
	}

	step := niceNumber((hi-lo)/float64(maxTicks-1), true)
	first := math.Ceil(lo/step) * step

	var ticks []float64

	for t := first; t <= hi+step*1e-9; t += step {
		// snap away accumulated float error
		ticks = append(ticks, math.Round(t/step)*step)
	}

	return ticks
}

func niceNumber(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64

	switch {
	case round && f < 1.5, !round && f <= 1:
		nf = 1
	case round && f < 3, !round && f <= 2:
		nf = 2
	case round && f < 7, !round && f <= 5:
		nf = 5
	default:
		nf = 10
	}

	return nf * math.Pow(10, exp)
}

// markerPolygon returns the outline of a polygonal marker centred on (x, y)
// with the given diameter. Circles and crosses are drawn separately.
func markerPolygon(shape m.MarkerShape, x, y, size float64) [][2]float64 {
	r := size / 2

	switch shape {
	case m.MarkerTriangle:
		return [][2]float64{{x, y - r}, {x + r*0.866, y + r*0.5}, {x - r*0.866, y + r*0.5}}
	case m.MarkerSquare:
		return [][2]float64{{x - r, y - r}, {x + r, y - r}, {x + r, y + r}, {x - r, y + r}}
	case m.MarkerDiamond:
		return [][2]float64{{x, y - r}, {x + r, y}, {x, y + r}, {x - r, y}}
	}

	return nil
}

// formatTick renders a tick value without trailing zeros.
func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return trimFloat(v, 0)
	}

	return trimFloat(v, 6)
}

func trimFloat(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}

	if s == "-0" {
		return "0"
	}

	return s
}
