package adapter

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"

	m "github.com/mouse-blink/visualize/internal/model"
)

// Painter turns a figure into an encoded image.
type Painter interface {
	Paint(fig m.Figure, w io.Writer) error
}

// Painters maps a lower-cased file extension to its painter.
type Painters map[string]Painter

// DefaultPainters returns the PNG and SVG painters.
func DefaultPainters() Painters {
	return Painters{
		".png": NewPNGPainter(),
		".svg": NewSVGPainter(),
	}
}

// For returns the painter registered for ext.
func (p Painters) For(ext string) (Painter, error) {
	painter, ok := p[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}

	return painter, nil
}

const (
	maxTicks       = 8
	tickLength     = 5.0
	legendPadding  = 8.0
	legendRow      = 20.0
	legendSwatch   = 24.0
	gridLineWidth  = 0.8
	frameLineWidth = 1.0
)

var (
	black     = color.Black
	white     = color.White
	gridColor = color.NRGBA{R: 176, G: 176, B: 176, A: 255}
	noColor   = color.Transparent
)

// surface is the drawing backend of one output format. Coordinates are
// pixels with y growing downwards.
type surface interface {
	Rect(x, y, w, h float64, fill, edge color.Color, edgeWidth float64)
	Polyline(pts [][2]float64, c color.Color, width float64)
	Polygon(pts [][2]float64, fill color.Color)
	Circle(x, y, r float64, fill color.Color)
	// Text draws s anchored at (x, y); ax and ay in [0, 1] pick the anchor
	// inside the text box as in gg.DrawStringAnchored.
	Text(s string, x, y, ax, ay, size float64, vertical bool)
	MeasureText(s string, size float64) float64
	Clip(x, y, w, h float64)
	ResetClip()
}

// paintFigure lays out axes, layers and legend on s.
func paintFigure(s surface, fig m.Figure) {
	vp := NewViewport(fig)

	s.Rect(0, 0, float64(fig.Width), float64(fig.Height), white, noColor, 0)

	xTicks := Ticks(vp.World.Min.X, vp.World.Max.X, maxTicks)
	yTicks := Ticks(vp.World.Min.Y, vp.World.Max.Y, maxTicks)

	if fig.Grid {
		paintGrid(s, vp, xTicks, yTicks)
	}

	s.Clip(vp.X, vp.Y, vp.Width, vp.Height)

	for _, layer := range fig.Layers {
		paintLayer(s, vp, layer)
	}

	s.ResetClip()

	paintAxes(s, vp, fig, xTicks, yTicks)
	paintLegend(s, vp, fig)
}

func paintGrid(s surface, vp Viewport, xTicks, yTicks []float64) {
	for _, t := range xTicks {
		x, _ := vp.ToPixel(m.Point{X: t, Y: vp.World.Min.Y})
		s.Polyline([][2]float64{{x, vp.Y}, {x, vp.Y + vp.Height}}, gridColor, gridLineWidth)
	}

	for _, t := range yTicks {
		_, y := vp.ToPixel(m.Point{X: vp.World.Min.X, Y: t})
		s.Polyline([][2]float64{{vp.X, y}, {vp.X + vp.Width, y}}, gridColor, gridLineWidth)
	}
}

// paintLayer draws a layer in pixel space. Anything whose pixel position is
// not finite is left out; rasterizers never terminate on such coordinates.
// Polylines are split around non-finite points.
func paintLayer(s surface, vp Viewport, layer m.Layer) {
	for _, b := range layer.Boxes {
		x0, y0, x1, y1, ok := boxPixels(vp, b)
		if !ok {
			continue
		}

		s.Rect(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0), b.Fill, b.Edge, b.EdgeWidth)
	}

	for _, line := range layer.Lines {
		for _, run := range linePixels(vp, line.Points) {
			s.Polyline(run, line.Color, line.Width)
		}
	}

	for _, mk := range layer.Markers {
		x, y := vp.ToPixel(mk.At)
		if !finite(x, y) {
			continue
		}

		paintMarker(s, mk.Shape, x, y, mk.Size, mk.Color)
	}
}

func boxPixels(vp Viewport, b m.Box) (x0, y0, x1, y1 float64, ok bool) {
	x0, y0 = vp.ToPixel(b.Min)
	x1, y1 = vp.ToPixel(m.Point{X: b.Min.X + b.Width, Y: b.Min.Y + b.Height})

	return x0, y0, x1, y1, finite(x0, y0, x1, y1)
}

// linePixels converts points to pixels and returns the runs of at least two
// consecutive finite points.
func linePixels(vp Viewport, points []m.Point) [][][2]float64 {
	var (
		runs [][][2]float64
		run  [][2]float64
	)

	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}

		run = nil
	}

	for _, p := range points {
		x, y := vp.ToPixel(p)
		if !finite(x, y) {
			flush()
			continue
		}

		run = append(run, [2]float64{x, y})
	}

	flush()

	return runs
}

func paintMarker(s surface, shape m.MarkerShape, x, y, size float64, c color.Color) {
	r := size / 2

	switch shape {
	case m.MarkerCircle:
		s.Circle(x, y, r, c)
	case m.MarkerCross:
		w := math.Max(1, size/4)
		s.Polyline([][2]float64{{x - r, y - r}, {x + r, y + r}}, c, w)
		s.Polyline([][2]float64{{x - r, y + r}, {x + r, y - r}}, c, w)
	default:
		s.Polygon(markerPolygon(shape, x, y, size), c)
	}
}

func paintAxes(s surface, vp Viewport, fig m.Figure, xTicks, yTicks []float64) {
	s.Rect(vp.X, vp.Y, vp.Width, vp.Height, noColor, black, frameLineWidth)

	bottom := vp.Y + vp.Height

	for _, t := range xTicks {
		x, _ := vp.ToPixel(m.Point{X: t, Y: vp.World.Min.Y})
		s.Polyline([][2]float64{{x, bottom}, {x, bottom + tickLength}}, black, frameLineWidth)
		s.Text(formatTick(t), x, bottom+tickLength+2, 0.5, 1, tickFontSize, false)
	}

	for _, t := range yTicks {
		_, y := vp.ToPixel(m.Point{X: vp.World.Min.X, Y: t})
		s.Polyline([][2]float64{{vp.X - tickLength, y}, {vp.X, y}}, black, frameLineWidth)
		s.Text(formatTick(t), vp.X-tickLength-3, y, 1, 0.5, tickFontSize, false)
	}

	centerX := vp.X + vp.Width/2
	centerY := vp.Y + vp.Height/2

	if fig.Title != "" {
		s.Text(fig.Title, centerX, vp.Y-12, 0.5, 0, titleFontSize, false)
	}

	if fig.XLabel != "" {
		s.Text(fig.XLabel, centerX, bottom+tickLength+tickFontSize+12, 0.5, 1, labelFontSize, false)
	}

	if fig.YLabel != "" {
		s.Text(fig.YLabel, vp.X-marginLeft+14, centerY, 0.5, 0.5, labelFontSize, true)
	}
}

// paintLegend draws the legend in the plot corner that hides the least data.
func paintLegend(s surface, vp Viewport, fig m.Figure) {
	entries := fig.Legend
	if len(entries) == 0 {
		return
	}

	textW := 0.0
	for _, e := range entries {
		textW = math.Max(textW, s.MeasureText(e.Label, legendFontSize))
	}

	w := legendPadding*3 + legendSwatch + textW
	h := legendPadding*2 + legendRow*float64(len(entries))
	x, y := legendOrigin(vp, fig, w, h)

	s.Rect(x, y, w, h, color.NRGBA{R: 255, G: 255, B: 255, A: 204}, gridColor, frameLineWidth)

	for i, e := range entries {
		cy := y + legendPadding + legendRow*(float64(i)+0.5)
		sx := x + legendPadding

		if e.Line {
			s.Polyline([][2]float64{{sx, cy}, {sx + legendSwatch, cy}}, e.Color, e.Weight)
		} else {
			paintMarker(s, e.Shape, sx+legendSwatch/2, cy, legendFontSize*0.8, e.Color)
		}

		s.Text(e.Label, sx+legendSwatch+legendPadding, cy, 0, 0.5, legendFontSize, false)
	}
}

// legendOrigin returns the top-left pixel of a w x h legend. Corners are
// tried upper right, upper left, lower left, lower right; the first one
// covering the fewest markers, line pieces and boxes wins.
func legendOrigin(vp Viewport, fig m.Figure, w, h float64) (float64, float64) {
	left := vp.X + legendPadding
	right := vp.X + vp.Width - w - legendPadding
	top := vp.Y + legendPadding
	bottom := vp.Y + vp.Height - h - legendPadding

	corners := []orb.Point{{right, top}, {left, top}, {left, bottom}, {right, bottom}}

	best, bestCount := corners[0], -1

	for _, c := range corners {
		area := orb.Bound{Min: c, Max: orb.Point{c[0] + w, c[1] + h}}

		if n := coveredData(vp, fig, area); bestCount < 0 || n < bestCount {
			best, bestCount = c, n
		}
	}

	return best[0], best[1]
}

// coveredData counts the figure elements drawn inside area.
func coveredData(vp Viewport, fig m.Figure, area orb.Bound) int {
	n := 0

	for _, layer := range fig.Layers {
		for _, b := range layer.Boxes {
			x0, y0, x1, y1, ok := boxPixels(vp, b)
			if ok && area.Intersects(orb.Bound{
				Min: orb.Point{math.Min(x0, x1), math.Min(y0, y1)},
				Max: orb.Point{math.Max(x0, x1), math.Max(y0, y1)},
			}) {
				n++
			}
		}

		for _, line := range layer.Lines {
			for _, run := range linePixels(vp, line.Points) {
				ls := make(orb.LineString, 0, len(run))
				for _, p := range run {
					ls = append(ls, orb.Point{p[0], p[1]})
				}

				n += len(clip.LineString(area, ls))
			}
		}

		for _, mk := range layer.Markers {
			x, y := vp.ToPixel(mk.At)
			if finite(x, y) && area.Contains(orb.Point{x, y}) {
				n++
			}
		}
	}

	return n
}
