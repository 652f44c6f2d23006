package adapter

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/visualize/internal/model"
)

// recordingSurface logs drawing calls in order along with every
// coordinate handed to it.
type recordingSurface struct {
	ops    []string
	texts  []string
	coords []float64
	clip   bool
}

func (r *recordingSurface) Rect(x, y, w, h float64, _, _ color.Color, _ float64) {
	r.ops = append(r.ops, "rect")
	r.coords = append(r.coords, x, y, w, h)
}

func (r *recordingSurface) Polyline(pts [][2]float64, _ color.Color, _ float64) {
	r.ops = append(r.ops, "polyline")
	r.addPoints(pts)
}

func (r *recordingSurface) Polygon(pts [][2]float64, _ color.Color) {
	r.ops = append(r.ops, "polygon")
	r.addPoints(pts)
}

func (r *recordingSurface) Circle(x, y, rad float64, _ color.Color) {
	r.ops = append(r.ops, "circle")
	r.coords = append(r.coords, x, y, rad)
}

func (r *recordingSurface) Text(s string, x, y, _, _, _ float64, _ bool) {
	r.ops = append(r.ops, "text")
	r.texts = append(r.texts, s)
	r.coords = append(r.coords, x, y)
}

func (r *recordingSurface) addPoints(pts [][2]float64) {
	for _, p := range pts {
		r.coords = append(r.coords, p[0], p[1])
	}
}

func (r *recordingSurface) MeasureText(s string, size float64) float64 {
	return float64(len(s)) * size / 2
}

func (r *recordingSurface) Clip(_, _, _, _ float64) {
	r.clip = true
	r.ops = append(r.ops, "clip")
}

func (r *recordingSurface) ResetClip() {
	r.clip = false
	r.ops = append(r.ops, "reset")
}

func testFigure() m.Figure {
	return m.Figure{
		Width:  200,
		Height: 210,
		Title:  "Environment Visualization",
		XLabel: "X-axis",
		YLabel: "Y-axis",
		World:  m.Bounds{Max: m.Point{X: 10, Y: 10}},
		Layers: []m.Layer{
			{
				Name: "obstacles",
				Boxes: []m.Box{{
					Min: m.Point{X: 4, Y: 4}, Width: 2, Height: 2,
					Fill: m.Color{R: 128, G: 128, B: 128, A: 255},
					Edge: m.Color{A: 255}, EdgeWidth: 1,
				}},
			},
			{
				Name:  "track",
				Lines: []m.Polyline{{Points: []m.Point{{X: 1, Y: 1}, {X: 9, Y: 9}}, Color: m.Color{B: 255, A: 255}, Width: 2}},
				Markers: []m.Marker{
					{At: m.Point{X: 1, Y: 1}, Shape: m.MarkerCircle, Size: 8, Color: m.Color{G: 128, A: 255}},
					{At: m.Point{X: 9, Y: 9}, Shape: m.MarkerTriangle, Size: 8, Color: m.Color{R: 255, A: 255}},
					{At: m.Point{X: 2, Y: 2}, Shape: m.MarkerCross, Size: 3, Color: m.Color{B: 255, A: 100}},
				},
			},
		},
	}
}

func TestPainters_For(t *testing.T) {
	painters := DefaultPainters()

	p, err := painters.For(".png")
	require.NoError(t, err)
	assert.IsType(t, &PNGPainter{}, p)

	p, err = painters.For(".svg")
	require.NoError(t, err)
	assert.IsType(t, &SVGPainter{}, p)

	_, err = painters.For(".pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pdf")
}

func TestPaintFigure_Order(t *testing.T) {
	s := &recordingSurface{}
	fig := testFigure()
	fig.Legend = []m.LegendEntry{
		{Label: "Start 1", Color: m.Color{G: 128, A: 255}, Shape: m.MarkerCircle},
		{Label: "Path (RRT)", Color: m.Color{B: 255, A: 255}, Line: true, Weight: 2},
	}

	paintFigure(s, fig)

	require.NotEmpty(t, s.ops)
	assert.Equal(t, "rect", s.ops[0], "background first")
	assert.False(t, s.clip, "clip must be reset")

	clipAt := indexOf(s.ops, "clip")
	resetAt := indexOf(s.ops, "reset")
	require.True(t, clipAt >= 0 && resetAt > clipAt)

	// layers are painted inside the clip: box, path, circle, triangle, cross
	assert.Equal(t, []string{"rect", "polyline", "circle", "polygon", "polyline", "polyline"}, s.ops[clipAt+1:resetAt])

	assert.Contains(t, s.texts, "Environment Visualization")
	assert.Contains(t, s.texts, "X-axis")
	assert.Contains(t, s.texts, "Y-axis")
	assert.Contains(t, s.texts, "Start 1")
	assert.Contains(t, s.texts, "Path (RRT)")
	assert.Contains(t, s.texts, "10")
}

func TestPaintFigure_NoGridNoLegend(t *testing.T) {
	withGrid := &recordingSurface{}
	fig := testFigure()
	fig.Grid = true
	paintFigure(withGrid, fig)

	without := &recordingSurface{}
	fig.Grid = false
	paintFigure(without, fig)

	assert.Greater(t, len(withGrid.ops), len(without.ops))
	assert.NotContains(t, without.texts, "Start 1")
}

func TestPNGPainter_Paint(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPNGPainter().Paint(testFigure(), &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 210, img.Bounds().Dy())

	// world (5.5, 4.5) is inside the obstacle and clear of the path
	vp := NewViewport(testFigure())
	x, y := vp.ToPixel(m.Point{X: 5.5, Y: 4.5})
	r, g, b, _ := img.At(int(x), int(y)).RGBA()
	assert.InDelta(t, 128, r>>8, 2)
	assert.InDelta(t, 128, g>>8, 2)
	assert.InDelta(t, 128, b>>8, 2)

	// the corner of the canvas is white background
	r, g, b, _ = img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{255, 255, 255}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestPNGPainter_InvalidSize(t *testing.T) {
	fig := testFigure()
	fig.Width = 0

	err := NewPNGPainter().Paint(fig, &bytes.Buffer{})
	require.Error(t, err)
}

func TestSVGPainter_Paint(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewSVGPainter().Paint(testFigure(), &buf))

	var doc struct {
		XMLName xml.Name
		Width   string `xml:"width,attr"`
		Height  string `xml:"height,attr"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "svg", doc.XMLName.Local)
	assert.Equal(t, "200", doc.Width)
	assert.Equal(t, "210", doc.Height)
	assert.Contains(t, buf.String(), "<text")
	assert.Contains(t, buf.String(), "Environment Visualization")
}

func TestSVGPainter_EscapesText(t *testing.T) {
	var buf bytes.Buffer

	fig := testFigure()
	fig.Title = "Obstacles <A & B>"

	require.NoError(t, NewSVGPainter().Paint(fig, &buf))

	var doc struct {
		XMLName xml.Name
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, buf.String(), "Obstacles &lt;A &amp; B&gt;")
}

func TestSVGPainter_InvalidSize(t *testing.T) {
	fig := testFigure()
	fig.Height = -1

	err := NewSVGPainter().Paint(fig, &bytes.Buffer{})
	require.Error(t, err)
}

// nonFiniteFigures covers inputs whose pixel positions overflow.
func nonFiniteFigures() map[string]m.Figure {
	infiniteWorld := testFigure()
	infiniteWorld.World = m.Bounds{Max: m.Point{X: math.Inf(1), Y: 10}}

	infiniteEndpoint := testFigure()
	infiniteEndpoint.Layers[1].Lines[0].Points[0] = m.Point{X: math.Inf(1), Y: 1}
	infiniteEndpoint.Layers[1].Markers[0].At = m.Point{X: math.Inf(1), Y: 1}

	infiniteObstacle := testFigure()
	infiniteObstacle.Layers[0].Boxes[0].Width = math.Inf(1)

	tinyWorld := testFigure()
	tinyWorld.World = m.Bounds{Max: m.Point{X: 1e-320, Y: 1e-320}}

	return map[string]m.Figure{
		"infinite world":    infiniteWorld,
		"infinite endpoint": infiniteEndpoint,
		"infinite obstacle": infiniteObstacle,
		"scale overflow":    tinyWorld,
	}
}

func TestPaintFigure_OnlyFiniteCoordinates(t *testing.T) {
	for name, fig := range nonFiniteFigures() {
		t.Run(name, func(t *testing.T) {
			s := &recordingSurface{}
			paintFigure(s, fig)

			require.NotEmpty(t, s.coords)

			for i, v := range s.coords {
				require.False(t, math.IsInf(v, 0) || math.IsNaN(v), "coordinate %d is %v", i, v)
			}

			assert.Contains(t, s.texts, "Environment Visualization")
		})
	}
}

func TestPaintFigure_SplitsLineAtNonFinitePoint(t *testing.T) {
	fig := testFigure()
	fig.Layers = []m.Layer{{
		Name: "track",
		Lines: []m.Polyline{{
			Points: []m.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: math.NaN(), Y: 3}, {X: 4, Y: 4}, {X: 5, Y: 5}},
			Width:  1,
		}},
	}}

	s := &recordingSurface{}
	paintFigure(s, fig)

	clipAt := indexOf(s.ops, "clip")
	resetAt := indexOf(s.ops, "reset")
	assert.Equal(t, []string{"polyline", "polyline"}, s.ops[clipAt+1:resetAt])
}

func TestPNGPainter_PaintsNonFiniteInputs(t *testing.T) {
	for name, fig := range nonFiniteFigures() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, NewPNGPainter().Paint(fig, &buf))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 200, img.Bounds().Dx())
		})
	}
}

func TestLegendOrigin(t *testing.T) {
	fig := testFigure()
	fig.Layers = nil
	vp := NewViewport(fig)

	const w, h = 40.0, 30.0

	upperRight := vp.X + vp.Width - w - legendPadding
	upperLeft := vp.X + legendPadding
	top := vp.Y + legendPadding
	bottom := vp.Y + vp.Height - h - legendPadding

	t.Run("empty plot keeps upper right", func(t *testing.T) {
		x, y := legendOrigin(vp, fig, w, h)
		assert.InDelta(t, upperRight, x, 1e-9)
		assert.InDelta(t, top, y, 1e-9)
	})

	t.Run("marker in upper right moves legend left", func(t *testing.T) {
		fig := fig
		fig.Layers = []m.Layer{{Markers: []m.Marker{{At: m.Point{X: 8.5, Y: 9}, Shape: m.MarkerCircle, Size: 8}}}}

		x, y := legendOrigin(vp, fig, w, h)
		assert.InDelta(t, upperLeft, x, 1e-9)
		assert.InDelta(t, top, y, 1e-9)
	})

	t.Run("line across the top moves legend down", func(t *testing.T) {
		fig := fig
		fig.Layers = []m.Layer{{Lines: []m.Polyline{{Points: []m.Point{{X: 0, Y: 8.5}, {X: 10, Y: 8.5}}}}}}

		x, y := legendOrigin(vp, fig, w, h)
		assert.InDelta(t, upperLeft, x, 1e-9)
		assert.InDelta(t, bottom, y, 1e-9)
	})

	t.Run("box in the lower left leaves lower right", func(t *testing.T) {
		fig := fig
		fig.Layers = []m.Layer{
			{Lines: []m.Polyline{{Points: []m.Point{{X: 0, Y: 8.5}, {X: 10, Y: 8.5}}}}},
			{Boxes: []m.Box{{Min: m.Point{X: 0, Y: 0}, Width: 2, Height: 2}}},
		}

		x, y := legendOrigin(vp, fig, w, h)
		assert.InDelta(t, upperRight, x, 1e-9)
		assert.InDelta(t, bottom, y, 1e-9)
	})
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}

	return -1
}
