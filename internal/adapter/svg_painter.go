package adapter

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/llgcode/draw2d/draw2dsvg"

	m "github.com/mouse-blink/visualize/internal/model"
)

// SVGPainter writes figures as SVG documents with draw2d. Clipping is not
// applied; elements outside the world box stay visible.
type SVGPainter struct{}

// NewSVGPainter creates a new SVGPainter.
func NewSVGPainter() *SVGPainter {
	return &SVGPainter{}
}

// Paint renders fig and writes it to w as SVG.
func (p *SVGPainter) Paint(fig m.Figure, w io.Writer) error {
	if fig.Width <= 0 || fig.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %dx%d", fig.Width, fig.Height)
	}

	installFontCache()

	svg := draw2dsvg.NewSvg()
	svg.Width = strconv.Itoa(fig.Width)
	svg.Height = strconv.Itoa(fig.Height)
	// text stays <text> with the used glyphs embedded, instead of bare paths
	svg.FontMode = draw2dsvg.SvgFontMode

	gc := draw2dsvg.NewGraphicContext(svg)
	gc.SetFontData(goFontData)

	paintFigure(&svgSurface{gc: gc}, fig)

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")

	if err := enc.Encode(svg); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}

	return nil
}

type svgSurface struct {
	gc *draw2dsvg.GraphicContext
}

func (s *svgSurface) Rect(x, y, w, h float64, fill, edge color.Color, edgeWidth float64) {
	doFill := visible(fill)
	doStroke := visible(edge) && edgeWidth > 0

	if !doFill && !doStroke {
		return
	}

	draw2dkit.Rectangle(s.gc, x, y, x+w, y+h)

	switch {
	case doFill && doStroke:
		s.gc.SetFillColor(fill)
		s.gc.SetStrokeColor(edge)
		s.gc.SetLineWidth(edgeWidth)
		s.gc.FillStroke()
	case doFill:
		s.gc.SetFillColor(fill)
		s.gc.Fill()
	default:
		s.gc.SetStrokeColor(edge)
		s.gc.SetLineWidth(edgeWidth)
		s.gc.Stroke()
	}
}

func (s *svgSurface) Polyline(pts [][2]float64, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}

	s.gc.MoveTo(pts[0][0], pts[0][1])

	for _, p := range pts[1:] {
		s.gc.LineTo(p[0], p[1])
	}

	s.gc.SetStrokeColor(c)
	s.gc.SetLineWidth(width)
	s.gc.Stroke()
}

func (s *svgSurface) Polygon(pts [][2]float64, fill color.Color) {
	if len(pts) < 3 {
		return
	}

	s.gc.MoveTo(pts[0][0], pts[0][1])

	for _, p := range pts[1:] {
		s.gc.LineTo(p[0], p[1])
	}

	s.gc.Close()
	s.gc.SetFillColor(fill)
	s.gc.Fill()
}

func (s *svgSurface) Circle(x, y, r float64, fill color.Color) {
	draw2dkit.Circle(s.gc, x, y, r)
	s.gc.SetFillColor(fill)
	s.gc.Fill()
}

func (s *svgSurface) Text(text string, x, y, ax, ay, size float64, vertical bool) {
	s.gc.SetFontSize(size)
	s.gc.SetFillColor(black)

	w := s.MeasureText(text, size)
	dx := -ax * w
	dy := ay * size * 0.75

	// draw2dsvg writes text content as raw inner XML
	escaped := escapeXML(text)

	if !vertical {
		s.gc.FillStringAt(escaped, x+dx, y+dy)
		return
	}

	s.gc.Save()
	s.gc.Translate(x, y)
	s.gc.Rotate(-math.Pi / 2)
	s.gc.FillStringAt(escaped, dx, dy)
	s.gc.Restore()
}

func (s *svgSurface) MeasureText(text string, size float64) float64 {
	s.gc.SetFontSize(size)
	left, _, right, _ := s.gc.GetStringBounds(text)

	return right - left
}

func (s *svgSurface) Clip(float64, float64, float64, float64) {}

func (s *svgSurface) ResetClip() {}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))

	return b.String()
}
