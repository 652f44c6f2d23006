package adapter

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	m "github.com/mouse-blink/visualize/internal/model"
)

// PNGPainter rasterises figures with gg.
type PNGPainter struct{}

// NewPNGPainter creates a new PNGPainter.
func NewPNGPainter() *PNGPainter {
	return &PNGPainter{}
}

// Paint renders fig and writes it to w as PNG.
func (p *PNGPainter) Paint(fig m.Figure, w io.Writer) error {
	if fig.Width <= 0 || fig.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %dx%d", fig.Width, fig.Height)
	}

	s := &ggSurface{dc: gg.NewContext(fig.Width, fig.Height), faces: map[float64]font.Face{}}
	paintFigure(s, fig)

	if s.err != nil {
		return fmt.Errorf("render png: %w", s.err)
	}

	return s.dc.EncodePNG(w)
}

type ggSurface struct {
	dc    *gg.Context
	faces map[float64]font.Face
	err   error
}

func (s *ggSurface) Rect(x, y, w, h float64, fill, edge color.Color, edgeWidth float64) {
	s.dc.DrawRectangle(x, y, w, h)

	if visible(fill) {
		s.dc.SetColor(fill)
		s.dc.FillPreserve()
	}

	if visible(edge) && edgeWidth > 0 {
		s.dc.SetColor(edge)
		s.dc.SetLineWidth(edgeWidth)
		s.dc.StrokePreserve()
	}

	s.dc.ClearPath()
}

func (s *ggSurface) Polyline(pts [][2]float64, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}

	s.dc.NewSubPath()
	s.dc.MoveTo(pts[0][0], pts[0][1])

	for _, p := range pts[1:] {
		s.dc.LineTo(p[0], p[1])
	}

	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.dc.Stroke()
}

func (s *ggSurface) Polygon(pts [][2]float64, fill color.Color) {
	if len(pts) < 3 {
		return
	}

	s.dc.NewSubPath()
	s.dc.MoveTo(pts[0][0], pts[0][1])

	for _, p := range pts[1:] {
		s.dc.LineTo(p[0], p[1])
	}

	s.dc.ClosePath()
	s.dc.SetColor(fill)
	s.dc.Fill()
}

func (s *ggSurface) Circle(x, y, r float64, fill color.Color) {
	s.dc.DrawCircle(x, y, r)
	s.dc.SetColor(fill)
	s.dc.Fill()
}

func (s *ggSurface) Text(text string, x, y, ax, ay, size float64, vertical bool) {
	if !s.useFace(size) {
		return
	}

	s.dc.SetColor(black)

	if !vertical {
		s.dc.DrawStringAnchored(text, x, y, ax, ay)
		return
	}

	s.dc.Push()
	s.dc.RotateAbout(-math.Pi/2, x, y)
	s.dc.DrawStringAnchored(text, x, y, ax, ay)
	s.dc.Pop()
}

func (s *ggSurface) MeasureText(text string, size float64) float64 {
	if !s.useFace(size) {
		return 0
	}

	w, _ := s.dc.MeasureString(text)

	return w
}

func (s *ggSurface) Clip(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Clip()
}

func (s *ggSurface) ResetClip() {
	s.dc.ResetClip()
}

func (s *ggSurface) useFace(size float64) bool {
	face, ok := s.faces[size]
	if !ok {
		var err error

		face, err = newFace(size)
		if err != nil {
			if s.err == nil {
				s.err = err
			}

			return false
		}

		s.faces[size] = face
	}

	s.dc.SetFontFace(face)

	return true
}

func visible(c color.Color) bool {
	if c == nil {
		return false
	}

	_, _, _, a := c.RGBA()

	return a > 0
}
