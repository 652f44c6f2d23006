package adapter

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font sizes in points, rendered at 72 dpi so points equal pixels.
const (
	titleFontSize  = 16
	labelFontSize  = 13
	tickFontSize   = 11
	legendFontSize = 12
)

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// newFace returns a Go Regular face of the given size.
func newFace(size float64) (font.Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, err
	}

	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// goFontData is the draw2d font key served by goFontCache.
var goFontData = draw2d.FontData{Name: "goregular", Family: draw2d.FontFamilySans, Style: draw2d.FontStyleNormal}

// goFontCache serves Go Regular to draw2d for every font request so SVG
// output never depends on font files on disk.
type goFontCache struct {
	once sync.Once
	font *truetype.Font
	err  error
}

func (c *goFontCache) Load(draw2d.FontData) (*truetype.Font, error) {
	c.once.Do(func() {
		c.font, c.err = truetype.Parse(goregular.TTF)
	})

	return c.font, c.err
}

func (c *goFontCache) Store(draw2d.FontData, *truetype.Font) {}

var installFontCache = sync.OnceFunc(func() {
	draw2d.SetFontCache(&goFontCache{})
})
