package model

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a non-premultiplied RGBA color. It implements color.Color and
// decodes from "#rrggbb", "#rrggbbaa" or a small set of names.
type Color struct {
	R, G, B, A uint8
}

var namedColors = map[string]Color{
	"black": {0, 0, 0, 255},
	"white": {255, 255, 255, 255},
	"gray":  {128, 128, 128, 255},
	"grey":  {128, 128, 128, 255},
	"red":   {255, 0, 0, 255},
	"green": {0, 128, 0, 255},
	"blue":  {0, 0, 255, 255},
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithAlpha returns the color with its opacity set to alpha in [0, 1].
func (c Color) WithAlpha(alpha float64) Color {
	alpha = math.Max(0, math.Min(1, alpha))
	c.A = uint8(math.Round(alpha * 255))

	return c
}

// Hex formats the color as "#rrggbb" without alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor decodes a color name or hex string.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("unknown color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}

	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c.A == 255 {
		return []byte(c.Hex()), nil
	}

	return []byte(fmt.Sprintf("%s%02x", c.Hex(), c.A)), nil
}
