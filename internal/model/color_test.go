package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "gray", want: Color{128, 128, 128, 255}},
		{in: " Green ", want: Color{0, 128, 0, 255}},
		{in: "#ff8000", want: Color{255, 128, 0, 255}},
		{in: "#FF800080", want: Color{255, 128, 0, 128}},
		{in: "00ff00", want: Color{0, 255, 0, 255}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "mauve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 255}

	assert.Equal(t, uint8(51), c.WithAlpha(0.2).A)
	assert.Equal(t, uint8(0), c.WithAlpha(-1).A)
	assert.Equal(t, uint8(255), c.WithAlpha(3).A)
	assert.Equal(t, uint8(10), c.WithAlpha(0.2).R)
}

func TestColor_RGBAIsNonPremultiplied(t *testing.T) {
	r, g, b, a := Color{R: 255, A: 128}.RGBA()

	assert.Equal(t, uint32(0x8080), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0x8080), a)
}

func TestColor_YAML(t *testing.T) {
	var doc struct {
		Fill Color `yaml:"fill"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("fill: '#102030'\n"), &doc))
	assert.Equal(t, Color{0x10, 0x20, 0x30, 255}, doc.Fill)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "'#102030'")

	doc.Fill.A = 0x40
	out, err = yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "'#10203040'")

	require.Error(t, yaml.Unmarshal([]byte("fill: chartreuse\n"), &doc))
}
