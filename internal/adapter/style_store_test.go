package adapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/visualize/internal/adapter/mocks"
	m "github.com/mouse-blink/visualize/internal/model"
)

func TestStyleStore_LoadDefault(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	store := NewStyleStore(fs)

	style, err := store.Load("")
	require.NoError(t, err)
	assert.Equal(t, m.DefaultStyle(), style)
}

func TestStyleStore_LoadOverrides(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	fs.EXPECT().ReadSource(m.Path("style.yaml")).Return(m.Source{
		Origin: "style.yaml",
		Data: []byte(`
width: 800
title: Warehouse
grid: false
obstacle_fill: "#333333"
agent2_marker: square
tracks:
  - color: red
`),
	}, nil)

	style, err := NewStyleStore(fs).Load("style.yaml")
	require.NoError(t, err)

	want := m.DefaultStyle()
	want.Width = 800
	want.Title = "Warehouse"
	want.Grid = false
	want.ObstacleFill = m.Color{R: 0x33, G: 0x33, B: 0x33, A: 255}
	want.Agent2Marker = m.MarkerSquare
	want.Tracks = []m.TrackStyle{{Color: m.Color{R: 255, A: 255}}}

	assert.Equal(t, want, style)
}

func TestStyleStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		readErr error
		wantErr string
	}{
		{name: "unreadable", readErr: errors.New("denied"), wantErr: "denied"},
		{name: "unknown key", data: "colour: red\n", wantErr: "colour"},
		{name: "bad color", data: "goal_color: mauve\n", wantErr: "mauve"},
		{name: "bad marker", data: "agent1_marker: star\n", wantErr: "star"},
		{name: "non positive size", data: "height: 0\n", wantErr: "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := adaptermocks.NewMockSourceFSAdapter(t)
			fs.EXPECT().ReadSource(m.Path("style.yaml")).
				Return(m.Source{Origin: "style.yaml", Data: []byte(tt.data)}, tt.readErr)

			_, err := NewStyleStore(fs).Load("style.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeStyle_EmptyDocumentKeepsStyle(t *testing.T) {
	style := m.DefaultStyle()

	require.NoError(t, DecodeStyle(strings.NewReader(""), &style))
	assert.Equal(t, m.DefaultStyle(), style)
}
