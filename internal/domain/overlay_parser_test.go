package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/visualize/internal/model"
)

func overlaySource(data string) m.Source {
	return m.Source{Origin: m.Path("path.txt"), Data: []byte(data)}
}

func TestParseOverlay_SingleWaypoints(t *testing.T) {
	ov := ParseOverlay(overlaySource("2 2\n3 4 5 6\n"))

	assert.Equal(t, m.OverlaySingle, ov.Mode)
	assert.Equal(t, m.Path("path.txt"), ov.Source)
	require.Len(t, ov.Tracks, 1)

	track := ov.Tracks[0]
	assert.Equal(t, "Path (RRT)", track.Label)
	assert.Equal(t, m.Agent1, track.Agent)
	require.NoError(t, track.Err)
	assert.Equal(t, []float64{2, 2, 3, 4, 5, 6}, track.Waypoints)
	assert.Equal(t, 0, track.Tree.Len())

	points, ok := track.Points()
	require.True(t, ok)
	assert.Equal(t, []m.Point{{X: 2, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, points)
}

func TestParseOverlay_SingleWithTree(t *testing.T) {
	data := "5 5\n" +
		"TREE\n" +
		"1 1 -1\n" +
		"2 2 0\n" +
		"3 3 1\n"

	ov := ParseOverlay(overlaySource(data))

	require.Len(t, ov.Tracks, 1)
	track := ov.Tracks[0]
	require.NoError(t, track.Err)
	assert.Equal(t, []float64{5, 5}, track.Waypoints)
	require.Equal(t, 3, track.Tree.Len())

	assert.True(t, track.Tree.Vertices[0].IsRoot())
	assert.Equal(t, m.VertexID(0), track.Tree.Vertices[1].Parent)
	assert.Equal(t, m.VertexID(1), track.Tree.Vertices[2].Parent)

	edges, dangling := track.Tree.Edges()
	assert.Empty(t, dangling)
	require.Len(t, edges, 2)
	assert.Equal(t, m.Point{X: 2, Y: 2}, edges[0].Child.At)
	assert.Equal(t, m.Point{X: 1, Y: 1}, edges[0].Parent.At)
}

func TestParseOverlay_SingleSkipsCommentsAndBlankLines(t *testing.T) {
	data := "# planner output\n" +
		"\n" +
		"1 1\n" +
		"   \n" +
		"# tree follows\n" +
		"TREE\n" +
		"# root\n" +
		"0 0 -1\n"

	ov := ParseOverlay(overlaySource(data))

	require.Len(t, ov.Tracks, 1)
	require.NoError(t, ov.Tracks[0].Err)
	assert.Equal(t, []float64{1, 1}, ov.Tracks[0].Waypoints)
	assert.Equal(t, 1, ov.Tracks[0].Tree.Len())
}

func TestParseOverlay_Dual(t *testing.T) {
	data := "PATH1\n" +
		"2 2 3 3\n" +
		"PATH2\n" +
		"2 8\n" +
		"TREE1\n" +
		"1 1 -1\n" +
		"2 2 0\n" +
		"TREE2\n" +
		"1 9 -1\n"

	ov := ParseOverlay(overlaySource(data))

	assert.Equal(t, m.OverlayDual, ov.Mode)
	require.Len(t, ov.Tracks, 2)

	assert.Equal(t, "Path 1 (RRT)", ov.Tracks[0].Label)
	assert.Equal(t, m.Agent1, ov.Tracks[0].Agent)
	assert.Equal(t, []float64{2, 2, 3, 3}, ov.Tracks[0].Waypoints)
	assert.Equal(t, 2, ov.Tracks[0].Tree.Len())

	assert.Equal(t, "Path 2 (RRT)", ov.Tracks[1].Label)
	assert.Equal(t, m.Agent2, ov.Tracks[1].Agent)
	assert.Equal(t, []float64{2, 8}, ov.Tracks[1].Waypoints)
	assert.Equal(t, 1, ov.Tracks[1].Tree.Len())
}

func TestParseOverlay_DualIgnoresDataBeforeFirstHeader(t *testing.T) {
	data := "7 7\n" +
		"  PATH1  \n" +
		"1 1\n"

	ov := ParseOverlay(overlaySource(data))

	require.Equal(t, m.OverlayDual, ov.Mode)
	assert.Equal(t, []float64{1, 1}, ov.Tracks[0].Waypoints)
	assert.Empty(t, ov.Tracks[1].Waypoints)
}

func TestParseOverlay_DualSectionsInAnyOrder(t *testing.T) {
	data := "TREE2\n" +
		"0 0 -1\n" +
		"PATH1\n" +
		"1 1\n" +
		"PATH2\n" +
		"2 2\n" +
		"PATH1\n" +
		"3 3\n"

	ov := ParseOverlay(overlaySource(data))

	require.Len(t, ov.Tracks, 2)
	assert.Equal(t, []float64{1, 1, 3, 3}, ov.Tracks[0].Waypoints)
	assert.Equal(t, []float64{2, 2}, ov.Tracks[1].Waypoints)
	assert.Equal(t, 1, ov.Tracks[1].Tree.Len())
}

func TestParseOverlay_OddWaypointCount(t *testing.T) {
	ov := ParseOverlay(overlaySource("1 2 3\n"))

	require.Len(t, ov.Tracks, 1)
	require.NoError(t, ov.Tracks[0].Err)

	_, ok := ov.Tracks[0].Points()
	assert.False(t, ok)
}

func TestParseOverlay_NonNumericTokenMarksOnlyThatTrack(t *testing.T) {
	data := "PATH1\n" +
		"1 1 abc\n" +
		"2 2\n" +
		"PATH2\n" +
		"4 4\n"

	ov := ParseOverlay(overlaySource(data))

	require.Len(t, ov.Tracks, 2)
	require.Error(t, ov.Tracks[0].Err)
	assert.True(t, errors.Is(ov.Tracks[0].Err, m.ErrInvalidFormat))
	assert.Contains(t, ov.Tracks[0].Err.Error(), "line 2")
	assert.Empty(t, ov.Tracks[0].Waypoints)

	require.NoError(t, ov.Tracks[1].Err)
	assert.Equal(t, []float64{4, 4}, ov.Tracks[1].Waypoints)
}

func TestParseOverlay_TreeRecords(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		wantLen  int
		wantErr  bool
		wantAt   m.Point
		wantRoot bool
	}{
		{name: "root", record: "1 2 -1", wantLen: 1, wantAt: m.Point{X: 1, Y: 2}, wantRoot: true},
		{name: "any negative parent is a root", record: "1 2 -7", wantLen: 1, wantAt: m.Point{X: 1, Y: 2}, wantRoot: true},
		{name: "extra fields dropped", record: "1 2 -1 99 100", wantLen: 1, wantAt: m.Point{X: 1, Y: 2}, wantRoot: true},
		{name: "too few fields ignored", record: "1 2", wantLen: 0},
		{name: "fractional parent", record: "1 2 0.5", wantErr: true},
		{name: "non numeric coordinate", record: "x 2 -1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ov := ParseOverlay(overlaySource("TREE\n" + tt.record + "\n"))
			track := ov.Tracks[0]

			if tt.wantErr {
				require.Error(t, track.Err)
				return
			}

			require.NoError(t, track.Err)
			require.Equal(t, tt.wantLen, track.Tree.Len())

			if tt.wantLen == 0 {
				return
			}

			assert.Equal(t, tt.wantAt, track.Tree.Vertices[0].At)
			assert.Equal(t, tt.wantRoot, track.Tree.Vertices[0].IsRoot())
		})
	}
}

func TestParseOverlay_ParentResolution(t *testing.T) {
	// V2 links to V0 even though V1 sits between them.
	data := "TREE\n" +
		"0 0 -1\n" +
		"5 5 0\n" +
		"1 1 0\n" +
		"9 9 7\n"

	ov := ParseOverlay(overlaySource(data))
	tree := ov.Tracks[0].Tree

	edges, dangling := tree.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, m.VertexID(2), edges[1].Child.ID)
	assert.Equal(t, m.Point{X: 0, Y: 0}, edges[1].Parent.At)

	require.Len(t, dangling, 1)
	assert.Equal(t, m.VertexID(3), dangling[0].ID)
}

func TestParseOverlay_EmptyFile(t *testing.T) {
	ov := ParseOverlay(overlaySource(""))

	assert.Equal(t, m.OverlaySingle, ov.Mode)
	require.Len(t, ov.Tracks, 1)
	assert.Empty(t, ov.Tracks[0].Waypoints)

	points, ok := ov.Tracks[0].Points()
	assert.True(t, ok)
	assert.Empty(t, points)
}
