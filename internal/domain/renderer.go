package domain

import (
	"fmt"

	m "github.com/mouse-blink/visualize/internal/model"
)

// Layer names of a built figure.
const (
	LayerObstacles = "obstacles"
	LayerEndpoints = "endpoints"
)

// TrackLayer names the layer holding a track.
func TrackLayer(label string) string {
	return "track:" + label
}

// BuildFigure lays out a scenario and an optional overlay as a figure.
// Layers are ordered obstacles, endpoints, then one layer per drawable
// track. Tracks with malformed data are skipped and reported.
func BuildFigure(scn m.Scenario, overlay *m.Overlay, style m.Style) (m.Figure, []m.Diagnostic) {
	fig := m.Figure{
		Width:  style.Width,
		Height: style.Height,
		Title:  style.Title,
		XLabel: style.XLabel,
		YLabel: style.YLabel,
		Grid:   style.Grid,
		World:  scn.Bounds(),
	}

	fig.Layers = append(fig.Layers, obstacleLayer(scn, style))

	endpoints, legend := endpointLayer(scn, style)
	fig.Layers = append(fig.Layers, endpoints)
	fig.Legend = append(fig.Legend, legend...)

	if overlay == nil {
		return fig, nil
	}

	var diags []m.Diagnostic

	for i, track := range overlay.Tracks {
		layer, entry, trackDiags, ok := trackLayer(scn, track, style.TrackColor(i), style)
		diags = append(diags, trackDiags...)

		if !ok {
			continue
		}

		fig.Layers = append(fig.Layers, layer)
		fig.Legend = append(fig.Legend, entry)
	}

	return fig, diags
}

func obstacleLayer(scn m.Scenario, style m.Style) m.Layer {
	layer := m.Layer{Name: LayerObstacles, Boxes: make([]m.Box, 0, len(scn.Obstacles))}

	for _, obs := range scn.Obstacles {
		layer.Boxes = append(layer.Boxes, m.Box{
			Min:       obs.Corner,
			Width:     obs.Width,
			Height:    obs.Height,
			Fill:      style.ObstacleFill,
			Edge:      style.ObstacleEdge,
			EdgeWidth: style.ObstacleEdgeWidth,
		})
	}

	return layer
}

func endpointLayer(scn m.Scenario, style m.Style) (m.Layer, []m.LegendEntry) {
	layer := m.Layer{Name: LayerEndpoints}

	var legend []m.LegendEntry

	for _, agent := range []m.Agent{m.Agent1, m.Agent2} {
		start, goal := scn.Endpoints(agent)
		shape := style.MarkerFor(agent)

		for _, ep := range []struct {
			role  string
			at    m.Point
			color m.Color
		}{
			{"Start", start, style.StartColor},
			{"Goal", goal, style.GoalColor},
		} {
			layer.Markers = append(layer.Markers, m.Marker{
				At:    ep.at,
				Shape: shape,
				Size:  style.EndpointSize,
				Color: ep.color,
			})
			legend = append(legend, m.LegendEntry{
				Label: fmt.Sprintf("%s %d", ep.role, agent),
				Color: ep.color,
				Shape: shape,
			})
		}
	}

	return layer, legend
}

// trackLayer draws the path [start] + waypoints + [goal], the tree edges and
// the tree vertices of one track.
func trackLayer(scn m.Scenario, track m.Track, color m.Color, style m.Style) (m.Layer, m.LegendEntry, []m.Diagnostic, bool) {
	if track.Err != nil {
		return m.Layer{}, m.LegendEntry{}, []m.Diagnostic{{
			Severity: m.SeverityError,
			Message:  fmt.Sprintf("Error: Invalid path format for %s: %v.", track.Label, track.Err),
		}}, false
	}

	waypoints, ok := track.Points()
	if !ok {
		return m.Layer{}, m.LegendEntry{}, []m.Diagnostic{{
			Severity: m.SeverityError,
			Message:  fmt.Sprintf("Error: Invalid path format for %s.", track.Label),
		}}, false
	}

	start, goal := scn.Endpoints(track.Agent)

	points := make([]m.Point, 0, len(waypoints)+2)
	points = append(points, start)
	points = append(points, waypoints...)
	points = append(points, goal)

	layer := m.Layer{Name: TrackLayer(track.Label)}
	layer.Lines = append(layer.Lines, m.Polyline{Points: points, Color: color, Width: style.PathWidth})

	edges, dangling := track.Tree.Edges()
	edgeColor := color.WithAlpha(style.TreeEdgeAlpha)

	for _, e := range edges {
		layer.Lines = append(layer.Lines, m.Polyline{
			Points: []m.Point{e.Child.At, e.Parent.At},
			Color:  edgeColor,
			Width:  style.TreeEdgeWidth,
		})
	}

	vertexColor := color.WithAlpha(style.TreeVertexAlpha)
	for _, v := range track.Tree.Vertices {
		layer.Markers = append(layer.Markers, m.Marker{
			At:    v.At,
			Shape: style.TreeVertexShape,
			Size:  style.TreeVertexSize,
			Color: vertexColor,
		})
	}

	var diags []m.Diagnostic
	if len(dangling) > 0 {
		diags = append(diags, m.Diagnostic{
			Severity: m.SeverityWarning,
			Message: fmt.Sprintf("Warning: %d tree vertices of %s reference unknown parents; their edges were skipped.",
				len(dangling), track.Label),
		})
	}

	entry := m.LegendEntry{Label: track.Label, Color: color, Line: true, Weight: style.PathWidth}

	return layer, entry, diags, true
}
