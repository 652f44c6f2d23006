package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	m "github.com/mouse-blink/visualize/internal/model"
)

// Inspect summarises a scenario and its overlay. Collision counts are
// informational; nothing is rejected.
func Inspect(scn m.Scenario, overlay *m.Overlay) m.Report {
	index := NewObstacleIndex(scn.Obstacles)

	report := m.Report{
		Width:            scn.Width,
		Height:           scn.Height,
		Radius:           scn.Radius,
		Obstacles:        len(scn.Obstacles),
		IndexedObstacles: index.Size(),
	}

	for _, obs := range scn.Obstacles {
		report.ObstacleArea += obs.Width * obs.Height
	}

	if overlay == nil {
		return report
	}

	report.Overlay = overlay.Source
	report.Mode = overlay.Mode

	for _, track := range overlay.Tracks {
		report.Tracks = append(report.Tracks, inspectTrack(scn, track, index))
	}

	return report
}

func inspectTrack(scn m.Scenario, track m.Track, index *ObstacleIndex) m.TrackReport {
	edges, dangling := track.Tree.Edges()

	tr := m.TrackReport{
		Label:           track.Label,
		Agent:           track.Agent,
		TreeVertices:    track.Tree.Len(),
		TreeEdges:       len(edges),
		DanglingParents: len(dangling),
	}

	waypoints, ok := track.Points()
	if track.Err != nil || !ok {
		return tr
	}

	start, goal := scn.Endpoints(track.Agent)

	points := make([]m.Point, 0, len(waypoints)+2)
	points = append(points, start)
	points = append(points, waypoints...)
	points = append(points, goal)

	tr.Valid = true
	tr.Waypoints = len(waypoints)
	tr.Length = planar.Length(toLineString(points))
	tr.Collisions = index.CollidingSegments(points)

	return tr
}

func toLineString(points []m.Point) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, orb.Point{p.X, p.Y})
	}

	return ls
}
