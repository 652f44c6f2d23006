package controller

import (
	"fmt"
	"strconv"

	m "github.com/mouse-blink/visualize/internal/model"
)

var trackHeader = []string{"Track", "Agent", "Status", "Waypoints", "Length", "Collisions", "Tree vertices", "Tree edges", "Dangling"}

func scenarioRows(r m.Report) [][]string {
	rows := [][]string{
		{"Scenario", string(r.Scenario)},
		{"World", fmt.Sprintf("%s x %s", num(r.Width), num(r.Height))},
		{"Radius", num(r.Radius)},
		{"Obstacles", strconv.Itoa(r.Obstacles)},
		{"Obstacle area", num(r.ObstacleArea)},
	}

	if r.IndexedObstacles != r.Obstacles {
		rows = append(rows, []string{"Indexed obstacles", strconv.Itoa(r.IndexedObstacles)})
	}

	if r.Overlay != "" {
		rows = append(rows,
			[]string{"Path file", string(r.Overlay)},
			[]string{"Format", string(r.Mode)},
		)
	}

	return rows
}

func trackRows(r m.Report) [][]string {
	rows := make([][]string, 0, len(r.Tracks))

	for _, t := range r.Tracks {
		status, waypoints, length, collisions := "invalid", "-", "-", "-"
		if t.Valid {
			status = "ok"
			waypoints = strconv.Itoa(t.Waypoints)
			length = num(t.Length)
			collisions = strconv.Itoa(t.Collisions)
		}

		rows = append(rows, []string{
			t.Label,
			strconv.Itoa(int(t.Agent)),
			status,
			waypoints,
			length,
			collisions,
			strconv.Itoa(t.TreeVertices),
			strconv.Itoa(t.TreeEdges),
			strconv.Itoa(t.DanglingParents),
		})
	}

	return rows
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
