package model

// TrackStyle styles one path and its tree.
type TrackStyle struct {
	Color Color `yaml:"color"`
}

// Style configures the renderer. The zero value is not useful; start from
// DefaultStyle and override.
type Style struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`
	Grid   bool   `yaml:"grid"`

	ObstacleFill      Color   `yaml:"obstacle_fill"`
	ObstacleEdge      Color   `yaml:"obstacle_edge"`
	ObstacleEdgeWidth float64 `yaml:"obstacle_edge_width"`

	StartColor   Color       `yaml:"start_color"`
	GoalColor    Color       `yaml:"goal_color"`
	Agent1Marker MarkerShape `yaml:"agent1_marker"`
	Agent2Marker MarkerShape `yaml:"agent2_marker"`
	EndpointSize float64     `yaml:"endpoint_size"`

	Tracks    []TrackStyle `yaml:"tracks"`
	PathWidth float64      `yaml:"path_width"`

	TreeEdgeWidth   float64     `yaml:"tree_edge_width"`
	TreeEdgeAlpha   float64     `yaml:"tree_edge_alpha"`
	TreeVertexShape MarkerShape `yaml:"tree_vertex_shape"`
	TreeVertexSize  float64     `yaml:"tree_vertex_size"`
	TreeVertexAlpha float64     `yaml:"tree_vertex_alpha"`
}

// DefaultStyle mirrors the classic planner plots: a 10x10 inch figure at
// 100 dpi, gray obstacles, green starts, red goals.
func DefaultStyle() Style {
	return Style{
		Width:  1000,
		Height: 1000,
		Title:  "Environment Visualization",
		XLabel: "X-axis",
		YLabel: "Y-axis",
		Grid:   true,

		ObstacleFill:      Color{128, 128, 128, 255},
		ObstacleEdge:      Color{0, 0, 0, 255},
		ObstacleEdgeWidth: 1,

		StartColor:   Color{0, 128, 0, 255},
		GoalColor:    Color{255, 0, 0, 255},
		Agent1Marker: MarkerCircle,
		Agent2Marker: MarkerTriangle,
		EndpointSize: 11,

		Tracks: []TrackStyle{
			{Color: Color{0, 0, 255, 255}},
			{Color: Color{0, 128, 0, 255}},
		},
		PathWidth: 2,

		TreeEdgeWidth:   0.5,
		TreeEdgeAlpha:   0.2,
		TreeVertexShape: MarkerCross,
		TreeVertexSize:  3,
		TreeVertexAlpha: 0.4,
	}
}

// MarkerFor returns the endpoint marker of an agent.
func (s Style) MarkerFor(agent Agent) MarkerShape {
	if agent == Agent2 {
		return s.Agent2Marker
	}

	return s.Agent1Marker
}

// TrackColor returns the color of the i-th track, cycling through Tracks.
func (s Style) TrackColor(i int) Color {
	if len(s.Tracks) == 0 {
		return Color{0, 0, 255, 255}
	}

	return s.Tracks[i%len(s.Tracks)].Color
}
