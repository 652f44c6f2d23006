package model

// TrackReport summarises one track of an overlay.
type TrackReport struct {
	Label           string  `yaml:"label"`
	Agent           Agent   `yaml:"agent"`
	Valid           bool    `yaml:"valid"`
	Waypoints       int     `yaml:"waypoints"`
	Length          float64 `yaml:"length"`
	Collisions      int     `yaml:"collisions"` // path segments crossing an obstacle
	TreeVertices    int     `yaml:"tree_vertices"`
	TreeEdges       int     `yaml:"tree_edges"`
	DanglingParents int     `yaml:"dangling_parents"`
}

// Report is the result of inspecting a scenario and its overlay.
type Report struct {
	Scenario         Path          `yaml:"scenario"`
	Overlay          Path          `yaml:"path_file,omitempty"`
	Mode             OverlayMode   `yaml:"format,omitempty"`
	Width            float64       `yaml:"width"`
	Height           float64       `yaml:"height"`
	Radius           float64       `yaml:"radius"`
	Obstacles        int           `yaml:"obstacles"`
	IndexedObstacles int           `yaml:"indexed_obstacles"` // obstacles usable for collision checks
	ObstacleArea     float64       `yaml:"obstacle_area"`
	Tracks           []TrackReport `yaml:"tracks,omitempty"`
}
