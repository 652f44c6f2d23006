package model

// Agent identifies one of the two robots of a scenario.
type Agent int

// Available agents.
const (
	Agent1 Agent = iota + 1
	Agent2
)

// Scenario is the static environment: world bounds, the start/goal pair of
// each agent, the robot radius and the obstacles.
type Scenario struct {
	Width     float64
	Height    float64
	Start1    Point
	Goal1     Point
	Start2    Point
	Goal2     Point
	Radius    float64
	Obstacles []Obstacle
}

// Endpoints returns the start and goal of the given agent.
// Unknown agents fall back to agent 1.
func (s Scenario) Endpoints(agent Agent) (start, goal Point) {
	if agent == Agent2 {
		return s.Start2, s.Goal2
	}

	return s.Start1, s.Goal1
}

// Bounds returns the world rectangle [0, Width] x [0, Height].
func (s Scenario) Bounds() Bounds {
	return Bounds{Max: Point{X: s.Width, Y: s.Height}}
}
