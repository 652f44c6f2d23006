package model

// OverlayMode tells which on-disk layout a path file used.
type OverlayMode string

const (
	// OverlaySingle is a bare waypoint stream optionally followed by a TREE section.
	OverlaySingle OverlayMode = "single"
	// OverlayDual holds PATH1/PATH2/TREE1/TREE2 sections.
	OverlayDual OverlayMode = "dual"
)

// VertexID is the stable identifier of a tree vertex: its record ordinal
// inside the tree section, starting at 0.
type VertexID int

// NoParent marks a root vertex.
const NoParent VertexID = -1

// Vertex is one record of an exploration tree.
type Vertex struct {
	ID     VertexID
	At     Point
	Parent VertexID
}

// IsRoot reports whether the vertex has no parent link.
func (v Vertex) IsRoot() bool {
	return v.Parent < 0
}

// Edge links a vertex to its parent.
type Edge struct {
	Child  Vertex
	Parent Vertex
}

// Tree is an exploration tree in record order.
type Tree struct {
	Vertices []Vertex
}

// Add appends a vertex and assigns it the next id.
func (t *Tree) Add(at Point, parent VertexID) Vertex {
	v := Vertex{ID: VertexID(len(t.Vertices)), At: at, Parent: parent}
	t.Vertices = append(t.Vertices, v)

	return v
}

// Len returns the number of vertices.
func (t Tree) Len() int {
	return len(t.Vertices)
}

// Edges resolves every non-root vertex to its parent. A parent id must refer
// to a vertex recorded before the child; vertices whose parent id is out of
// range are returned separately as dangling.
func (t Tree) Edges() (edges []Edge, dangling []Vertex) {
	for _, v := range t.Vertices {
		if v.IsRoot() {
			continue
		}

		if v.Parent >= v.ID {
			dangling = append(dangling, v)
			continue
		}

		edges = append(edges, Edge{Child: v, Parent: t.Vertices[v.Parent]})
	}

	return edges, dangling
}

// Track is one planned path together with the tree that produced it.
// Waypoints is the raw numeric stream; it decodes to points only when its
// length is even.
type Track struct {
	Label     string
	Agent     Agent
	Waypoints []float64
	Tree      Tree
	Err       error
}

// Points decodes the waypoint stream into points.
func (t Track) Points() ([]Point, bool) {
	if len(t.Waypoints)%2 != 0 {
		return nil, false
	}

	points := make([]Point, 0, len(t.Waypoints)/2)
	for i := 0; i < len(t.Waypoints); i += 2 {
		points = append(points, Point{X: t.Waypoints[i], Y: t.Waypoints[i+1]})
	}

	return points, true
}

// Overlay is the decoded content of a path file.
type Overlay struct {
	Source Path
	Mode   OverlayMode
	Tracks []Track
}
