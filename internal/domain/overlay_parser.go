package domain

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/visualize/internal/model"
)

const (
	commentPrefix = "#"
	dualMarker    = "PATH1"
	treeFields    = 3
)

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionPath
	sectionTree
)

// section is a state of the overlay parser: which accumulator of which
// track receives the next data line.
type section struct {
	kind  sectionKind
	track int
}

// overlayLayout describes one on-disk format.
type overlayLayout struct {
	mode    m.OverlayMode
	initial section
	headers map[string]section
	tracks  []trackDef
}

type trackDef struct {
	label string
	agent m.Agent
}

var singleLayout = overlayLayout{
	mode:    m.OverlaySingle,
	initial: section{kind: sectionPath},
	headers: map[string]section{
		"TREE": {kind: sectionTree},
	},
	tracks: []trackDef{{label: "Path (RRT)", agent: m.Agent1}},
}

var dualLayout = overlayLayout{
	mode:    m.OverlayDual,
	initial: section{kind: sectionNone},
	headers: map[string]section{
		"PATH1": {kind: sectionPath, track: 0},
		"PATH2": {kind: sectionPath, track: 1},
		"TREE1": {kind: sectionTree, track: 0},
		"TREE2": {kind: sectionTree, track: 1},
	},
	tracks: []trackDef{
		{label: "Path 1 (RRT)", agent: m.Agent1},
		{label: "Path 2 (RRT)", agent: m.Agent2},
	},
}

// ParseOverlay decodes a path file. A line reading exactly PATH1 selects the
// dual-path layout; otherwise the file is a single waypoint stream optionally
// followed by a TREE section. Blank lines and lines starting with # are
// skipped in both layouts.
//
// Malformed data never aborts parsing: the affected track carries the error
// in Track.Err and the remaining tracks are decoded normally.
func ParseOverlay(src m.Source) m.Overlay {
	lines := splitLines(src.Data)

	layout := singleLayout
	if isDual(lines) {
		layout = dualLayout
	}

	tracks := make([]m.Track, len(layout.tracks))
	for i, def := range layout.tracks {
		tracks[i] = m.Track{Label: def.label, Agent: def.agent}
	}

	state := layout.initial

	for n, raw := range lines {
		line := strings.TrimSpace(raw)

		if next, ok := layout.headers[line]; ok {
			state = next
			continue
		}

		if line == "" || strings.HasPrefix(line, commentPrefix) || state.kind == sectionNone {
			continue
		}

		track := &tracks[state.track]
		if track.Err != nil {
			continue
		}

		var err error

		switch state.kind {
		case sectionPath:
			err = appendWaypoints(track, line)
		case sectionTree:
			err = appendVertex(track, line)
		}

		if err != nil {
			track.Err = &m.FormatError{
				Unit:   "path",
				Reason: fmt.Sprintf("line %d: %v", n+1, err),
			}
		}
	}

	return m.Overlay{Source: src.Origin, Mode: layout.mode, Tracks: tracks}
}

func isDual(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) == dualMarker {
			return true
		}
	}

	return false
}

func splitLines(data []byte) []string {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}

func appendWaypoints(track *m.Track, line string) error {
	nums, err := parseFloats(strings.Fields(line))
	if err != nil {
		return err
	}

	track.Waypoints = append(track.Waypoints, nums...)

	return nil
}

// appendVertex decodes "x y parent". Lines with fewer fields are ignored and
// extra fields are dropped.
func appendVertex(track *m.Track, line string) error {
	parts := strings.Fields(line)
	if len(parts) < treeFields {
		return nil
	}

	xy, err := parseFloats(parts[:2])
	if err != nil {
		return err
	}

	parent, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("bad parent index %q", parts[2])
	}

	if parent < 0 {
		parent = int(m.NoParent)
	}

	track.Tree.Add(m.Point{X: xy[0], Y: xy[1]}, m.VertexID(parent))

	return nil
}
