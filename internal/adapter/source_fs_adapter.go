// Package adapter contains the filesystem, rendering and OS adapters used by
// the visualize workflow.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/visualize/internal/model"
)

// SourceFSAdapter hides direct os access from the domain layer so the
// workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadSource loads a whole input file.
	ReadSource(path m.Path) (m.Source, error)

	// Create opens path for writing, creating parent directories as needed.
	Create(path m.Path) (io.WriteCloser, error)

	// Ext returns the lower-cased extension of path, including the dot.
	Ext(path m.Path) string
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadSource reads the file at path fully.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) (m.Source, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Source{}, fmt.Errorf("read %s: %w", path, err)
	}

	return m.Source{Origin: path, Data: data}, nil
}

// Create truncates or creates the file at path.
func (a *LocalSourceFSAdapter) Create(path m.Path) (io.WriteCloser, error) {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(string(path))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	return f, nil
}

// Ext returns the lower-cased file extension.
func (a *LocalSourceFSAdapter) Ext(path m.Path) string {
	return strings.ToLower(filepath.Ext(string(path)))
}
