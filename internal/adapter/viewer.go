package adapter

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	m "github.com/mouse-blink/visualize/internal/model"
)

// Viewer shows a rendered file to the user.
type Viewer interface {
	Open(ctx context.Context, path m.Path) error
}

// SystemViewer opens files with the platform's default application.
type SystemViewer struct {
	goos string
	run  func(ctx context.Context, name string, args ...string) error
}

// NewSystemViewer constructs a viewer for the running OS.
func NewSystemViewer() *SystemViewer {
	return &SystemViewer{goos: runtime.GOOS, run: runCommand}
}

// Open launches the viewer and returns once it has been started.
func (v *SystemViewer) Open(ctx context.Context, path m.Path) error {
	name, args := viewerCommand(v.goos, string(path))

	if err := v.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, name, err)
	}

	return nil
}

func viewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}
