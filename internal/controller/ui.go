// Package controller provides the user-facing output of the visualize commands.
package controller

import (
	m "github.com/mouse-blink/visualize/internal/model"
)

// UI defines how progress, diagnostics and reports reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayLoading(scenario, overlay m.Path)
	DisplayDiagnostics(diags []m.Diagnostic)
	DisplayRendered(outputs []m.Path)
	DisplayReport(report m.Report) error
}
