package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/visualize/internal/model"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayLoading announces the input files.
func (s *SimpleUI) DisplayLoading(scenario, overlay m.Path) {
	s.printf("Loading scenario: %s\n", scenario)

	if overlay != "" {
		s.printf("Overlaying path: %s\n", overlay)
	}
}

// DisplayDiagnostics prints one line per diagnostic.
func (s *SimpleUI) DisplayDiagnostics(diags []m.Diagnostic) {
	for _, d := range diags {
		s.printf("%s\n", d.Message)
	}
}

// DisplayRendered lists the written files.
func (s *SimpleUI) DisplayRendered(outputs []m.Path) {
	for _, out := range outputs {
		s.printf("Wrote %s\n", out)
	}
}

// DisplayReport prints the inspection report as two tables.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(scenarioRows(report))
	table.Render()

	if len(report.Tracks) > 0 {
		buf.WriteString("\n")

		tracks := tablewriter.NewWriter(&buf)
		tracks.SetHeader(trackHeader)
		tracks.SetBorder(false)
		tracks.SetCenterSeparator("")
		tracks.SetAutoWrapText(false)
		tracks.AppendBulk(trackRows(report))
		tracks.Render()
	}

	s.printf("\n%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
