package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	m "github.com/mouse-blink/visualize/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	headStyle  = cellStyle.Bold(true).Foreground(lipgloss.Color("14"))
)

// TUI implements UI with lipgloss styling and a Bubble Tea pager for reports
// taller than the terminal.
type TUI struct {
	output io.Writer
	width  int
	height int
	run    func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			t.width, t.height = width, height
		}
	}

	t.run = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen()).Run()
		return err
	}

	return t
}

// DisplayLoading announces the input files.
func (t *TUI) DisplayLoading(scenario, overlay m.Path) {
	t.println(labelStyle.Render("Loading scenario:") + " " + string(scenario))

	if overlay != "" {
		t.println(labelStyle.Render("Overlaying path:") + " " + string(overlay))
	}
}

// DisplayDiagnostics prints diagnostics colored by severity.
func (t *TUI) DisplayDiagnostics(diags []m.Diagnostic) {
	for _, d := range diags {
		style := errorStyle
		if d.Severity == m.SeverityWarning {
			style = warnStyle
		}

		t.println(style.Render(d.Message))
	}
}

// DisplayRendered lists the written files.
func (t *TUI) DisplayRendered(outputs []m.Path) {
	for _, out := range outputs {
		t.println(okStyle.Render("✓") + " wrote " + string(out))
	}
}

// DisplayReport renders the report; it is paged when taller than the terminal.
func (t *TUI) DisplayReport(report m.Report) error {
	content := renderReport(report)

	if !t.needsPagination(content) {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	return t.run(newPagerModel(content, t.width, t.height))
}

func (t *TUI) needsPagination(content string) bool {
	if t.height <= 0 {
		return false
	}

	return strings.Count(content, "\n")+1 > t.height-1
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

func renderReport(report m.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Scenario"))
	b.WriteString("\n")
	b.WriteString(styledTable(nil, scenarioRows(report)))
	b.WriteString("\n")

	if len(report.Tracks) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Tracks"))
		b.WriteString("\n")
		b.WriteString(styledTable(trackHeader, trackRows(report)))
		b.WriteString("\n")
	}

	return b.String()
}

func styledTable(headers []string, rows [][]string) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(labelStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}

			return cellStyle
		}).
		Rows(rows...)

	if len(headers) > 0 {
		tbl = tbl.Headers(headers...)
	}

	return tbl.String()
}
