package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/visualize/internal/adapter"
	"github.com/mouse-blink/visualize/internal/controller"
	"github.com/mouse-blink/visualize/internal/logging"
	m "github.com/mouse-blink/visualize/internal/model"
)

// RenderArgs configures a render run.
type RenderArgs struct {
	Scenario m.Path
	Overlay  m.Path // empty when no path file is given
	Outputs  []m.Path
	Style    m.Path // optional YAML style file
	Width    int    // overrides the style when > 0
	Height   int    // overrides the style when > 0
	Show     bool
}

// InspectArgs configures an inspect run.
type InspectArgs struct {
	Scenario m.Path
	Overlay  m.Path
	Report   m.Path // optional YAML export of the report
}

// Workflow defines the operations behind the CLI commands.
//
// Malformed or unreadable input files are reported through the UI and are
// not returned as errors; only configuration and output failures are.
type Workflow interface {
	Render(ctx context.Context, args RenderArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	styles    adapter.StyleStore
	reports   adapter.ReportStore
	painters  adapter.Painters
	viewer    adapter.Viewer
	ui        controller.UI
	log       logging.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	styles adapter.StyleStore,
	reports adapter.ReportStore,
	painters adapter.Painters,
	viewer adapter.Viewer,
	ui controller.UI,
	log logging.Logger,
) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		styles:    styles,
		reports:   reports,
		painters:  painters,
		viewer:    viewer,
		ui:        ui,
		log:       log,
	}
}

// output pairs a destination with the painter chosen for its extension.
type output struct {
	path    m.Path
	painter adapter.Painter
}

func (w *workflow) Render(ctx context.Context, args RenderArgs) error {
	if len(args.Outputs) == 0 {
		return errors.New("no output file given")
	}

	outputs, err := w.resolveOutputs(args.Outputs)
	if err != nil {
		return err
	}

	style, err := w.styles.Load(args.Style)
	if err != nil {
		return err
	}

	if args.Width > 0 {
		style.Width = args.Width
	}

	if args.Height > 0 {
		style.Height = args.Height
	}

	w.ui.DisplayLoading(args.Scenario, args.Overlay)

	scn, overlay, ok := w.load(ctx, args.Scenario, args.Overlay)
	if !ok {
		return nil
	}

	fig, diags := BuildFigure(scn, overlay, style)
	w.ui.DisplayDiagnostics(diags)
	w.log.Debug(ctx, "figure built",
		logging.Int("layers", len(fig.Layers)),
		logging.Int("diagnostics", len(diags)),
	)

	if err := w.paintAll(ctx, fig, outputs); err != nil {
		return err
	}

	written := make([]m.Path, 0, len(outputs))
	for _, out := range outputs {
		written = append(written, out.path)
	}

	w.ui.DisplayRendered(written)

	if args.Show {
		if err := w.viewer.Open(ctx, written[0]); err != nil {
			w.log.Warn(ctx, "viewer failed", logging.Err(err))
			w.ui.DisplayDiagnostics([]m.Diagnostic{{
				Severity: m.SeverityWarning,
				Message:  fmt.Sprintf("Warning: could not open %s: %v", written[0], err),
			}})
		}
	}

	return nil
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	w.ui.DisplayLoading(args.Scenario, args.Overlay)

	scn, overlay, ok := w.load(ctx, args.Scenario, args.Overlay)
	if !ok {
		return nil
	}

	report := Inspect(scn, overlay)
	report.Scenario = args.Scenario

	if err := w.ui.DisplayReport(report); err != nil {
		return err
	}

	if args.Report == "" {
		return nil
	}

	if err := w.reports.SaveReport(args.Report, report); err != nil {
		return err
	}

	w.log.Info(ctx, "report saved", logging.String("file", string(args.Report)))

	return nil
}

// resolveOutputs picks a painter per output. A path given more than once is
// written once, so no two painters share a file.
func (w *workflow) resolveOutputs(paths []m.Path) ([]output, error) {
	outputs := make([]output, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))

	for _, p := range paths {
		key := filepath.Clean(string(p))
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}

		painter, err := w.painters.For(w.fsAdapter.Ext(p))
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", p, err)
		}

		outputs = append(outputs, output{path: p, painter: painter})
	}

	return outputs, nil
}

// load reads the scenario and, when given, the overlay. A scenario that
// cannot be read or decoded stops the run with a diagnostic; an overlay that
// cannot be read is reported and left out.
func (w *workflow) load(ctx context.Context, scenarioPath, overlayPath m.Path) (m.Scenario, *m.Overlay, bool) {
	src, err := w.fsAdapter.ReadSource(scenarioPath)
	if err != nil {
		w.log.Error(ctx, "scenario unreadable", logging.String("file", string(scenarioPath)), logging.Err(err))
		w.report(m.SeverityError, fmt.Sprintf("Error: Could not read scenario file: %v", err))

		return m.Scenario{}, nil, false
	}

	scn, err := ParseScenario(src)
	if err != nil {
		w.log.Error(ctx, "scenario malformed", logging.String("file", string(scenarioPath)), logging.Err(err))
		w.report(m.SeverityError, "Error: Invalid scenario file format.")

		return m.Scenario{}, nil, false
	}

	w.log.Debug(ctx, "scenario loaded",
		logging.String("file", string(scenarioPath)),
		logging.Int("obstacles", len(scn.Obstacles)),
	)

	if overlayPath == "" {
		return scn, nil, true
	}

	osrc, err := w.fsAdapter.ReadSource(overlayPath)
	if err != nil {
		w.log.Error(ctx, "path file unreadable", logging.String("file", string(overlayPath)), logging.Err(err))
		w.report(m.SeverityError, fmt.Sprintf("Error: Could not read path file: %v", err))

		return scn, nil, true
	}

	overlay := ParseOverlay(osrc)
	w.log.Debug(ctx, "path file loaded",
		logging.String("file", string(overlayPath)),
		logging.String("format", string(overlay.Mode)),
		logging.Int("tracks", len(overlay.Tracks)),
	)

	return scn, &overlay, true
}

// paintAll writes every output concurrently; the figure is shared read-only.
func (w *workflow) paintAll(ctx context.Context, fig m.Figure, outputs []output) error {
	g, _ := errgroup.WithContext(ctx)

	for _, out := range outputs {
		out := out
		g.Go(func() error {
			return w.paint(ctx, fig, out)
		})
	}

	return g.Wait()
}

func (w *workflow) paint(ctx context.Context, fig m.Figure, out output) (err error) {
	f, err := w.fsAdapter.Create(out.path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out.path, cerr)
		}
	}()

	if err := out.painter.Paint(fig, f); err != nil {
		return fmt.Errorf("paint %s: %w", out.path, err)
	}

	w.log.Debug(ctx, "output written", logging.String("file", string(out.path)))

	return nil
}

func (w *workflow) report(severity m.Severity, msg string) {
	w.ui.DisplayDiagnostics([]m.Diagnostic{{Severity: severity, Message: msg}})
}
