// Package cmd provides the root command and CLI setup for visualize.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/visualize/internal/adapter"
	"github.com/mouse-blink/visualize/internal/controller"
	"github.com/mouse-blink/visualize/internal/domain"
	"github.com/mouse-blink/visualize/internal/logging"
	m "github.com/mouse-blink/visualize/internal/model"
)

const defaultOutput = "visualization.png"

// workflow is built lazily once flags are parsed; tests replace it with a mock.
var workflow domain.Workflow

var pathFlag string
var outputFlags []string
var showFlag bool
var styleFlag string
var figureWidthFlag int
var figureHeightFlag int
var logLevelFlag string
var logFormatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize <scenario-file>",
		Short: "Render planner scenarios, paths and exploration trees",
		Long: `Visualize renders a planner scenario (world bounds, start/goal pairs and
rectangular obstacles) together with an optional path file as a static figure.

Path files come in two layouts:
  - single: waypoint numbers, optionally followed by a TREE line and
    "x y parent" records
  - dual:   PATH1, PATH2, TREE1 and TREE2 sections

Malformed input is reported and skipped; it does not change the exit code.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setupWorkflow,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Render(cmd.Context(), domain.RenderArgs{
				Scenario: m.Path(args[0]),
				Overlay:  m.Path(pathFlag),
				Outputs:  parsePaths(outputFlags),
				Style:    m.Path(styleFlag),
				Width:    figureWidthFlag,
				Height:   figureHeightFlag,
				Show:     showFlag,
			})
		},
	}
	cmd.PersistentFlags().StringVar(&pathFlag, "path", "", "path file with waypoints and optional exploration trees")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "text", "log format: text or json")
	cmd.Flags().StringArrayVarP(&outputFlags, "output", "o", []string{defaultOutput}, "output image, .png or .svg (can be repeated)")
	cmd.Flags().BoolVar(&showFlag, "show", false, "open the first output with the system image viewer")
	cmd.Flags().StringVar(&styleFlag, "style", "", "YAML file overriding the default style")
	cmd.Flags().IntVar(&figureWidthFlag, "figure-width", 0, "figure width in pixels (overrides the style)")
	cmd.Flags().IntVar(&figureHeightFlag, "figure-height", 0, "figure height in pixels (overrides the style)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setupWorkflow wires the adapters unless a workflow is already installed.
func setupWorkflow(cmd *cobra.Command, _ []string) error {
	if workflow != nil {
		return nil
	}

	log := logging.New(logging.Config{
		Level:  logLevelFlag,
		Format: logFormatFlag,
		Output: cmd.ErrOrStderr(),
	})

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewStyleStore(fsAdapter),
		adapter.NewReportStore(fsAdapter),
		adapter.DefaultPainters(),
		adapter.NewSystemViewer(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		log,
	)

	return nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
