package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/visualize/internal/domain"
	m "github.com/mouse-blink/visualize/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

var reportFlag string

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <scenario-file>",
		Short: "Summarise a scenario and its path file",
		Long: `Inspect prints the scenario dimensions and obstacle count and, when a path
file is given, per-track waypoint counts, path lengths, tree sizes and the
number of path segments that cross an obstacle. With --report the same
summary is also written as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Inspect(cmd.Context(), domain.InspectArgs{
				Scenario: m.Path(args[0]),
				Overlay:  m.Path(pathFlag),
				Report:   m.Path(reportFlag),
			})
		},
	}
	cmd.Flags().StringVar(&reportFlag, "report", "", "write the report as YAML to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
