package commands

// Command to print dataset statistics
// Prints the key figures and per-channel revenue without rendering charts

import (
	"royalty-viz/internal/features/report"
	"royalty-viz/internal/format"

	"github.com/spf13/cobra"
)

var statsMarkdown bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics for the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := format.ASCII
		if statsMarkdown {
			mode = format.Markdown
		}
		return report.WriteStats(cmd.OutOrStdout(), report.Dataset(cfg), mode)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsMarkdown, "markdown", false, "print tables as Markdown")
}
