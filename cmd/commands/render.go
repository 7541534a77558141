package commands

// Command to render the chart report
// Generates the dataset and writes every PNG into the output directory
// Stops between charts on SIGINT/SIGTERM

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"royalty-viz/internal/features/report"
	"royalty-viz/internal/infra/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render all charts and the dashboard",
	Long:  `Generate the synthetic royalty dataset and write the five charts and the executive dashboard as PNG files.`,
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()
	paths, err := report.Run(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		log.LogError("Report failed",
			zap.Error(err),
			zap.Int("written", len(paths)))
		return err
	}

	log.LogSuccess("Report complete",
		zap.String("dir", cfg.Output.Dir),
		zap.Int("charts", len(paths)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
