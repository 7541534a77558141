package commands

// Root command for Cobra CLI
// Loads configuration and starts logging before any subcommand runs
// Running the root command alone renders the full report

import (
	"royalty-viz/internal/config"
	"royalty-viz/internal/infra/log"

	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	configOpts config.Options
)

var rootCmd = &cobra.Command{
	Use:   "royalty-viz",
	Short: "Artist Royalty Analytics - synthetic royalty data and chart report",
	Long: `royalty-viz generates a reproducible synthetic dataset of artist royalty
transactions and renders a fixed set of PNG charts plus an executive dashboard.`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRender,
}

func Execute() error {
	defer log.Sync()
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cmd.Flags(), configOpts)
	if err != nil {
		return err
	}
	cfg = loaded
	return log.Init(log.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level})
}

func init() {
	pf := rootCmd.PersistentFlags()
	config.RegisterFlags(pf)
	pf.StringVar(&configOpts.ConfigDir, "config-dir", ".", "directory holding config.yaml")
	pf.StringVar(&configOpts.EnvFile, "env-file", ".env", "dotenv file loaded before the environment")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(statsCmd)
}
