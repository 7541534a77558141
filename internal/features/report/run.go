package report

import (
	"context"
	"fmt"
	"io"

	"royalty-viz/internal/config"
	logging "royalty-viz/internal/infra/log"
	"royalty-viz/internal/royalty"

	"go.uber.org/zap"
)

// Dataset generates the synthetic royalty table described by cfg.
func Dataset(cfg *config.Config) *royalty.Table {
	return royalty.NewGenerator(cfg.Data.Seed, cfg.Data.Artists).Table(cfg.Data.Records)
}

// Run generates the dataset, renders every artifact into cfg.Output.Dir and
// prints the completion listing to out. Rendering stops at the first failure
// or when ctx is cancelled; files already written are kept.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) ([]string, error) {
	t := Dataset(cfg)
	logging.LogInfo("Dataset generated",
		zap.Uint64("seed", cfg.Data.Seed),
		zap.Int("records", t.Len()),
		zap.Int("artists", cfg.Data.Artists))

	r, err := NewRenderer(cfg.Output.Dir, cfg.Output.DPI, cfg.Chart.FontPath)
	if err != nil {
		return nil, err
	}

	artifacts := Artifacts()
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path, err := r.Render(t, a)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	fmt.Fprintln(out, "Visualizations generated successfully!")
	fmt.Fprintf(out, "Images saved in '%s/' directory:\n", cfg.Output.Dir)
	for _, a := range artifacts {
		fmt.Fprintf(out, "- %s\n", a.File)
	}
	return paths, nil
}
