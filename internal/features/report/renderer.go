package report

import (
	"fmt"
	"time"

	"royalty-viz/internal/features/charts"
	"royalty-viz/internal/infra/fs"
	logging "royalty-viz/internal/infra/log"
	"royalty-viz/internal/royalty"

	"go.uber.org/zap"
)

// outerMargin is blank space around each figure before cropping, in points.
const outerMargin = 8

// Renderer draws artifacts to PNG files in one directory.
type Renderer struct {
	outDir string
	dpi    float64
	fonts  *charts.Fonts
}

// NewRenderer loads fonts once for every artifact it renders.
func NewRenderer(outDir string, dpi float64, fontPath string) (*Renderer, error) {
	fonts, err := charts.LoadFonts(fontPath, dpi)
	if err != nil {
		return nil, err
	}
	return &Renderer{outDir: outDir, dpi: dpi, fonts: fonts}, nil
}

// Render draws a onto a fresh canvas, crops it to content and writes it.
// The returned path is the written file.
func (r *Renderer) Render(t *royalty.Table, a Artifact) (string, error) {
	start := time.Now()

	c := charts.NewCanvas(a.Width, a.Height, r.dpi, r.fonts)
	a.Plot(t).Draw(c, c.Bounds().Inset(c.Pt(outerMargin)))

	path, err := fs.SavePNG(r.outDir, a.File, c.Trimmed(0.1), r.dpi)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", a.File, err)
	}

	logging.LogSuccess("Chart rendered",
		zap.String("chart", a.Name),
		zap.String("path", path),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return path, nil
}
