package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"royalty-viz/internal/config"
	"royalty-viz/internal/features/aggregate"
	"royalty-viz/internal/features/charts"
	"royalty-viz/internal/format"
	"royalty-viz/internal/infra/fs"
	"royalty-viz/internal/royalty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDPI = 30

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "images")
	cfg.Output.DPI = testDPI
	cfg.Data.Records = 200
	return cfg
}

func TestArtifacts_Layout(t *testing.T) {
	files := make(map[string]bool)
	for _, a := range Artifacts() {
		assert.False(t, files[a.File], "duplicate %s", a.File)
		files[a.File] = true
		assert.Positive(t, a.Width)
		assert.Positive(t, a.Height)
	}
	assert.Equal(t, map[string]bool{
		"revenue_by_channel.png":    true,
		"top_artists.png":           true,
		"regional_distribution.png": true,
		"payment_status.png":        true,
		"royalty_distribution.png":  true,
		"executive_dashboard.png":   true,
	}, files)
}

func TestRun_WritesEveryArtifact(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	paths, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)
	require.Len(t, paths, len(Artifacts()))

	names, err := fs.ListFiles(cfg.Output.Dir)
	require.NoError(t, err)
	assert.Len(t, names, len(Artifacts()))

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.Equal(t, float64(testDPI), fs.ReadDPI(data), p)
	}

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Visualizations generated successfully!\n"))
	assert.Contains(t, text, "Images saved in '"+cfg.Output.Dir+"/' directory:")
	for _, a := range Artifacts() {
		assert.Contains(t, text, "- "+a.File+"\n")
	}
}

func TestRun_Cancelled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	paths, err := Run(ctx, cfg, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
	assert.Empty(t, out.String())
}

func TestRun_UnwritableOutput(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg.Output.Dir = filepath.Join(blocker, "images")

	var out bytes.Buffer
	_, err := Run(context.Background(), cfg, &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRender_SameInputSameBytes(t *testing.T) {
	tbl := royalty.Generate(royalty.DefaultSeed, 100)
	a := Artifacts()[0]

	render := func() []byte {
		r, err := NewRenderer(t.TempDir(), testDPI, "")
		require.NoError(t, err)
		path, err := r.Render(tbl, a)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}
	assert.Equal(t, render(), render())
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$0", Currency(0))
	assert.Equal(t, "$1,235", Currency(1234.5))
	assert.Equal(t, "$49,999", Currency(49999.4))
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(aggregate.Summary{
		TotalRevenue:    51234.4,
		MeanTransaction: 51.2344,
		Transactions:    1000,
		UniqueArtists:   50,
		UniqueChannels:  7,
		UniqueRegions:   7,
	})
	assert.Equal(t, []string{
		"Key Statistics:",
		"• Total Revenue: $51,234",
		"• Average Transaction: $51.23",
		"• Total Transactions: 1,000",
		"• Unique Artists: 50",
		"• Channels: 7",
		"• Regions: 7",
	}, lines)
}

func TestWriteStats(t *testing.T) {
	tbl := royalty.Generate(royalty.DefaultSeed, royalty.DefaultRecords)

	var first, second bytes.Buffer
	require.NoError(t, WriteStats(&first, tbl, format.ASCII))
	require.NoError(t, WriteStats(&second, tbl, format.ASCII))
	assert.Equal(t, first.String(), second.String())

	out := first.String()
	assert.Contains(t, out, "Key Statistics")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "100.0%")
	for _, ch := range royalty.Labels(royalty.Channels) {
		assert.Contains(t, out, ch)
	}
}

func TestTopArtists_RankedByRevenue(t *testing.T) {
	tbl := royalty.Generate(royalty.DefaultSeed, royalty.DefaultRecords)
	groups := aggregate.GroupBy(tbl, topArtists.Query)
	require.Len(t, groups, 10)
	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i-1].Value, groups[i].Value)
	}
}

func TestLookup(t *testing.T) {
	a, ok := Lookup("top_artists")
	require.True(t, ok)
	assert.Equal(t, "top_artists.png", a.File)

	_, ok = Lookup("executive_dashboard.png")
	assert.True(t, ok)

	_, ok = Lookup("volume_chart")
	assert.False(t, ok)
}

func TestRender_LowDPIEveryInstalledFont(t *testing.T) {
	tbl := royalty.Generate(royalty.DefaultSeed, 200)
	paths := append([]string{""}, charts.InstalledFonts()...)

	for _, font := range paths {
		for _, dpi := range []float64{10, 20, 50} {
			r, err := NewRenderer(t.TempDir(), dpi, font)
			require.NoError(t, err, font)
			for _, a := range Artifacts() {
				assert.NotPanics(t, func() {
					_, err := r.Render(tbl, a)
					assert.NoError(t, err)
				}, "font=%q dpi=%v artifact=%s", font, dpi, a.File)
			}
		}
	}
}
