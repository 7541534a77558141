package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolated returns Options pointing at an empty directory so no stray
// config.yaml or .env from the working tree leaks in.
func isolated(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{ConfigDir: dir, EnvFile: filepath.Join(dir, ".env")}
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(), isolated(t))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Data.Seed)
	assert.Equal(t, 1000, cfg.Data.Records)
	assert.Equal(t, 50, cfg.Data.Artists)
	assert.Equal(t, "images", cfg.Output.Dir)
	assert.Equal(t, 300.0, cfg.Output.DPI)
	assert.Equal(t, "", cfg.Chart.FontPath)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, cfg, Default())
}

func TestLoad_ConfigFile(t *testing.T) {
	opts := isolated(t)
	yaml := "data:\n  records: 250\noutput:\n  dir: out\n  dpi: 150\n"
	require.NoError(t, os.WriteFile(filepath.Join(opts.ConfigDir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load(newFlags(), opts)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Data.Records)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, 150.0, cfg.Output.DPI)
	assert.Equal(t, uint64(42), cfg.Data.Seed)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	opts := isolated(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.ConfigDir, "config.yaml"), []byte("data:\n  seed: 1\n"), 0644))
	t.Setenv("ROYALTY_SEED", "7")
	t.Setenv("ROYALTY_OUTPUT_DIR", "charts")

	cfg, err := Load(newFlags(), opts)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Data.Seed)
	assert.Equal(t, "charts", cfg.Output.Dir)
}

func TestLoad_DotEnv(t *testing.T) {
	opts := isolated(t)
	require.NoError(t, os.WriteFile(opts.EnvFile, []byte("ROYALTY_RECORDS=12\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("ROYALTY_RECORDS") })

	cfg, err := Load(newFlags(), opts)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Data.Records)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("ROYALTY_RECORDS", "12")
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--data.records=30", "--output.dpi=72", "--log.level=debug"}))

	cfg, err := Load(fs, isolated(t))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Data.Records)
	assert.Equal(t, 72.0, cfg.Output.DPI)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero records", []string{"--data.records=0"}},
		{"too many artists", []string{"--data.artists=1000"}},
		{"dpi too low", []string{"--output.dpi=1"}},
		{"empty output dir", []string{"--output.dir="}},
		{"unknown level", []string{"--log.level=loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFlags()
			require.NoError(t, fs.Parse(tt.args))
			_, err := Load(fs, isolated(t))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	opts := isolated(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.ConfigDir, "config.yaml"), []byte("data: [unclosed"), 0644))
	_, err := Load(newFlags(), opts)
	assert.Error(t, err)
}
