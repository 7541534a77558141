package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHelpers_NoopBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		LogInfo("info")
		LogDebug("debug")
		LogWarn("warn")
		LogSuccess("ok", zap.Int64("duration_ms", 3))
		LogError("bad", zap.Error(errors.New("boom")))
	})
}

func TestInit_WritesFileLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Options{Dir: dir, Level: "debug"}))

	LogInfo("chart rendered", zap.String("file", "top_artists.png"))
	LogDebug("font resolved")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "chart rendered")
	assert.Contains(t, content, "top_artists.png")
	assert.Contains(t, content, "DEBUG")
}

func TestInit_LevelFilters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Options{Dir: dir, Level: "warn"}))
	LogInfo("hidden")
	LogWarn("shown")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "shown")
}

func TestInit_BadLevel(t *testing.T) {
	assert.Error(t, Init(Options{Level: "loud"}))
}

func TestRotatingWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := openLogFile(path)
	require.NoError(t, err)
	w.max = 10
	defer w.Close()

	_, err = w.Write([]byte("12345678"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdef"))
	require.NoError(t, err)
	require.NoError(t, w.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(data))
}

func TestExtractHelpers(t *testing.T) {
	assert.Equal(t, int64(12), extractDuration([]zap.Field{zap.Int64("duration_ms", 12)}))
	assert.Equal(t, int64(0), extractDuration([]zap.Field{zap.String("x", "y")}))
	assert.Equal(t, "boom", extractError([]zap.Field{zap.Error(errors.New("boom"))}))
	assert.Equal(t, "", extractError(nil))
}
