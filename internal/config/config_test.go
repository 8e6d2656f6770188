package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trek/internal/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trek.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	path := write(t, `
log:
  format: json
crucible:
  min_run: 4
  max_run: 10
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.Crucible{MinRun: 4, MaxRun: 10}, cfg.Crucible)
	assert.Equal(t, 64, cfg.Garden.Steps)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"level", "log:\n  level: loud\n", config.ErrBadLogLevel},
		{"format", "log:\n  format: xml\n", config.ErrBadLogFormat},
		{"run", "crucible:\n  min_run: 5\n  max_run: 2\n", config.ErrBadValue},
		{"steps", "garden:\n  steps: -3\n", config.ErrBadValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(write(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Load(write(t, "log: [unterminated"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	l, err := config.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = config.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.Log{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.Int("n", 1))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger, err = config.Log{Level: "debug", Format: "text"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("plain")
	assert.Contains(t, buf.String(), "msg=plain")

	_, err = config.Log{Level: "info", Format: "xml"}.NewLogger(&buf)
	assert.ErrorIs(t, err, config.ErrBadLogFormat)
}
