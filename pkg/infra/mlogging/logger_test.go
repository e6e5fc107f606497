// 指示: miu200521358
package mlogging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelWarn,
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"-4":      slog.LevelDebug,
		"loud":    slog.LevelWarn,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseLevel(input, slog.LevelWarn), "input=%q", input)
	}
}

func TestNewWritesRunIDToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Fallback: &buf})

	_, err := uuid.Parse(logger.RunID)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", "file", "scene.yaml")
	require.NoError(t, logger.Close())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, RunIDKey+"="+logger.RunID)
	assert.Contains(t, out, "file=scene.yaml")
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "error", Verbose: true, Fallback: &buf})
	logger.Debug("detail")
	assert.Contains(t, buf.String(), "detail")
}

func TestNewRotatesIntoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "daz2arp.log")
	logger := New(Config{Filename: path})
	logger.Info("written")
	require.NoError(t, logger.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "written"))
}

func TestNewWithoutOutputDiscards(t *testing.T) {
	logger := New(Config{})
	logger.Info("nowhere")
	assert.NoError(t, logger.Close())
}
