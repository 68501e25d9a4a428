package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/brickline/pkg/logging"
)

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRunID(ctx, "run-1")
	ctx = logging.WithOperation(ctx, "merge")
	ctx = logging.WithList(ctx, "primary", "left.xml")

	logging.FromContext(ctx).Info().Int("keys", 4).Msg("merged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(tl.Lines()[0]), &entry))
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "merge", entry["operation"])
	assert.Equal(t, "primary", entry["side"])
	assert.Equal(t, "left.xml", entry["list"])
	assert.Equal(t, "merged", entry["message"])
	assert.EqualValues(t, 4, entry["keys"])

	assert.Equal(t, "run-1", logging.RunID(ctx))
	assert.Equal(t, "", logging.RunID(context.Background()))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Same(t, logging.Default(), logging.Ctx(logging.WithLogger(context.Background(), nil)))
}

func TestWithFieldTypes(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithFields(ctx, map[string]any{
		"count":  3,
		"forced": true,
		"error":  assert.AnError,
	})
	logging.Ctx(ctx).Warn().Msg("x")

	tl.AssertContains(t, `"count":3`)
	tl.AssertContains(t, `"forced":true`)
	tl.AssertContains(t, assert.AnError.Error())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"loud", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in, zerolog.WarnLevel))
		})
	}
}

func TestParseFields(t *testing.T) {
	assert.Equal(t, map[string]any{"env": "dev", "team": "lego"}, logging.ParseFields("env=dev, team = lego,broken,=x"))
	assert.Empty(t, logging.ParseFields(""))
}

func TestNewLoggerFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brickline.log")

	logger, closer, err := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "info",
		Format: "auto",
		Output: path,
		Fields: map[string]any{"app": "brickline"},
	})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"app":"brickline"`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNewLoggerFromConfigBadOutput(t *testing.T) {
	_, _, err := logging.NewLoggerFromConfig(&logging.Config{
		Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error in logging")
}

func TestNewLoggerFromConfigDefaults(t *testing.T) {
	logger, closer, err := logging.NewLoggerFromConfig(nil)
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger, _, err = logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Output: "discard"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	logging.Info().Str("k", "v").Msg("captured")
	tl.AssertContains(t, "captured")
	tl.AssertNotContains(t, "dropped")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, zerolog.ErrorLevel)
	logger.Warn().Msg("quiet")
	logger.Error().Msg("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
