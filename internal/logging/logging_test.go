package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"departureboard.org/internal/appconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, appconf.Production, false)

	LogOperation(logger, "board_rendered", slog.Int("upcoming", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "board_rendered", record["msg"])
	assert.Equal(t, float64(3), record["upcoming"])
}

func TestNewLogger_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, appconf.Development, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewLogger(&buf, appconf.Development, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, appconf.Test, false)

	LogError(logger, "render failed", errors.New("boom"), slog.String("component", "board"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "component=board")
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
