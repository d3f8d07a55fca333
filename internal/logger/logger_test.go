package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("rejects invalid level", func(t *testing.T) {
		err := Init(&bytes.Buffer{}, "TRACE", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid LOG_LEVEL")
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		err := Init(&bytes.Buffer{}, "INFO", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid LOG_FORMAT")
	})

	t.Run("default level filters info", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Init(&buf, "", ""))

		slog.Info("hidden")
		slog.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestFromContextAddsCommand(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "DEBUG", "json"))

	ctx := WithCommand(context.Background(), "wallet show")
	Debug(ctx, "resolved key", "source", "config")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "wallet show", record["command"])
	assert.Equal(t, "config", record["source"])
}

func TestGetCommand(t *testing.T) {
	assert.Empty(t, GetCommand(context.Background()))
	assert.Equal(t, "wallet create", GetCommand(WithCommand(context.Background(), "wallet create")))
}
