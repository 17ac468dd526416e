package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwatch/internal/logging"
)

func TestSetup(t *testing.T) {
	t.Run("local enables debug level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logging.Setup("local", &buf)

		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("production uses JSON at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logging.Setup("production", &buf)

		assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))

		log.Info("cycle completed", "status", "available")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "cycle completed", entry["msg"])
		assert.Equal(t, "available", entry["status"])
	})
}
