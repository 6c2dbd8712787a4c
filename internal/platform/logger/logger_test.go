package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json handler respects level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "warn", "json")
		log.Info("hidden")
		log.Warn("shown", "resident_id", "ST1003")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.Equal(t, "ST1003", line["resident_id"])
		assert.Equal(t, "hostelgate", line["component"])
	})

	t.Run("text handler", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, "", "text").Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level parsing", func(t *testing.T) {
		assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
		assert.Equal(t, slog.LevelError, parseLevel("error"))
		assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
	})
}
