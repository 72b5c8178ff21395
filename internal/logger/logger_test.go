package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("text handler honors level", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(Config{Level: "warn", Format: "text"}, &buf)

		log.Info("dropped")
		log.Warn("kept")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "kept")
	})

	t.Run("json handler emits structured records", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(Config{Level: "debug", Format: "json"}, &buf)

		log.Debug("review started", "language", "go")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "review started", entry["msg"])
		assert.Equal(t, "go", entry["language"])
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(Config{Level: "nonsense", Format: "text"}, &buf)

		log.Debug("dropped")
		log.Info("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}
