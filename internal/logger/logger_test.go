package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerlink/partnerlink/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo, "json")

	log.Debug("hidden")
	log.Info("task toggled", "task_id", "todo:1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task toggled", entry["msg"])
	assert.Equal(t, "todo:1", entry["task_id"])
	assert.Contains(t, entry, "source")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, slog.LevelInfo, "text").Info("hello", "owner_id", "u1")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "owner_id=u1")
}
