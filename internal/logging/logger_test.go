package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "info", "json").With("controller", "UserController")

	logger.Info("user created", "id", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "user created", record["msg"])
	assert.Equal(t, "UserController", record["controller"])
	assert.Equal(t, float64(3), record["id"])
}

func TestWriterLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "warn", "text")

	logger.Debug("hidden")
	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	logger.Error("also shown")
	assert.Contains(t, buf.String(), "level=WARN msg=shown")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestWriterLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "verbose", "text")

	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() { logger.Error("discarded") })
	assert.NotNil(t, logger.Logger())
}
