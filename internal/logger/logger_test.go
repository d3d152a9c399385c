package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(New(&buf, level))
	return &buf
}

func TestInit(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	Init()
	assert.NotNil(t, Logger())
}

func TestInfo(t *testing.T) {
	buf := capture(t, "info")

	Info("test message", "date", "2025-01-01", "slots", 4)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test message", entry["message"])
	assert.Equal(t, "2025-01-01", entry["date"])
	assert.Equal(t, float64(4), entry["slots"])
}

func TestError(t *testing.T) {
	buf := capture(t, "info")

	Error("test error", "error", errors.New("boom"))

	output := buf.String()
	assert.Contains(t, output, "test error")
	assert.Contains(t, output, "boom")
}

func TestDebugFilteredAtInfo(t *testing.T) {
	buf := capture(t, "info")

	Debug("hidden")
	Debugf("hidden %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebugEnabled(t *testing.T) {
	buf := capture(t, "debug")

	Debugf("visible %d", 2)

	assert.Contains(t, buf.String(), "visible 2")
}

func TestFormatted(t *testing.T) {
	buf := capture(t, "")

	Infof("server on port %s", "8080")
	Warnf("slow query %dms", 250)
	Errorf("failed: %v", "nope")

	output := buf.String()
	assert.Contains(t, output, "server on port 8080")
	assert.Contains(t, output, "slow query 250ms")
	assert.Contains(t, output, "failed: nope")
}
