package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerWritesFieldsAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("weather-cards", "test", "info", &buf)
	require.NoError(t, err)

	l.Info("card built", map[string]any{"city_id": 2643743})
	l.Error(errors.New("boom"), map[string]any{"city_id": 1})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "card built", entries[0]["msg"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, float64(2643743), entries[0]["city_id"])
	assert.Equal(t, "weather-cards", entries[0]["app_name"])
	assert.Equal(t, "test", entries[0]["app_env"])
	assert.Contains(t, entries[0]["caller_func"], "TestLoggerWritesFieldsAndCaller")

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "boom", entries[1]["error"])
	assert.Contains(t, entries[1]["caller_func"], "TestLoggerWritesFieldsAndCaller")
	assert.NotEmpty(t, entries[1]["timestamp"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("weather-cards", "", "warn", &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warning("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("weather-cards", "", "loud")
	assert.Error(t, err)
}
