package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: JSON, Output: &buf, Service: "travelease"})

	log.Info("booking created", "booking_id", "DEMO-ABC12345")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "booking created", record["msg"])
	assert.Equal(t, "travelease", record[SERVICE])
	assert.Equal(t, "DEMO-ABC12345", record["booking_id"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Format: "TEXT", Output: &buf}).Info("hello")

	assert.True(t, strings.Contains(buf.String(), "msg=hello"), buf.String())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{DEBUG, slog.LevelDebug},
		{" Warn ", slog.LevelWarn},
		{ERROR, slog.LevelError},
		{INFO, slog.LevelInfo},
		{"verbose", slog.LevelInfo},
		{EMPTY, slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level))
		})
	}

	var buf bytes.Buffer
	log := New(Config{Level: WARN, Output: &buf})
	log.Info("dropped")
	assert.Zero(t, buf.Len())
	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Output: &buf}).With("handler", "Search").Info("x")

	assert.Contains(t, buf.String(), `"handler":"Search"`)
}
