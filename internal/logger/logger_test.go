package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Output: &buf})
	L.Error("dropped")
	assert.Zero(t, buf.Len())
}

func TestInitLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, Level: slog.LevelWarn})
	t.Cleanup(func() { Init(Options{}) })

	L.Info("hidden")
	L.Warn("shown", "key", "one")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=one")
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Output: &buf, JSON: true})
	t.Cleanup(func() { Init(Options{}) })

	L.Info("loaded", "entries", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "loaded", rec["msg"])
	assert.EqualValues(t, 3, rec["entries"])
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseLevel("loud")
	assert.False(t, ok)
}
