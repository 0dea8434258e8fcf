package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn", FormatJSON)

	l.Info("hidden")
	l.Warn("shown", "count", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "INFO must be filtered at WARN level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestLogger_WithPersistsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelDebug, FormatJSON).WithScenario("toy").With("stage", "evaluate", 42, "dropped")

	l.Debug("enumerated", "cliques", 8)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "toy", entry["scenario"])
	assert.Equal(t, "evaluate", entry["stage"])
	assert.EqualValues(t, 8, entry["cliques"])
	assert.NotContains(t, entry, "42")
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "", FormatText).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	assert.NotPanics(t, func() {
		l.Error("nothing")
		l.With().Info("still nothing")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Len(t, ValidLevels(), 4)
}
