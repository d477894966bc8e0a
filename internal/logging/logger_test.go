package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Config{})
	require.NoError(t, err)
	l.Info().Int("samples", 3).Msg("loaded")
	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "samples=3")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Config{Format: "json"})
	require.NoError(t, err)
	l.Info().Str("k", "v").Msg("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["message"])
	assert.Equal(t, "v", rec["k"])
	assert.Contains(t, rec, "time")
}

func TestQuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Config{Quiet: true})
	require.NoError(t, err)
	l.Info().Msg("progress")
	assert.Empty(t, buf.String())
	l.Warn().Msg("duplicate")
	assert.Contains(t, buf.String(), "duplicate")
}

func TestInvalidConfig(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
	require.Error(t, err)
	_, err = New(&bytes.Buffer{}, Config{Level: "loud"})
	require.Error(t, err)
}
