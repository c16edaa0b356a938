package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("hello")
	out := buf.String()
	assert.Contains(t, out, `"message":"hello"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestNewConsoleWriterIsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Console: true, Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.NotContains(t, out, `"message":"hello"`)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)
}
