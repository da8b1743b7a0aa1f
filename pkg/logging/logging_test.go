package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "WARN", Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("widget", "select").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "select", entry["widget"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_HumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", HumanReadable: true, Writer: &buf})
	require.NoError(t, err)

	log.Debug().Msg("panel placed")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "panel placed")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
