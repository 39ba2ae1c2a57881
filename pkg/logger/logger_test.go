package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestJSONFormatWithComponentAndFailure(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "debug", Format: "json"}, &buf).WithComponent("ledger")
	assert.Equal(t, "ledger", log.Component())

	log.With(FieldOwner, "u1").Failure(context.Background(), "record failed", errors.New("boom"), FieldAccount, "Bank")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "record failed", entry["msg"])
	assert.Equal(t, "ledger", entry[FieldComponent])
	assert.Equal(t, "u1", entry[FieldOwner])
	assert.Equal(t, "boom", entry[FieldError])
	assert.Equal(t, "Bank", entry[FieldAccount])
}

func TestLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Level: "warn"}, &buf)
	log.Info("hidden")
	assert.Zero(t, buf.Len())
	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
