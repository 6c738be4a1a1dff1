package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
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
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "green-pledge-server")

	l.Info().Str("project_id", "p-1").Msg("project created")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "green-pledge-server", entry["role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "project created", entry["message"])
	assert.Equal(t, "p-1", entry["project_id"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNew_EntryShape")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := New(&buf, "test")

	require.NoError(t, SetLevel("warn"))
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel(), "empty name keeps the level")

	assert.Error(t, SetLevel("loud"))
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "test")

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("trace_id", "t-1").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "t-1", entries[0]["trace_id"])
	assert.Equal(t, "test", entries[0]["role"])
	assert.NotContains(t, entries[1], "trace_id")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ctx-role")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	req := httptest.NewRequest("GET", "/api/projects", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "ctx-role", e["role"])
	}
}

func TestFromContext_WithoutLoggerIsUsable(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Debug().Msg("noop") })
}
