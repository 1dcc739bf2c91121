package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackTraceHandler_Handle(t *testing.T) {
	logRequest := func(ctx context.Context, level slog.Level, wantKeys []string, absentKeys []string) func(t *testing.T) {
		return func(t *testing.T) {
			var buf bytes.Buffer
			log := NewStructuredLogger(&buf, slog.LevelInfo)

			log.Log(ctx, level, "message")

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

			for _, key := range wantKeys {
				assert.Contains(t, record, key)
			}
			for _, key := range absentKeys {
				assert.NotContains(t, record, key)
			}
		}
	}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, ClientIDKey, "client-1")

	t.Run("info_with_ids", logRequest(ctx, slog.LevelInfo,
		[]string{"request_id", "client_id"}, []string{"stack_trace"}))
	t.Run("error_adds_stack_trace", logRequest(ctx, slog.LevelError,
		[]string{"request_id", "stack_trace"}, nil))
	t.Run("no_ids_in_context", logRequest(context.Background(), slog.LevelWarn,
		nil, []string{"request_id", "client_id", "stack_trace"}))
}

func TestStackTraceHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewStructuredLogger(&buf, slog.LevelInfo).With(slog.String("component", "resolver"))

	log.InfoContext(context.WithValue(context.Background(), RequestIDKey, "req-2"), "message")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolver", record["component"])
	assert.Equal(t, "req-2", record["request_id"])
}
