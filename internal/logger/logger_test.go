package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{LogLevelDebug, slog.LevelDebug},
		{LogLevelInfo, slog.LevelInfo},
		{LogLevelWarn, slog.LevelWarn},
		{LogLevelWarning, slog.LevelWarn},
		{LogLevelError, slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: LogFormatJSON}.IsJSON())
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: LogFormatText}.IsJSON())
	assert.False(t, Config{}.IsJSON())
}

func TestConfigBaseAttributes(t *testing.T) {
	cfg := NewConfig(LogLevelInfo, LogFormatText, "outfit-ledger", "1.2.3", "prod", false)

	attrs := cfg.BaseAttributes()

	require.Len(t, attrs, 3)
	assert.Equal(t, slog.String(AttrKeyService, "outfit-ledger"), attrs[0])
	assert.Equal(t, slog.String(AttrKeyVersion, "1.2.3"), attrs[1])
	assert.Equal(t, slog.String(AttrKeyEnvironment, "prod"), attrs[2])
}

func TestRequestIDContext(t *testing.T) {
	t.Run("round trips through the context", func(t *testing.T) {
		id := GenerateRequestID()
		require.NotEmpty(t, id)

		ctx := WithRequestID(context.Background(), id)
		got, ok := RequestIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("absent from a bare context", func(t *testing.T) {
		_, ok := RequestIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
	})
}

func TestFromContext(t *testing.T) {
	t.Run("bare context falls back to the default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("request scoped context yields a non-nil child logger", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-123")
		log := FromContext(ctx)
		require.NotNil(t, log)
		assert.NotEqual(t, slog.Default(), log)
	})
}
