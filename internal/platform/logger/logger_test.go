package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meepleshelf/meeple-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
		warnEnabled  bool
	}{
		{name: "debug level", logLevel: "debug", debugEnabled: true, warnEnabled: true},
		{name: "warn level", logLevel: "warn", debugEnabled: false, warnEnabled: true},
		{name: "case insensitive", logLevel: "ERROR", debugEnabled: false, warnEnabled: false},
		{name: "invalid level falls back to info", logLevel: "verbose", debugEnabled: false, warnEnabled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.Equal(t, tc.debugEnabled, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.warnEnabled, logger.Enabled(ctx, slog.LevelWarn))
		})
	}

	t.Run("becomes the default logger", func(t *testing.T) {
		logger, err := Setup(config.ServerConfig{LogLevel: "info"})
		require.NoError(t, err)
		assert.Equal(t, logger, slog.Default())
	})
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := slog.New(slog.NewJSONHandler(&buf, nil))

	t.Run("round trip through the context", func(t *testing.T) {
		ctx := WithLogger(context.Background(), attached)
		assert.Equal(t, attached, FromContext(ctx))
		assert.Equal(t, attached, FromContextOrDefault(ctx, nil))
	})

	t.Run("falls back to the process default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("falls back to the given default", func(t *testing.T) {
		assert.Equal(t, attached, FromContextOrDefault(context.Background(), attached))
	})

	t.Run("nil logger attaches the default", func(t *testing.T) {
		ctx := WithLogger(context.Background(), nil)
		assert.Equal(t, slog.Default(), FromContext(ctx))
	})
}
