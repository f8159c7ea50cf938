package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/phrazzld/orders-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	// Preserve the process-wide default logger across test cases
	oldDefault := slog.Default()
	defer slog.SetDefault(oldDefault)

	tests := []struct {
		name         string
		logLevel     string
		debugEnabled bool
	}{
		{
			name:         "debug level enables debug logs",
			logLevel:     "debug",
			debugEnabled: true,
		},
		{
			name:         "info level suppresses debug logs",
			logLevel:     "info",
			debugEnabled: false,
		},
		{
			name:         "error level suppresses debug logs",
			logLevel:     "error",
			debugEnabled: false,
		},
		{
			name:         "unknown level falls back to info",
			logLevel:     "loud",
			debugEnabled: false,
		},
		{
			name:         "level parsing is case-insensitive",
			logLevel:     "DEBUG",
			debugEnabled: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NotNil(t, logger)

			enabled := logger.Enabled(context.Background(), slog.LevelDebug)
			assert.Equal(t, tc.debugEnabled, enabled)

			// Setup installs the logger as the process default
			assert.Equal(t, tc.debugEnabled,
				slog.Default().Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel() // Enable parallel execution
	ctxLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	defLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Logger stored in context wins
	ctx := WithLogger(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, FromContextOrDefault(ctx, defLogger))

	// Empty context falls back to the provided default
	assert.Same(t, defLogger, FromContextOrDefault(context.Background(), defLogger))

	// Nil default falls back to the process-wide default
	assert.NotNil(t, FromContextOrDefault(context.Background(), nil))
}

func TestFromContext(t *testing.T) {
	t.Parallel() // Enable parallel execution
	stored := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := WithLogger(context.Background(), stored)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, stored, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
