package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/copyforge-api/internal/config"
)

func TestSetupValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: level, LogFormat: "json"})
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestSetupInvalidLevelFallsBack(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "verbose", LogFormat: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)

	// Fallback level is info: debug is filtered, info is not.
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestSetupTextFormat(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	log, err := Setup(config.ServerConfig{LogLevel: "warn", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, log, slog.Default())
}

func TestLoggerContextRoundTrip(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stdout, nil))
	scoped := fallback.With("batch_id", "abc")

	ctx := WithLogger(context.Background(), scoped)
	assert.Equal(t, scoped, FromContextOrDefault(ctx, fallback))

	// Without a stored logger the fallback wins.
	assert.Equal(t, fallback, FromContextOrDefault(context.Background(), fallback))
}
