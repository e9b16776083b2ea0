package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("COPYFORGE_LLM_GEMINI_API_KEY", "test-api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 5000, cfg.LLM.RequestTimeoutMs)
	assert.Equal(t, 10, cfg.Batch.Concurrency)
	assert.Equal(t, 50, cfg.Batch.MaxSize)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("COPYFORGE_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("COPYFORGE_SERVER_PORT", "9090")
	t.Setenv("COPYFORGE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("COPYFORGE_SERVER_LOG_FORMAT", "text")
	t.Setenv("COPYFORGE_LLM_MODEL_NAME", "gemini-2.0-pro")
	t.Setenv("COPYFORGE_LLM_REQUEST_TIMEOUT_MS", "2500")
	t.Setenv("COPYFORGE_BATCH_CONCURRENCY", "4")
	t.Setenv("COPYFORGE_BATCH_MAX_SIZE", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "text", cfg.Server.LogFormat)
	assert.Equal(t, "gemini-2.0-pro", cfg.LLM.ModelName)
	assert.Equal(t, 2500, cfg.LLM.RequestTimeoutMs)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, 20, cfg.Batch.MaxSize)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("COPYFORGE_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "COPYFORGE_SERVER_LOG_LEVEL", "verbose"},
		{"invalid log format", "COPYFORGE_SERVER_LOG_FORMAT", "xml"},
		{"port out of range", "COPYFORGE_SERVER_PORT", "70000"},
		{"negative timeout", "COPYFORGE_LLM_REQUEST_TIMEOUT_MS", "-1"},
		{"zero concurrency", "COPYFORGE_BATCH_CONCURRENCY", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COPYFORGE_LLM_GEMINI_API_KEY", "test-api-key")
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
