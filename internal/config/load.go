package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default configuration values applied before file and environment sources.
const (
	defaultPort             = 8080
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultModelName        = "gemini-2.0-flash"
	defaultRequestTimeoutMs = 5000
	defaultConcurrency      = 10
	defaultMaxBatchSize     = 50
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values and use the COPYFORGE_ prefix with
// underscores for nesting (e.g. COPYFORGE_LLM_GEMINI_API_KEY).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("server.log_format", defaultLogFormat)
	// Registered empty so AutomaticEnv can override it during Unmarshal;
	// validation rejects the empty value if no source supplies one.
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.request_timeout_ms", defaultRequestTimeoutMs)
	v.SetDefault("batch.concurrency", defaultConcurrency)
	v.SetDefault("batch.max_size", defaultMaxBatchSize)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("COPYFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
