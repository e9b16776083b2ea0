package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Batch  BatchConfig  `mapstructure:"batch"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// RequestTimeoutMs is the per-task deadline for one generation call.
	RequestTimeoutMs int `mapstructure:"request_timeout_ms" validate:"required,gt=0"`
}

// BatchConfig contains the batch processing limits.
type BatchConfig struct {
	// Concurrency caps how many generation calls are in flight at once.
	Concurrency int `mapstructure:"concurrency" validate:"required,gt=0"`

	// MaxSize bounds how many offers a single batch request may carry.
	MaxSize int `mapstructure:"max_size" validate:"required,gt=0"`
}
