package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the image service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"image-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"IMAGE_API_PORT" envDefault:"8188"`
	LogLevel        string        `env:"IMAGE_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"IMAGE_LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Observability
	EnableTracing bool   `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`

	// Inference provider (required, no defaults for the credential)
	ProviderBaseURL string        `env:"PROVIDER_BASE_URL" envDefault:"https://router.huggingface.co"`
	ProviderAPIKey  string        `env:"PROVIDER_API_KEY,notEmpty"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"120s"`

	// Model registry
	DefaultModel     string `env:"DEFAULT_MODEL" envDefault:"black-forest-labs/FLUX.1-dev"`
	ModelsConfigFile string `env:"MODELS_CONFIG_FILE"` // optional YAML override for the built-in registry

	// Generation limits
	MaxPromptLength         int `env:"MAX_PROMPT_LENGTH" envDefault:"1000"`
	MaxNegativePromptLength int `env:"MAX_NEGATIVE_PROMPT_LENGTH" envDefault:"500"`
	MinImageSize            int `env:"MIN_IMAGE_SIZE" envDefault:"256"`
	MaxImageSize            int `env:"MAX_IMAGE_SIZE" envDefault:"2048"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.ProviderBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ProviderBaseURL), "/")
	cfg.ProviderAPIKey = strings.TrimSpace(cfg.ProviderAPIKey)
	cfg.DefaultModel = strings.TrimSpace(cfg.DefaultModel)

	if cfg.ProviderBaseURL == "" {
		return nil, fmt.Errorf("PROVIDER_BASE_URL must not be empty")
	}
	if cfg.MinImageSize >= cfg.MaxImageSize {
		return nil, fmt.Errorf("MIN_IMAGE_SIZE (%d) must be less than MAX_IMAGE_SIZE (%d)", cfg.MinImageSize, cfg.MaxImageSize)
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("IMAGE_API_PORT %d is outside valid range", cfg.HTTPPort)
	}
	if cfg.MaxPromptLength <= 0 {
		return nil, fmt.Errorf("MAX_PROMPT_LENGTH must be positive")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
