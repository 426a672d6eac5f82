// Package config loads voice-engine configuration from config.yaml with
// environment variable overrides. Secrets (database password, LLM API key)
// must only come from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for voice-engine.
// Environment variables always override YAML values for fields that support both.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Debug    bool   `yaml:"debug" env:"DEBUG" env-default:"false"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// LLM provider configuration
	LLM LLMConfig `yaml:"llm"`

	// MigrationsPath is the directory containing golang-migrate SQL files.
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	// URL, when set, takes precedence over the discrete fields below.
	URL            string `yaml:"-" env:"DATABASE_URL"`
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"voice"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"voice_engine"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
}

// LLMConfig holds LLM provider settings. The model itself is requested per
// generation call; only the provider choice and credentials live here.
type LLMConfig struct {
	// UseStub selects the deterministic stub variant. No network I/O, no
	// credential required. Intended for tests and local development.
	UseStub bool `yaml:"use_stub_llm" env:"USE_STUB_LLM" env-default:"false"`

	// Provider selects the hosted backend when the stub is disabled.
	// Supported: "openai" (any OpenAI-compatible endpoint), "anthropic".
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`

	// BaseURL overrides the provider's default endpoint. Useful for
	// OpenAI-compatible local servers (vLLM, Ollama).
	BaseURL string `yaml:"base_url" env:"LLM_BASE_URL" env-default:""`

	// APIKey authenticates against the hosted provider. Secret - env only.
	APIKey string `yaml:"-" env:"LLM_API_KEY"`

	// MaxTokens caps completion length for provider calls.
	MaxTokens int `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"2048"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When config.yaml is absent, configuration comes from the
// environment alone. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces cross-field constraints that tags cannot express.
func (c *Config) validate() error {
	if !c.LLM.UseStub {
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required when use_stub_llm is false")
		}
		switch c.LLM.Provider {
		case "openai", "anthropic":
		default:
			return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
		}
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string.
// DATABASE_URL takes precedence when set.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
