package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// PlaceholderMarker marks a relay endpoint that was never configured
const PlaceholderMarker = "yourFormIdHere"

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Relay (Formspree-compatible) configuration
	RelayConnectorCfg RelayConnectorConfig `envPrefix:"RELAY_"`

	// Per-visitor application sessions of the HTTP API
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type RelayConnectorConfig struct {
	HTTPClientConfig
	Endpoint string `env:"ENDPOINT" envDefault:"https://formspree.io/f/yourFormIdHere"`
}

// Configured reports whether the endpoint points at a real relay form
func (c RelayConnectorConfig) Configured() bool {
	return c.Endpoint != "" && !strings.Contains(c.Endpoint, PlaceholderMarker)
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"0s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"30s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	TLSHandshakeTimeout   time.Duration `env:"TLS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"0s"`
	Token                 string        `env:"TOKEN"`
}

type SessionConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

// LoadConfig reads the -env flag and loads configuration for that environment
func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	return Load(*envFlag)
}

// Load loads .env.<environment> if present and parses the process environment
func Load(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Missing env file is fine: variables may be set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}

	switch cfg.LogFormat {
	case "console", "json":
	default:
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be console or json, got %q", cfg.LogFormat))
	}

	if cfg.RelayConnectorCfg.Configured() && !strings.HasPrefix(cfg.RelayConnectorCfg.Endpoint, "http://") &&
		!strings.HasPrefix(cfg.RelayConnectorCfg.Endpoint, "https://") {
		errors = append(errors, fmt.Sprintf("RELAY_ENDPOINT must be an http(s) URL, got %q", cfg.RelayConnectorCfg.Endpoint))
	}

	if cfg.RelayConnectorCfg.RequestTimeout < 0 || cfg.RelayConnectorCfg.ResponseHeaderTimeout < 0 ||
		cfg.RelayConnectorCfg.TLSHandshakeTimeout < 0 {
		errors = append(errors, "RELAY_TIMEOUT, RELAY_RESPONSE_HEADER_TIMEOUT and RELAY_TLS_HANDSHAKE_TIMEOUT must not be negative")
	}

	if cfg.SessionCfg.TTL <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be positive, got %s", cfg.SessionCfg.TTL))
	}

	if cfg.SessionCfg.CleanupInterval <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_CLEANUP_INTERVAL must be positive, got %s", cfg.SessionCfg.CleanupInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
