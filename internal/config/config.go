package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Transport selectors.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the server configuration, loaded from YF_MCP_-prefixed
// environment variables.
type Config struct {
	// Transport selection
	Transport string `env:"TRANSPORT" envDefault:"stdio"`

	// HTTP transport
	HTTPHost      string   `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort      int      `env:"HTTP_PORT" envDefault:"3000"`
	HTTPStateless bool     `env:"HTTP_STATELESS" envDefault:"false"`
	CORSOrigins   []string `env:"HTTP_CORS_ORIGINS" envDefault:"*"`

	// Optional OAuth settings. Parsed and validated only; enforcement is
	// delegated to an external authorization server and not wired here.
	EnableAuth     bool     `env:"HTTP_ENABLE_AUTH" envDefault:"false"`
	IssuerURL      string   `env:"HTTP_ISSUER_URL"`
	RequiredScopes []string `env:"HTTP_REQUIRED_SCOPES" envDefault:"read"`

	// Observability
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Rate limiting placeholders. Nothing enforces these yet.
	EnableRateLimit   bool `env:"ENABLE_RATE_LIMIT" envDefault:"false"`
	RequestsPerMinute int  `env:"REQUESTS_PER_MINUTE" envDefault:"60"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	opts := env.Options{
		Prefix: "YF_MCP_",
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf("invalid transport: %s (expected %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid port: %d", c.HTTPPort)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.RequestsPerMinute < 1 {
		return fmt.Errorf("requests per minute must be positive, got %d", c.RequestsPerMinute)
	}

	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}
