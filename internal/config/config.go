package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Auth modes. "google" gates access behind the single allow-listed account;
// "none" runs the tracker open under a fixed storage key.
const (
	AuthModeGoogle = "google"
	AuthModeNone   = "none"
)

// Config holds all application configuration.
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	AuthMode       string `envconfig:"AUTH_MODE" default:"google"`
	GoogleClientID string `envconfig:"GOOGLE_CLIENT_ID"`
	AllowedEmail   string `envconfig:"ALLOWED_EMAIL"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load reads .env (when present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	cfg.GoogleClientID = strings.TrimSpace(cfg.GoogleClientID)
	cfg.AllowedEmail = strings.TrimSpace(cfg.AllowedEmail)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("invalid environment: %s (must be one of: development, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	switch c.AuthMode {
	case AuthModeGoogle, AuthModeNone:
	default:
		return fmt.Errorf("invalid auth mode: %s (must be google or none)", c.AuthMode)
	}
	return nil
}

// AuthEnabled reports whether the identity gate is in play at all.
func (c *Config) AuthEnabled() bool {
	return c.AuthMode == AuthModeGoogle
}

// SetupRequired reports whether google auth is selected but missing its client
// ID or allowed email. The gate fails closed in this state: no sign-in works
// until both values are configured.
func (c *Config) SetupRequired() bool {
	return c.AuthEnabled() && (c.GoogleClientID == "" || c.AllowedEmail == "")
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
