package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported web server adapters
const (
	AdapterEcho  = "echo"
	AdapterGin   = "gin"
	AdapterFiber = "fiber"
)

// Config holds application configuration
type Config struct {
	HTTP          HTTP `envPrefix:"HTTP_"`
	Log           Log  `envPrefix:"LOG_"`
	SeedDemoUsers bool `env:"SEED_DEMO_USERS" envDefault:"true"`
}

// HTTP contains web server parameters.
type HTTP struct {
	Host            string        `env:"HOST" envDefault:""`
	Port            int           `env:"PORT" envDefault:"8080"`
	Adapter         string        `env:"ADAPTER" envDefault:"echo"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Log contains logger parameters.
type Log struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// Addr returns the listen address
func (h HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// LoadConfig loads configuration from environment variables, after applying
// the given .env files when they exist. Variables already set win over .env values.
func LoadConfig(dotenvFiles ...string) (*Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env cannot express with tags
func (c *Config) Validate() error {
	switch c.HTTP.Adapter {
	case AdapterEcho, AdapterGin, AdapterFiber:
	default:
		return fmt.Errorf("invalid adapter %q: must be %q, %q or %q", c.HTTP.Adapter, AdapterEcho, AdapterGin, AdapterFiber)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.HTTP.Port)
	}
	return nil
}
