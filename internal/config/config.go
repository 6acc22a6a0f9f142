// Package config loads the site configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"./static"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Theme Theme `envPrefix:"THEME_"`
}

// Theme configures the theme provider.
type Theme struct {
	Default      string `env:"DEFAULT" envDefault:"dark"`
	EnableSystem bool   `env:"ENABLE_SYSTEM" envDefault:"true"`
	Cookie       string `env:"COOKIE" envDefault:"theme"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	return load(env.Options{})
}

// load parses opts.Environment, or the process environment when it is nil.
func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
