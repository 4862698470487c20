package web

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the web server settings. Values come from the
// environment; cmd/web lets flags override them.
type Config struct {
	Addr       string `env:"BREACHFORGE_ADDR" envDefault:":8080"`
	CardsFile  string `env:"BREACHFORGE_CARDS"`
	BasicsFile string `env:"BREACHFORGE_BASICS"`
}

// ConfigFromEnv loads configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
