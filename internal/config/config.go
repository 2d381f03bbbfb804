package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the CLI and the HTTP
// server. The engine itself takes no configuration beyond its built-in
// keyword tables.
type Config struct {
	Addr           string `env:"PFA_ADDR" envDefault:":8080"`
	LogLevel       string `env:"PFA_LOG_LEVEL" envDefault:"info"`
	MaxUploadBytes int    `env:"PFA_MAX_UPLOAD_BYTES" envDefault:"33554432"`
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}
