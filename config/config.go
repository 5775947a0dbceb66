// Package config holds the environment-derived configuration for the API.
// It is loaded once in main and passed explicitly to everything that needs it.
package config

import (
	"fmt"
	"log"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"5000"`
	DatabaseDSN string `env:"DATABASE_DSN"`
	JWTSecret   string `env:"JWT_SECRET"`
	CatalogURL  string `env:"CATALOG_API_URL" envDefault:"https://fakestoreapi.com"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Unable to load .env file: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
