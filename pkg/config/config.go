package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for resto-insights.
// Configuration can come from YAML file (config.yaml) or environment
// variables; environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Data source files. ReviewsPath may be empty; the engine then runs in
	// synthetic enrichment mode.
	RestaurantsPath string `yaml:"restaurants_path" env:"RESTAURANTS_PATH" env-default:"restaurants.csv"`
	ReviewsPath     string `yaml:"reviews_path" env:"REVIEWS_PATH" env-default:"reviews.csv"`

	// FallbackSeed drives the synthetic response-rate and momentum draws.
	// Fixed by default so repeated loads of the same files are identical.
	FallbackSeed uint64 `yaml:"fallback_seed" env:"FALLBACK_SEED" env-default:"42"`
}

// Load reads config.yaml (if present) and environment variables.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
		// No YAML file: environment variables and defaults only.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if cfg.RestaurantsPath == "" {
		return nil, fmt.Errorf("restaurants_path must be set")
	}

	return cfg, nil
}
