// Package config reads dicesim defaults from the environment.
package config

import (
	"fmt"

	"dicesim/internal/engine"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults applied when a scenario leaves a value unset.
type Config struct {
	Simulations int    `env:"DICESIM_SIMULATIONS" envDefault:"10000"`
	Rounds      int    `env:"DICESIM_ROUNDS" envDefault:"1"`
	Seed        uint64 `env:"DICESIM_SEED" envDefault:"0"`
	LogLevel    string `env:"DICESIM_LOG_LEVEL" envDefault:"info"`
	LogJSON     bool   `env:"DICESIM_LOG_JSON" envDefault:"false"`
}

// Load parses the environment and validates the numeric defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := engine.ValidateOptions(cfg.Options()); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Options converts the defaults to engine options.
func (c Config) Options() engine.Options {
	return engine.Options{
		NumSimulations: c.Simulations,
		NumRounds:      c.Rounds,
		Seed:           c.Seed,
	}
}
