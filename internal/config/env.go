package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds path overrides read from the environment.
type Env struct {
	DBPath     string `env:"HUMBENCH_DB_PATH"`
	ConfigPath string `env:"HUMBENCH_CONFIG_PATH"`
	LogPath    string `env:"HUMBENCH_LOG_PATH"`
}

// LoadEnv parses environment overrides and fills unset paths with XDG defaults.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.DBPath == "" {
		e.DBPath = DefaultDBPath()
	}
	if e.ConfigPath == "" {
		e.ConfigPath = DefaultConfigPath()
	}
	if e.LogPath == "" {
		e.LogPath = DefaultLogPath()
	}
	return e, nil
}
