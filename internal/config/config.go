// Package config reads settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is filled from env vars; a .env file in the working directory
// is picked up automatically by the entry point.
type Config struct {
	DataFile string `env:"TODOCLIP_DATA_FILE"`
	Theme    string `env:"TODOCLIP_THEME" env-default:"classic"`
	NoColor  string `env:"NO_COLOR"` // any non-empty value disables color
	DebugLog string `env:"TODOCLIP_DEBUG_LOG"`
}

// ColorDisabled reports whether NO_COLOR was set, per the convention
// that any non-empty value counts.
func (c *Config) ColorDisabled() bool {
	return c.NoColor != ""
}

const dataFileName = "todos.json"

// Read loads the config, defaulting the data file to todos.json in the
// working directory.
func Read() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.DataFile == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		cfg.DataFile = filepath.Join(wd, dataFileName)
	}
	return cfg, nil
}
