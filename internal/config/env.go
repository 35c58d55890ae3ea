package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds overrides read from the environment. Unset variables stay nil.
type EnvConfig struct {
	Data    *string `env:"WRAPPED_DATA"`
	LogFile *string `env:"WRAPPED_LOG_FILE"`
	Width   *int    `env:"WRAPPED_WIDTH"`
}

// LoadEnv reads EnvConfig from the process environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Merge returns a copy of fc with the environment values applied on top.
func (e EnvConfig) Merge(fc FileConfig) FileConfig {
	if e.Data != nil {
		fc.Show.Data = e.Data
	}
	if e.LogFile != nil {
		fc.Show.LogFile = e.LogFile
	}
	if e.Width != nil {
		fc.Print.Width = e.Width
	}
	return fc
}
