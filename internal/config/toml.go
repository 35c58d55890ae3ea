// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Show  ShowConfig  `toml:"show"`
	Print PrintConfig `toml:"print"`
}

// ShowConfig maps slideshow settings.
type ShowConfig struct {
	Data      *string `toml:"data"`
	Mouse     *bool   `toml:"mouse"`
	AltScreen *bool   `toml:"alt-screen"`
	LogFile   *string `toml:"log-file"`
}

// PrintConfig maps settings of the print command.
type PrintConfig struct {
	Width *int `toml:"width"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
