// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "wrapped", "config.toml")
}

// DefaultDocumentPath returns where a statistics document is looked up when
// none is configured.
func DefaultDocumentPath() string {
	return filepath.Join(XDGDataHome(), "wrapped", "wrapped_data.json")
}

// ResolveDocumentPath returns path when set, otherwise the default document
// path if that file exists. An empty result selects the bundled sample.
func ResolveDocumentPath(path string) string {
	if path != "" {
		return path
	}
	candidate := DefaultDocumentPath()
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}
