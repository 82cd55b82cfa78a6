package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"stooda/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the config at path. With no path and no discoverable
// stooda.yml it falls back to the built-in defaults, so extraction
// works in a bare directory.
func loadConfig(configPath string) (config.Config, error) {
	if strings.TrimSpace(configPath) == "" {
		found, err := config.FindConfigPath("")
		if err != nil {
			return config.Default(), nil
		}
		return config.Load(found)
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("resolve config path: %w", err)
	}
	return config.Load(abs)
}
