package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and host keys.
const AppDir = ".citybomber"

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.citybomber/config.yaml -> ./configs/citybomber.yaml -> embedded default.
// Files are applied on top of the defaults, so they may set only the keys they change.
func Load(customPath string) (BomberConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BomberConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BomberConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parseAt(userCfgPath, data)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "citybomber.yaml")); err == nil {
		return parseAt("configs/citybomber.yaml", data)
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBomberYAML)
	if err != nil {
		return DefaultBomberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAt parses a discovered file; a broken file found on disk is an error,
// not a silent fallback, because the user put it there.
func parseAt(path string, data []byte) (BomberConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		return BomberConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (BomberConfig, error) {
	cfg := DefaultBomberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BomberConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BomberConfig{}, err
	}
	return cfg, nil
}

// UserPath returns a path inside ~/.citybomber, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, filename)
}
