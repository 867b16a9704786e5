package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.dodge/config.yaml -> ./configs/dodge.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dodge.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// sanitize fills in unusable values with defaults.
func sanitize(cfg Config) Config {
	def := Default()
	if cfg.Tick.IntervalMS <= 0 {
		cfg.Tick.IntervalMS = def.Tick.IntervalMS
	}
	if cfg.Spawn.Probability < 0 || cfg.Spawn.Probability > 1 {
		cfg.Spawn.Probability = def.Spawn.Probability
	}
	if cfg.Board.MinWidth <= 0 {
		cfg.Board.MinWidth = def.Board.MinWidth
	}
	if cfg.Board.MinHeight <= 0 {
		cfg.Board.MinHeight = def.Board.MinHeight
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", filename)
}
