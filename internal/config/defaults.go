package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Default returns the default game configuration.
func Default() Config {
	return Config{
		Tick: TickConfig{
			IntervalMS: 200,
		},
		Spawn: SpawnConfig{
			Probability: 0.1,
		},
		Board: BoardConfig{
			MinWidth:  10,
			MinHeight: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
