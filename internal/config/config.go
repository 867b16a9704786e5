// Package config provides YAML-based configuration loading for the game.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	Tick  TickConfig  `yaml:"tick"`
	Spawn SpawnConfig `yaml:"spawn"`
	Board BoardConfig `yaml:"board"`
}

// TickConfig defines simulation timing.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"` // Milliseconds between simulation ticks
}

// SpawnConfig defines how blocks appear at the top of the board.
type SpawnConfig struct {
	// Probability is the chance, per column per tick, that a new block
	// spawns in that column. Trials are independent, so a single tick may
	// spawn zero, one, or many blocks.
	Probability float64 `yaml:"probability"`
}

// BoardConfig defines minimum playfield dimensions.
// The board is sized to the terminal; these floors keep tiny terminals playable.
type BoardConfig struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}
