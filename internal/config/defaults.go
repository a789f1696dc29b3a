package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the default game configuration: a guideline-style 10x20
// board with 100/300/500/800 rewards and a level every 10 lines.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			Single:        100,
			Double:        300,
			Triple:        500,
			Tetris:        800,
			LinesPerLevel: 10,
		},
		Gravity: GravityConfig{
			BaseIntervalMs:  800,
			MinIntervalMs:   100,
			DecayPerLevelMs: 60,
		},
	}
}
