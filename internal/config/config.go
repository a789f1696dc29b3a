// Package config provides YAML-based configuration loading and validation
// for the blockfall engine: board dimensions, the scoring table, and the
// gravity curve.
package config

import (
	"fmt"
	"time"

	"github.com/mlevkov/blockfall/internal/game"
)

// Config contains all tunables for a game. Structural validity is required
// before a game can start; every transition depends on these values.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Gravity GravityConfig `yaml:"gravity"`
}

// BoardConfig defines the playing field dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines the per-line-count rewards and the level threshold.
type ScoringConfig struct {
	Single        int `yaml:"single"`
	Double        int `yaml:"double"`
	Triple        int `yaml:"triple"`
	Tetris        int `yaml:"tetris"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// GravityConfig defines the drop-interval curve: the base cadence, the
// floor, and how much each level shaves off.
type GravityConfig struct {
	BaseIntervalMs  int `yaml:"base_interval_ms"`
	MinIntervalMs   int `yaml:"min_interval_ms"`
	DecayPerLevelMs int `yaml:"decay_per_level_ms"`
}

// Validate checks every tunable the simulation depends on. Invalid
// configuration is fatal at startup; the state machine is not well-defined
// without it.
func (c Config) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board width %d is too narrow for a piece", c.Board.Width)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("config: board height %d is too short for a piece", c.Board.Height)
	}
	for _, v := range []struct {
		name  string
		value int
	}{
		{"scoring.single", c.Scoring.Single},
		{"scoring.double", c.Scoring.Double},
		{"scoring.triple", c.Scoring.Triple},
		{"scoring.tetris", c.Scoring.Tetris},
	} {
		if v.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", v.name, v.value)
		}
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel)
	}
	if c.Gravity.BaseIntervalMs <= 0 {
		return fmt.Errorf("config: gravity.base_interval_ms must be positive, got %d", c.Gravity.BaseIntervalMs)
	}
	if c.Gravity.MinIntervalMs <= 0 || c.Gravity.MinIntervalMs > c.Gravity.BaseIntervalMs {
		return fmt.Errorf("config: gravity.min_interval_ms must be in (0, base], got %d", c.Gravity.MinIntervalMs)
	}
	if c.Gravity.DecayPerLevelMs < 0 {
		return fmt.Errorf("config: gravity.decay_per_level_ms must be non-negative, got %d", c.Gravity.DecayPerLevelMs)
	}
	return nil
}

// Rules converts validated configuration into the engine's policy value.
func (c Config) Rules() game.Rules {
	return game.Rules{
		Width:            c.Board.Width,
		Height:           c.Board.Height,
		LineScores:       [5]int{0, c.Scoring.Single, c.Scoring.Double, c.Scoring.Triple, c.Scoring.Tetris},
		LinesPerLevel:    c.Scoring.LinesPerLevel,
		BaseDropInterval: time.Duration(c.Gravity.BaseIntervalMs) * time.Millisecond,
		MinDropInterval:  time.Duration(c.Gravity.MinIntervalMs) * time.Millisecond,
		DecayPerLevel:    time.Duration(c.Gravity.DecayPerLevelMs) * time.Millisecond,
	}
}
