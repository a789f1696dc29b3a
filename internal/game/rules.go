package game

import "time"

// Rules bundles the tunables of a game: board dimensions, the per-count
// line-clear rewards, the level threshold, and the gravity curve. A Rules
// value is built from validated configuration and never changes mid-game.
type Rules struct {
	Width  int
	Height int

	// LineScores is indexed by lines cleared at once (1..4). Index 0 is unused.
	LineScores    [5]int
	LinesPerLevel int

	BaseDropInterval time.Duration
	MinDropInterval  time.Duration
	DecayPerLevel    time.Duration
}

// ScoreFor returns the reward for clearing the given number of lines at once.
// Rewards are fixed per event, not cumulative multipliers.
func (r Rules) ScoreFor(cleared int) int {
	if cleared < 1 || cleared > 4 {
		return 0
	}
	return r.LineScores[cleared]
}

// LevelFor returns the level reached after the given cumulative line count.
func (r Rules) LevelFor(lines int) int {
	if r.LinesPerLevel <= 0 {
		return 0
	}
	return lines / r.LinesPerLevel
}

// DropInterval returns the gravity cadence for a level: the base interval
// shortened per level, floored at the minimum. The core does not drive ticks
// itself; the platform issues Tick commands at this cadence.
func (r Rules) DropInterval(level int) time.Duration {
	d := r.BaseDropInterval - time.Duration(level)*r.DecayPerLevel
	if d < r.MinDropInterval {
		return r.MinDropInterval
	}
	return d
}

// SpawnPosition returns the board position at which new pieces appear.
func (r Rules) SpawnPosition() Position {
	return Position{X: r.Width / 2, Y: 0}
}
