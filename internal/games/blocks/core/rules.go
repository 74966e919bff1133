// Package core implements the deterministic falling-block engine: the grid,
// tetromino pieces and their rotations, collision checks, piece randomizers,
// row clearing, score bookkeeping and the session state machine that ties
// them together. It performs no I/O and has no dependencies outside the
// standard library.
package core

import (
	"errors"
	"time"
)

// Rules holds every tunable constant of a session.
type Rules struct {
	Width  int // Grid columns
	Height int // Grid rows

	BaseInterval time.Duration // Gravity interval at level 0
	IntervalStep time.Duration // Interval reduction per level
	MinInterval  time.Duration // Floor for the gravity interval

	ScoreCap      int // Score never exceeds this value
	PointsPerLine int // Flat award per cleared row
	LevelDivisor  int // Score points per level
}

// DefaultRules returns the classic 10x20 rule set.
func DefaultRules() Rules {
	return Rules{
		Width:         10,
		Height:        20,
		BaseInterval:  600 * time.Millisecond,
		IntervalStep:  20 * time.Millisecond,
		MinInterval:   80 * time.Millisecond,
		ScoreCap:      999999,
		PointsPerLine: 100,
		LevelDivisor:  500,
	}
}

// Validate reports the first rule that makes a session unplayable.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4:
		return errors.New("core: grid width must be at least 4")
	case r.Height < 4:
		return errors.New("core: grid height must be at least 4")
	case r.MinInterval <= 0:
		return errors.New("core: minimum interval must be positive")
	case r.BaseInterval < r.MinInterval:
		return errors.New("core: base interval must not be below the minimum interval")
	case r.IntervalStep < 0:
		return errors.New("core: interval step must not be negative")
	case r.ScoreCap <= 0:
		return errors.New("core: score cap must be positive")
	case r.PointsPerLine <= 0:
		return errors.New("core: points per line must be positive")
	case r.LevelDivisor <= 0:
		return errors.New("core: level divisor must be positive")
	}
	return nil
}

// TickInterval returns the gravity interval for a level.
// Higher levels fall faster, never faster than MinInterval.
func (r Rules) TickInterval(level int) time.Duration {
	interval := r.BaseInterval - time.Duration(level)*r.IntervalStep
	if interval < r.MinInterval {
		return r.MinInterval
	}
	return interval
}

// SpawnPosition returns the top-center origin where new pieces appear.
func (r Rules) SpawnPosition() Position {
	return Position{X: r.Width/2 - 1, Y: 0}
}
