// Package config provides YAML-based configuration loading and difficulty
// presets for the blocks engine.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	blockscore "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// BlocksConfig contains every tunable of a blocks session.
type BlocksConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Randomizer RandomizerConfig `yaml:"randomizer"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity interval curve:
// interval = max(min_interval_ms, base_interval_ms - level*interval_step_ms).
type TimingConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"`
	IntervalStepMs int `yaml:"interval_step_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
}

// ScoringConfig defines score and level bookkeeping.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
	ScoreCap      int `yaml:"score_cap"`
	LevelDivisor  int `yaml:"level_divisor"` // Points per level
}

// RandomizerConfig tunes piece selection.
type RandomizerConfig struct {
	// WeightedBias is the extra S/Z weight per level used by the weighted mode.
	WeightedBias float64 `yaml:"weighted_bias"`
}

// DifficultyConfig names the preset applied on top of the timing section.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Rules converts the configuration to engine rules.
func (c BlocksConfig) Rules() blockscore.Rules {
	return blockscore.Rules{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		BaseInterval:  time.Duration(c.Timing.BaseIntervalMs) * time.Millisecond,
		IntervalStep:  time.Duration(c.Timing.IntervalStepMs) * time.Millisecond,
		MinInterval:   time.Duration(c.Timing.MinIntervalMs) * time.Millisecond,
		ScoreCap:      c.Scoring.ScoreCap,
		PointsPerLine: c.Scoring.PointsPerLine,
		LevelDivisor:  c.Scoring.LevelDivisor,
	}
}

// Validate reports the first setting that would make a session unplayable.
func (c BlocksConfig) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Randomizer.WeightedBias < 0 {
		return errors.New("config: randomizer.weighted_bias must not be negative")
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	return nil
}

// YAML renders the configuration in the same layout LoadBlocks reads.
func (c BlocksConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
