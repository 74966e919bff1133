package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration. It matches the
// embedded defaults/blocks.yaml.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Grid: GridConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			BaseIntervalMs: 600,
			IntervalStepMs: 20,
			MinIntervalMs:  80,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
			ScoreCap:      999999,
			LevelDivisor:  500,
		},
		Randomizer: RandomizerConfig{
			WeightedBias: 0.25,
		},
	}
}
