package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in increasing order of pressure.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a user-supplied name to a preset. Case is ignored.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyBlocksPreset rewrites the timing section for a preset.
//
//	easy    slower start, gentle slope
//	normal  the classic 600ms - 20ms/level, 80ms floor
//	hard    fast start, 60ms floor
//	fixed   gravity never speeds up
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing = TimingConfig{BaseIntervalMs: 800, IntervalStepMs: 15, MinIntervalMs: 120}
	case DifficultyNormal:
		cfg.Timing = TimingConfig{BaseIntervalMs: 600, IntervalStepMs: 20, MinIntervalMs: 80}
	case DifficultyHard:
		cfg.Timing = TimingConfig{BaseIntervalMs: 400, IntervalStepMs: 20, MinIntervalMs: 60}
	case DifficultyFixed:
		cfg.Timing.IntervalStepMs = 0
	default:
		return
	}
	cfg.Difficulty.Preset = preset
}
