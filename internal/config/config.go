// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"fmt"
	"time"
)

// BlockfallConfig contains all tunable parameters of the game.
type BlockfallConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// TimingConfig defines how fast pieces fall.
// The drop interval at a level is max(MinInterval, BaseInterval-(level-1)*IntervalStep).
type TimingConfig struct {
	BaseInterval time.Duration `yaml:"base_interval"` // Interval at level 1
	IntervalStep time.Duration `yaml:"interval_step"` // Reduction per level
	MinInterval  time.Duration `yaml:"min_interval"`  // Floor
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinePoints    int `yaml:"line_points"`     // Points per cleared line, multiplied by level
	LinesPerLevel int `yaml:"lines_per_level"` // Lines needed to advance one level
}

// Validate checks that the configuration can drive a game.
func (c BlockfallConfig) Validate() error {
	if c.Timing.BaseInterval <= 0 {
		return fmt.Errorf("config: timing.base_interval must be positive, got %s", c.Timing.BaseInterval)
	}
	if c.Timing.MinInterval <= 0 {
		return fmt.Errorf("config: timing.min_interval must be positive, got %s", c.Timing.MinInterval)
	}
	if c.Timing.IntervalStep < 0 {
		return fmt.Errorf("config: timing.interval_step must not be negative, got %s", c.Timing.IntervalStep)
	}
	if c.Scoring.LinePoints < 0 {
		return fmt.Errorf("config: scoring.line_points must not be negative, got %d", c.Scoring.LinePoints)
	}
	if c.Scoring.LinesPerLevel <= 0 {
		return fmt.Errorf("config: scoring.lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
