package config

import "time"

// Interval returns the drop interval for the given level (1-based).
func (t TimingConfig) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := t.BaseInterval - time.Duration(level-1)*t.IntervalStep
	return max(t.MinInterval, d)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseInterval = 700 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.BaseInterval = 300 * time.Millisecond
		cfg.Timing.IntervalStep = 25 * time.Millisecond
	case DifficultyFixed:
		cfg.Timing.IntervalStep = 0
	}
}
