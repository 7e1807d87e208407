package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Timing: TimingConfig{
			BaseInterval: 500 * time.Millisecond,
			IntervalStep: 50 * time.Millisecond,
			MinInterval:  50 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			LinePoints:    100,
			LinesPerLevel: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
