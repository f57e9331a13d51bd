package config

import (
	_ "embed"
)

//go:embed defaults/timefighter.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in game configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Countdown: CountdownConfig{
			InitialSeconds: 10,
			TickIntervalMS: 1000,
		},
		Display: DisplayConfig{
			ToastMS:  3500,
			BounceMS: 400,
		},
	}
}
