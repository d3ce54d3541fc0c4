package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default runner configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Grid: GridConfig{
			Width:   0,
			Height:  0,
			Density: 0.5,
		},
		Timing: TimingConfig{
			DelayMs:     500,
			DelayStepMs: 50,
			MinDelayMs:  50,
		},
		Theme: ThemeConfig{
			LiveRune:  "█",
			DeadRune:  " ",
			LiveColor: "green",
		},
	}
}
