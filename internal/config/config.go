// Package config provides YAML-based configuration loading for the life
// runner: grid parameters, tick pacing and the render theme.
package config

// LifeConfig contains all user-tunable settings for the simulation runner.
type LifeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// GridConfig defines the simulation grid parameters.
type GridConfig struct {
	// Width and Height pin the grid dimensions. Zero means size the grid
	// to the terminal viewport at startup.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Density is the live probability used when seeding generation 0.
	Density float64 `yaml:"density"`
}

// TimingConfig defines the inter-tick delay and how the arrow keys move it.
type TimingConfig struct {
	DelayMs     int `yaml:"delay_ms"`      // initial delay between generations
	DelayStepMs int `yaml:"delay_step_ms"` // adjustment per keypress
	MinDelayMs  int `yaml:"min_delay_ms"`  // fastest allowed pacing
}

// ThemeConfig defines how cells are drawn.
type ThemeConfig struct {
	LiveRune  string `yaml:"live_rune"`
	DeadRune  string `yaml:"dead_rune"`
	LiveColor string `yaml:"live_color"` // name from the core palette
}
