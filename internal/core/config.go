package core

import "time"

// RuntimeConfig contains configuration passed to the simulation driver at
// startup: the terminal viewport, the initial inter-tick delay and the RNG
// seed used for generation 0.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Delay   time.Duration // Initial delay between generations
	Seed    int64         // RNG seed; 0 means use current time in the platform layer
}

// DefaultDelay is the initial pause between generations, matching the
// pacing the simulation is tuned for.
const DefaultDelay = 500 * time.Millisecond

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Delay:   DefaultDelay,
		Seed:    0,
	}
}
