package life

import "math/rand"

// DefaultDensity is the live-cell probability used for generation 0.
const DefaultDensity = 0.5

// Seed overwrites every cell of g with an independent coin flip from rng.
// The seeder holds no random state of its own; callers own the generator
// and its seeding, which is what makes reseeding reproducible in tests.
func Seed(g *Grid, rng *rand.Rand) {
	SeedDensity(g, rng, DefaultDensity)
}

// SeedDensity overwrites every cell of g, setting each live with
// probability density. Every cell is visited and assigned exactly once.
func SeedDensity(g *Grid, rng *rand.Rand, density float64) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.Set(row, col, rng.Float64() < density)
		}
	}
}
