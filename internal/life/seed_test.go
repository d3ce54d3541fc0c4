package life

import (
	"math/rand"
	"testing"
)

func TestSeedDeterministic(t *testing.T) {
	a := mustGrid(t, 50, 40)
	b := mustGrid(t, 50, 40)

	Seed(a, rand.New(rand.NewSource(1234)))
	Seed(b, rand.New(rand.NewSource(1234)))

	if !a.Equal(b) {
		t.Error("Seeding with the same source should produce identical grids")
	}

	c := mustGrid(t, 50, 40)
	Seed(c, rand.New(rand.NewSource(4321)))
	if a.Equal(c) {
		t.Error("Different seeds should (overwhelmingly) produce different grids")
	}
}

func TestSeedDensityExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g := mustGrid(t, 30, 20)
	SeedDensity(g, rng, 1.0)
	if g.Population() != 30*20 {
		t.Errorf("Density 1.0: population = %d, want %d", g.Population(), 30*20)
	}

	SeedDensity(g, rng, 0.0)
	if g.Population() != 0 {
		t.Errorf("Density 0.0: population = %d, want 0", g.Population())
	}
}

func TestSeedOverwritesEveryCell(t *testing.T) {
	// Start from an all-live grid and reseed at density 0: any cell the
	// seeder skipped would remain alive.
	rng := rand.New(rand.NewSource(2))
	g := mustGrid(t, 67, 13) // odd width, crosses a word boundary
	SeedDensity(g, rng, 1.0)
	SeedDensity(g, rng, 0.0)
	if g.Population() != 0 {
		t.Errorf("Seeder left %d cells untouched", g.Population())
	}
}

func TestSeedRoughlyBalanced(t *testing.T) {
	g := mustGrid(t, 100, 100)
	Seed(g, rand.New(rand.NewSource(5)))

	pop := g.Population()
	// Bernoulli(0.5) over 10000 cells; 4 sigma is +/- 200.
	if pop < 4800 || pop > 5200 {
		t.Errorf("Population %d is implausible for a fair coin over 10000 cells", pop)
	}
}
