package life

import (
	"fmt"
	"math/rand"
	"time"
)

// CellView is a read-only view of a grid, handed to renderers and other
// external readers. It never exposes the in-progress write buffer.
type CellView interface {
	Width() int
	Height() int
	Get(row, col int) bool
	Population() int
}

// Params configures a Simulation.
type Params struct {
	Width   int
	Height  int
	Density float64    // live probability for seeding; 0 means DefaultDensity
	Rand    *rand.Rand // nil means a time-seeded generator
}

// Simulation owns the two grid buffers and the tick-loop state: which
// buffer is current, the generation counter, the per-tick birth/death
// counters and the pause flag. It performs no internal locking; callers
// drive Tick and the read accessors from a single goroutine.
type Simulation struct {
	bufs    [2]*Grid
	cur     int // index of the buffer readers see; 1-cur is the write target
	rng     *rand.Rand
	density float64

	generation  uint64
	births      int
	deaths      int
	totalBirths uint64
	totalDeaths uint64
	paused      bool
}

// New builds a Simulation with both buffers allocated and generation 0
// seeded from p.Rand. The simulation starts running (not paused).
func New(p Params) (*Simulation, error) {
	a, err := NewGrid(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	b, err := NewGrid(p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	density := p.Density
	if density == 0 {
		density = DefaultDensity
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("life: seed density %v outside [0,1]", density)
	}

	rng := p.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Simulation{
		bufs:    [2]*Grid{a, b},
		rng:     rng,
		density: density,
	}
	SeedDensity(s.bufs[s.cur], s.rng, s.density)
	return s, nil
}

// Tick advances the simulation by one generation. While paused it returns
// immediately with no observable effect. Otherwise the engine writes the
// next generation into the inactive buffer, the buffer roles swap (a
// constant-time index flip, no data copy), and the counters update.
func (s *Simulation) Tick() {
	if s.paused {
		return
	}
	births, deaths := Advance(s.bufs[s.cur], s.bufs[1-s.cur])
	s.cur = 1 - s.cur
	s.births = births
	s.deaths = deaths
	s.totalBirths += uint64(births)
	s.totalDeaths += uint64(deaths)
	s.generation++
}

// Reset reseeds the current buffer and zeroes every counter. The pause
// state is deliberately left alone.
func (s *Simulation) Reset() {
	SeedDensity(s.bufs[s.cur], s.rng, s.density)
	s.resetCounters()
}

// ResetWithPattern clears the grid, stamps the named pattern at its center
// and zeroes every counter. The pause state is left alone.
func (s *Simulation) ResetWithPattern(id string) error {
	p, err := LookupPattern(id)
	if err != nil {
		return err
	}
	g := s.bufs[s.cur]
	if p.Width() > g.width || p.Height() > g.height {
		return fmt.Errorf("life: pattern %q (%dx%d) does not fit %dx%d grid",
			id, p.Width(), p.Height(), g.width, g.height)
	}
	g.Clear()
	p.Stamp(g, (g.height-p.Height())/2, (g.width-p.Width())/2)
	s.resetCounters()
	return nil
}

func (s *Simulation) resetCounters() {
	s.generation = 0
	s.births = 0
	s.deaths = 0
	s.totalBirths = 0
	s.totalDeaths = 0
}

// TogglePause flips between running and paused.
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
}

// Paused reports whether Tick currently has any effect.
func (s *Simulation) Paused() bool {
	return s.paused
}

// Current returns a read-only view of the live buffer for rendering.
func (s *Simulation) Current() CellView {
	return s.bufs[s.cur]
}

// Generation returns the number of generations fully advanced since the
// last reset.
func (s *Simulation) Generation() uint64 {
	return s.generation
}

// Births returns the number of cells born during the last completed tick.
func (s *Simulation) Births() int {
	return s.births
}

// Deaths returns the number of cells that died during the last completed tick.
func (s *Simulation) Deaths() int {
	return s.deaths
}

// TotalBirths returns the births accumulated across the whole run.
func (s *Simulation) TotalBirths() uint64 {
	return s.totalBirths
}

// TotalDeaths returns the deaths accumulated across the whole run.
func (s *Simulation) TotalDeaths() uint64 {
	return s.totalDeaths
}
