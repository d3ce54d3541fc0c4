package life

// Snapshot captures the observable simulation state for determinism
// testing and replay comparison.
type Snapshot struct {
	Generation uint64
	Births     int
	Deaths     int
	Population int
	Paused     bool
	Checksum   string
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	g := s.bufs[s.cur]
	return Snapshot{
		Generation: s.generation,
		Births:     s.births,
		Deaths:     s.deaths,
		Population: g.Population(),
		Paused:     s.paused,
		Checksum:   g.Checksum(),
	}
}
