package flappy

// Snapshot is a read-only copy of the world for rendering and tests.
type Snapshot struct {
	Tick    uint64
	Bird    Bird
	Pipes   []Pipe
	Score   int
	Running bool
	Over    bool
	Paused  bool
}

// Snapshot returns the current world state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.ticks,
		Bird:    g.bird,
		Pipes:   g.pipes.Pipes(),
		Score:   g.score,
		Running: g.running,
		Over:    g.over,
		Paused:  g.paused,
	}
}
