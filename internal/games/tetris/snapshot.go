package tetris

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Snapshot is a read-only copy of the board for rendering and tests.
// Modifying it has no effect on the game.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Grid   [][]Cell
	Piece  Piece
	Cells  []core.Point // Active piece cells; nil when no piece is installed
	Ghost  []core.Point // Landing position of the active piece
	Score  int
	Lines  int
	Over   bool
	Paused bool
}

// Snapshot returns the current board state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.ticks,
		Width:  g.grid.Width(),
		Height: g.grid.Height(),
		Grid:   g.grid.Rows(),
		Piece:  g.piece,
		Score:  g.score,
		Lines:  g.lines,
		Over:   g.over,
		Paused: g.paused,
	}
	if g.active {
		s.Cells = g.piece.Cells()
		s.Ghost = g.ghost().Cells()
	}
	return s
}
