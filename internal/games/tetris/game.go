// Package tetris implements a falling-block puzzle on a fixed grid.
// Pieces fall one row per tick, lock when they can fall no further, and
// completed rows are cleared with classic gravity.
package tetris

import (
	"time"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// Achievement messages.
const (
	MsgMultiLine = "Cleared more than one line! Your therapist will love the organization."
	MsgGameOver  = "Game over in Chaos Tetris. Buried in blocks, just like real life."
)

// Intent is a player move request.
type Intent int

const (
	IntentNone Intent = iota
	ShiftLeft
	ShiftRight
	Rotate
	SoftDrop
	HardDrop
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case ShiftLeft:
		return "ShiftLeft"
	case ShiftRight:
		return "ShiftRight"
	case Rotate:
		return "Rotate"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	default:
		return "None"
	}
}

// Game holds the board state. Exactly one piece is active while the game is
// not over. Not safe for concurrent use.
type Game struct {
	cfg    config.TetrisConfig
	rng    core.Rand
	notify core.Notifier

	grid   *Grid
	piece  Piece
	active bool // false once a spawn has been blocked

	score  int
	lines  int
	over   bool
	paused bool
	ticks  uint64
}

// New creates a game with a fresh board and an active piece.
// A nil notifier discards achievements.
func New(cfg config.TetrisConfig, rng core.Rand, n core.Notifier) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    rng,
		notify: core.OrDiscard(n),
	}
	g.Reset()
	return g
}

func init() {
	registry.Register("tetris", "Chaos Tetris", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadTetris(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		return New(cfg, core.NewRand(opts.Seed), opts.Notifier), nil
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Chaos Tetris"
}

// TickInterval returns the gravity period.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Timing.TickInterval()
}

// Reset clears the board, zeroes the counters and spawns a new piece.
func (g *Game) Reset() {
	g.grid = NewGrid(g.cfg.Board.Width, g.cfg.Board.Height)
	g.piece = Piece{}
	g.active = false
	g.score = 0
	g.lines = 0
	g.over = false
	g.paused = false
	g.ticks = 0
	g.spawn()
}

// spawn installs a random piece at the spawn column. When the spawn square is
// occupied the game ends instead and the grid is left untouched.
func (g *Game) spawn() bool {
	p := Piece{
		Shape: g.rng.Intn(NumShapes),
		X:     g.cfg.Board.SpawnX,
	}
	if !g.grid.Fits(p.Cells()) {
		g.active = false
		g.over = true
		g.notify.Notify(MsgGameOver)
		return false
	}
	g.piece = p
	g.active = true
	return true
}

// legal reports whether p fits on the current grid. It is the single gate
// every candidate piece passes before being committed.
func (g *Game) legal(p Piece) bool {
	return g.grid.Fits(p.Cells())
}

// TryMove applies one intent to the active piece. It returns true if the
// piece changed. Illegal moves and unknown intents leave the state unchanged.
// Hard drop moves the piece down until the next row would collide and
// reports whether it moved at all; locking still happens on the next tick.
func (g *Game) TryMove(in Intent) bool {
	if g.over || !g.active {
		return false
	}

	var candidate Piece
	switch in {
	case ShiftLeft:
		candidate = g.piece.moved(-1, 0)
	case ShiftRight:
		candidate = g.piece.moved(1, 0)
	case SoftDrop:
		candidate = g.piece.moved(0, 1)
	case Rotate:
		candidate = g.piece.rotated()
	case HardDrop:
		return g.hardDrop()
	default:
		return false
	}

	if !g.legal(candidate) {
		return false
	}
	g.piece = candidate
	return true
}

func (g *Game) hardDrop() bool {
	moved := false
	for {
		next := g.piece.moved(0, 1)
		if !g.legal(next) {
			return moved
		}
		g.piece = next
		moved = true
	}
}

// Tick applies gravity. A piece that cannot fall is locked: merged into the
// grid, full rows are cleared, and the next piece is spawned.
func (g *Game) Tick() {
	if g.over || g.paused || !g.active {
		return
	}
	g.ticks++

	if next := g.piece.moved(0, 1); g.legal(next) {
		g.piece = next
		return
	}
	g.lock()
}

func (g *Game) lock() {
	g.grid.merge(g.piece.Cells(), g.piece.Cell())
	g.active = false

	cleared := g.grid.clearFull()
	if cleared > 0 {
		g.lines += cleared
		g.score += cleared * g.cfg.Scoring.PointsPerLine
		if cleared >= 2 {
			g.notify.Notify(MsgMultiLine)
		}
	}

	g.spawn()
}

// Apply maps a platform action onto the game.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionRestart:
		g.Reset()
		return
	case core.ActionPause:
		if !g.over {
			g.paused = !g.paused
		}
		return
	}

	if g.paused {
		return
	}

	switch a {
	case core.ActionLeft:
		g.TryMove(ShiftLeft)
	case core.ActionRight:
		g.TryMove(ShiftRight)
	case core.ActionUp:
		g.TryMove(Rotate)
	case core.ActionDown:
		g.TryMove(SoftDrop)
	case core.ActionJump:
		g.TryMove(HardDrop)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Running:  !g.over && !g.paused,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool {
	return g.over
}

// ghost returns where the active piece would land after a hard drop.
func (g *Game) ghost() Piece {
	p := g.piece
	for g.legal(p.moved(0, 1)) {
		p = p.moved(0, 1)
	}
	return p
}
