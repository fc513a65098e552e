package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func (r *seqRand) Float64() float64 { return 0.5 }

type recorder struct {
	msgs []string
}

func (r *recorder) Notify(msg string) { r.msgs = append(r.msgs, msg) }

func newTestGame(shapes ...int) (*Game, *recorder) {
	if len(shapes) == 0 {
		shapes = []int{0}
	}
	rec := &recorder{}
	return New(config.DefaultTetrisConfig(), &seqRand{vals: shapes}, rec), rec
}

func fillRow(g *Grid, y int, c Cell) {
	for x := 0; x < g.Width(); x++ {
		g.Set(x, y, c)
	}
}

func TestPieceCellsCanonical(t *testing.T) {
	p := Piece{Shape: 0, X: 3, Y: 0}
	assert.ElementsMatch(t, []core.Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}}, p.Cells())
}

func TestPieceRotationNormalizes(t *testing.T) {
	// A line turned once stands vertically with its top-left at the anchor.
	p := Piece{Shape: 1, Rotation: 1, X: 5, Y: 2}
	assert.ElementsMatch(t, []core.Point{{X: 5, Y: 2}, {X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 5}}, p.Cells())

	// T turned once: canonical (1,0) (0,1) (1,1) (2,1) -> (0,-1) (1,0) (1,-1) (1,-2)
	p = Piece{Shape: 3, Rotation: 1}
	assert.ElementsMatch(t, []core.Point{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}}, p.Cells())
}

func TestPieceFourRotationsIsIdentity(t *testing.T) {
	for i := 0; i < NumShapes; i++ {
		p := Piece{Shape: i, X: 4, Y: 6}
		want := p.Cells()

		r := p
		for n := 0; n < 4; n++ {
			r = r.rotated()
		}
		assert.ElementsMatch(t, want, r.Cells(), "shape %s", ShapeAt(i).Name)
		assert.Equal(t, 0, r.Rotation)
	}
}

func TestRotateFourTimesOnBoard(t *testing.T) {
	for shape := 0; shape < NumShapes; shape++ {
		g, _ := newTestGame(shape)
		g.piece = g.piece.moved(0, 4) // room to turn
		before := g.piece.Cells()

		for n := 0; n < 4; n++ {
			require.True(t, g.TryMove(Rotate), "shape %s rotation %d", ShapeAt(shape).Name, n)
		}
		assert.ElementsMatch(t, before, g.piece.Cells())
	}
}

func TestShiftStopsAtWalls(t *testing.T) {
	g, _ := newTestGame(0) // O at x=3

	for i := 0; i < 3; i++ {
		require.True(t, g.TryMove(ShiftLeft))
	}
	assert.Equal(t, 0, g.piece.X)
	assert.False(t, g.TryMove(ShiftLeft))
	assert.Equal(t, 0, g.piece.X)

	for i := 0; i < 8; i++ {
		require.True(t, g.TryMove(ShiftRight))
	}
	assert.Equal(t, 8, g.piece.X)
	assert.False(t, g.TryMove(ShiftRight))
}

func TestShiftBlockedByLockedCells(t *testing.T) {
	g, _ := newTestGame(0)
	g.grid.Set(2, 1, CellT)

	assert.False(t, g.TryMove(ShiftLeft))
	assert.Equal(t, 3, g.piece.X)
}

func TestRotateRejectedWithoutKick(t *testing.T) {
	g, _ := newTestGame(1) // horizontal line
	g.piece = Piece{Shape: 1, X: 3, Y: g.grid.Height() - 1}
	before := g.piece

	// Standing up would poke through the floor; no kick is attempted.
	assert.False(t, g.TryMove(Rotate))
	assert.Equal(t, before, g.piece)

	// Same against a wall of locked cells.
	g.piece = Piece{Shape: 1, X: 3, Y: 5}
	g.grid.Set(3, 6, CellO)
	assert.False(t, g.TryMove(Rotate))
	assert.Equal(t, 0, g.piece.Rotation)
}

func TestUnknownIntentIsNoop(t *testing.T) {
	g, _ := newTestGame(0)
	before := g.Snapshot()

	assert.False(t, g.TryMove(Intent(42)))
	assert.False(t, g.TryMove(IntentNone))
	assert.Equal(t, before, g.Snapshot())
}

func TestSoftDropDoesNotLock(t *testing.T) {
	g, _ := newTestGame(0)
	g.piece.Y = g.grid.Height() - 2

	assert.False(t, g.TryMove(SoftDrop))
	assert.True(t, g.active)
	assert.Equal(t, Empty, g.grid.At(3, g.grid.Height()-1))
}

func TestHardDrop(t *testing.T) {
	g, _ := newTestGame(0)

	require.True(t, g.TryMove(HardDrop))
	assert.Equal(t, g.grid.Height()-2, g.piece.Y)
	assert.False(t, g.TryMove(HardDrop), "already resting")

	// Not locked until the next tick.
	assert.Equal(t, Empty, g.grid.At(3, g.grid.Height()-1))
	g.Tick()
	assert.Equal(t, CellO, g.grid.At(3, g.grid.Height()-1))
	assert.Equal(t, 0, g.piece.Y, "next piece spawned at the top")
}

func TestHardDropEqualsRepeatedSoftDrop(t *testing.T) {
	a, _ := newTestGame(3)
	b, _ := newTestGame(3)
	a.grid.Set(4, 9, CellI)
	b.grid.Set(4, 9, CellI)

	a.TryMove(HardDrop)
	for b.TryMove(SoftDrop) {
	}
	assert.Equal(t, a.piece, b.piece)
}

func TestTickGravity(t *testing.T) {
	g, _ := newTestGame(0)

	g.Tick()
	assert.Equal(t, 1, g.piece.Y)
	g.Tick()
	assert.Equal(t, 2, g.piece.Y)
	assert.Equal(t, uint64(2), g.Snapshot().Tick)
}

func TestLockClearsRowsTwoAndFive(t *testing.T) {
	g, rec := newTestGame(0, 1)
	grid := g.grid
	w, h := grid.Width(), grid.Height()

	fillRow(grid, 2, CellI)
	fillRow(grid, 5, CellI)
	grid.Set(1, 3, CellT)
	grid.Set(1, 4, CellL)
	for y := 6; y < h; y++ {
		grid.Set(y%w, y, CellL)
	}
	g.piece = Piece{Shape: 0, X: 8, Y: 0} // O resting on row 2

	g.Tick()

	// Expected: two empty rows, then old rows 0, 1, 3, 4; rows 6.. unchanged.
	want := NewGrid(w, h)
	want.Set(8, 2, CellO)
	want.Set(9, 2, CellO)
	want.Set(8, 3, CellO)
	want.Set(9, 3, CellO)
	want.Set(1, 4, CellT)
	want.Set(1, 5, CellL)
	for y := 6; y < h; y++ {
		want.Set(y%w, y, CellL)
	}

	assert.Equal(t, want.Rows(), g.grid.Rows())
	assert.Equal(t, 2, g.lines)
	assert.Equal(t, 200, g.score)
	assert.Equal(t, []string{MsgMultiLine}, rec.msgs)
	assert.False(t, g.over)
	assert.Equal(t, Piece{Shape: 1, X: 3, Y: 0}, g.piece)
}

func TestSingleLineHasNoAchievement(t *testing.T) {
	g, rec := newTestGame(1)
	h := g.grid.Height()
	for x := 0; x < 6; x++ {
		g.grid.Set(x, h-1, CellT)
	}
	// Horizontal line completes the bottom row at x=6..9.
	g.piece = Piece{Shape: 1, X: 6, Y: h - 1}

	g.Tick()

	assert.Equal(t, 1, g.lines)
	assert.Equal(t, 100, g.score)
	assert.Empty(t, rec.msgs)
	for x := 0; x < g.grid.Width(); x++ {
		assert.Equal(t, Empty, g.grid.At(x, h-1))
	}
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	g, rec := newTestGame(0)
	g.grid.Set(4, 1, CellI)
	before := g.grid.Rows()

	assert.False(t, g.spawn())
	assert.True(t, g.Over())
	assert.False(t, g.active)
	assert.Equal(t, before, g.grid.Rows(), "blocked spawn must not touch the grid")
	assert.Equal(t, []string{MsgGameOver}, rec.msgs)
	assert.Nil(t, g.Snapshot().Cells)
}

func TestStackingToTheTopEndsGame(t *testing.T) {
	g, rec := newTestGame(0) // only squares, always at x=3

	pieces := 0
	for i := 0; i < 20 && !g.Over(); i++ {
		g.TryMove(HardDrop)
		g.Tick()
		pieces++
	}

	require.True(t, g.Over())
	assert.Equal(t, g.grid.Height()/2, pieces)
	assert.Equal(t, []string{MsgGameOver}, rec.msgs)
	assert.True(t, g.State().GameOver)
	assert.False(t, g.State().Running)

	// Terminal state ignores everything but reset.
	snap := g.Snapshot()
	g.Tick()
	g.TryMove(ShiftLeft)
	g.Apply(core.ActionPause)
	assert.Equal(t, snap, g.Snapshot())
	assert.Len(t, rec.msgs, 1)
}

func TestResetMatchesFreshGame(t *testing.T) {
	cfg := config.DefaultTetrisConfig()

	used := New(cfg, &seqRand{vals: []int{2}}, nil)
	for i := 0; i < 200 && !used.Over(); i++ {
		used.TryMove(Intent(i%5 + 1))
		used.Tick()
	}
	require.NotZero(t, used.Snapshot().Tick)

	used.Reset()
	fresh := New(cfg, &seqRand{vals: []int{2}}, nil)
	assert.Equal(t, fresh.Snapshot(), used.Snapshot())

	// Also from the terminal state.
	for !used.Over() {
		used.TryMove(HardDrop)
		used.Tick()
	}
	used.Apply(core.ActionRestart)
	assert.Equal(t, fresh.Snapshot(), used.Snapshot())
}

func TestOccupancyInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := New(config.DefaultTetrisConfig(), r, nil)

	for step := 0; step < 5000; step++ {
		if g.Over() {
			g.Reset()
		}
		if r.Intn(3) == 0 {
			g.Tick()
		} else {
			g.TryMove(Intent(r.Intn(7)))
		}

		if !g.active {
			continue
		}
		for _, p := range g.piece.Cells() {
			require.True(t, core.InBounds(p, g.grid.Width(), g.grid.Height()), "step %d: %v out of bounds", step, p)
			require.Equal(t, Empty, g.grid.At(p.X, p.Y), "step %d: %v overlaps", step, p)
		}
	}
}

func TestMergeRejectsOverlap(t *testing.T) {
	grid := NewGrid(4, 4)
	grid.Set(1, 1, CellO)

	assert.Panics(t, func() { grid.merge([]core.Point{{X: 1, Y: 1}}, CellT) })
	assert.Panics(t, func() { grid.merge([]core.Point{{X: 4, Y: 0}}, CellT) })
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(0)
	snap := g.Snapshot()

	snap.Grid[17][0] = CellT
	snap.Cells[0] = core.Point{X: 9, Y: 9}

	assert.Equal(t, Empty, g.grid.At(0, 17))
	assert.Equal(t, core.Point{X: 3, Y: 0}, g.piece.Cells()[0])
}

func TestApplyMapsActions(t *testing.T) {
	g, _ := newTestGame(0)

	g.Apply(core.ActionLeft)
	assert.Equal(t, 2, g.piece.X)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionRight)
	assert.Equal(t, 4, g.piece.X)
	g.Apply(core.ActionDown)
	assert.Equal(t, 1, g.piece.Y)
	g.Apply(core.ActionJump)
	assert.Equal(t, g.grid.Height()-2, g.piece.Y)
	g.Apply(core.ActionConfirm) // ignored
	assert.Equal(t, 4, g.piece.X)
}

func TestPauseFreezesBoard(t *testing.T) {
	g, _ := newTestGame(0)

	g.Apply(core.ActionPause)
	require.True(t, g.State().Paused)
	assert.False(t, g.State().Running)

	before := g.Snapshot()
	g.Tick()
	g.Apply(core.ActionLeft)
	assert.Equal(t, before, g.Snapshot())

	g.Apply(core.ActionPause)
	assert.True(t, g.State().Running)
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(0)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Score  0")
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "░░", "landing preview")

	small := core.NewScreen(10, 5)
	g.Render(small)
	assert.Contains(t, small.String(), "need")
}

func TestRenderGameOver(t *testing.T) {
	g, _ := newTestGame(0)
	for !g.Over() {
		g.TryMove(HardDrop)
		g.Tick()
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}
