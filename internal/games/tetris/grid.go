package tetris

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Grid is a fixed-size matrix of cells indexed [y][x]. Its dimensions never
// change after creation.
type Grid struct {
	w, h  int
	cells [][]Cell
}

// NewGrid creates an empty w×h grid.
func NewGrid(w, h int) *Grid {
	g := &Grid{w: w, h: h, cells: make([][]Cell, h)}
	for y := range g.cells {
		g.cells[y] = make([]Cell, w)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// At returns the cell at (x, y), or Empty when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !core.InBounds(core.Point{X: x, Y: y}, g.w, g.h) {
		return Empty
	}
	return g.cells[y][x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !core.InBounds(core.Point{X: x, Y: y}, g.w, g.h) {
		return
	}
	g.cells[y][x] = c
}

// Fits reports whether every cell lies inside the grid on an empty square.
func (g *Grid) Fits(cells []core.Point) bool {
	for _, p := range cells {
		if !core.InBounds(p, g.w, g.h) || g.cells[p.Y][p.X] != Empty {
			return false
		}
	}
	return true
}

// merge writes cells into the grid as c. Callers only merge pieces that
// passed Fits; anything else is a bug in the caller.
func (g *Grid) merge(cells []core.Point, c Cell) {
	for _, p := range cells {
		if !core.InBounds(p, g.w, g.h) {
			panic(fmt.Sprintf("tetris: merge outside grid at %v", p))
		}
		if g.cells[p.Y][p.X] != Empty {
			panic(fmt.Sprintf("tetris: merge into occupied cell %v", p))
		}
		g.cells[p.Y][p.X] = c
	}
}

// clearFull removes every full row, slides the rows above down and fills the
// top with empty rows. Returns the number of rows removed.
func (g *Grid) clearFull() int {
	kept := make([][]Cell, 0, g.h)
	for _, row := range g.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := g.h - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, 0, g.h)
	for i := 0; i < cleared; i++ {
		fresh = append(fresh, make([]Cell, g.w))
	}
	g.cells = append(fresh, kept...)
	return cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid contents.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.h)
	for y, row := range g.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: g.Rows()}
}
