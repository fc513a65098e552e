package tetris

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Piece is the falling instance of a shape.
type Piece struct {
	Shape    int // Index into the shape catalog
	Rotation int // Quarter turns; taken mod 4
	X, Y     int // Anchor: top-left of the normalized cells
}

// Cell returns the identity the piece leaves in the grid.
func (p Piece) Cell() Cell {
	return shapes[p.Shape].Cell
}

// Cells returns the grid squares the piece occupies.
//
// Each canonical offset is turned a quarter at a time with (x, y) -> (y, -x),
// the result is shifted so its minimum corner sits at (0, 0), and the anchor
// is added. There is a single pivot scheme for every shape and no kick
// table, so a rotation either fits where it lands or is rejected.
func (p Piece) Cells() []core.Point {
	offsets := shapes[p.Shape].Offsets
	turns := ((p.Rotation % 4) + 4) % 4

	cells := make([]core.Point, len(offsets))
	minX, minY := 0, 0
	for i, o := range offsets {
		x, y := o.X, o.Y
		for r := 0; r < turns; r++ {
			x, y = y, -x
		}
		cells[i] = core.Point{X: x, Y: y}
		if i == 0 || x < minX {
			minX = x
		}
		if i == 0 || y < minY {
			minY = y
		}
	}

	for i := range cells {
		cells[i] = cells[i].Add(p.X-minX, p.Y-minY)
	}
	return cells
}

// moved returns a copy translated by (dx, dy).
func (p Piece) moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// rotated returns a copy turned one quarter.
func (p Piece) rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}
