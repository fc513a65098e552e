package tetris

import "github.com/vovakirdan/chaos-arcade/internal/core"

// Cell is the content of one grid square: Empty or the identity of the
// piece that locked there. Identities only drive color.
type Cell uint8

const (
	Empty Cell = iota
	CellO
	CellI
	CellL
	CellT
)

// Color returns the render color for a cell.
func (c Cell) Color() core.Color {
	switch c {
	case CellO:
		return core.ColorYellow
	case CellI:
		return core.ColorCyan
	case CellL:
		return core.ColorOrange
	case CellT:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Shape is an immutable piece archetype in its canonical orientation.
type Shape struct {
	Name    string
	Cell    Cell
	Offsets []core.Point
}

// shapes is the fixed catalog: square, line, L and T.
var shapes = [...]Shape{
	{Name: "O", Cell: CellO, Offsets: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	{Name: "I", Cell: CellI, Offsets: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
	{Name: "L", Cell: CellL, Offsets: []core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}},
	{Name: "T", Cell: CellT, Offsets: []core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}},
}

// NumShapes is the size of the shape catalog.
const NumShapes = len(shapes)

// ShapeAt returns catalog entry i. It panics on an out-of-range index.
func ShapeAt(i int) Shape {
	return shapes[i]
}
