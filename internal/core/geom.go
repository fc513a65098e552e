// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether p lies inside a w×h grid.
func InBounds(p Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Rect represents an axis-aligned bounding box on the cell grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is a continuous-space box described by its center and half extents.
// Used by physics games whose world units are not screen cells.
type Box struct {
	CX, CY float64
	HW, HH float64
}

// NewBox creates a box centered on (cx, cy) with half-width hw and half-height hh.
func NewBox(cx, cy, hw, hh float64) Box {
	return Box{CX: cx, CY: cy, HW: hw, HH: hh}
}

func (b Box) Left() float64   { return b.CX - b.HW }
func (b Box) Right() float64  { return b.CX + b.HW }
func (b Box) Top() float64    { return b.CY - b.HH }
func (b Box) Bottom() float64 { return b.CY + b.HH }

// OverlapsX reports whether the box's horizontal extent overlaps the open
// interval (lo, hi). Touching edges do not count.
func (b Box) OverlapsX(lo, hi float64) bool {
	return b.Right() > lo && b.Left() < hi
}

// WithinY reports whether the box's vertical extent lies fully inside [lo, hi].
func (b Box) WithinY(lo, hi float64) bool {
	return b.Top() >= lo && b.Bottom() <= hi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
