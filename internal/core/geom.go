// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "fmt"

// Cell is a grid square addressed by column and row.
type Cell struct {
	Col, Row int
}

// String returns the cell as "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is a unit step on the grid. The zero value is not a valid
// movement direction.
type Direction struct {
	DX, DY int
}

// The four movement directions. Rows grow downwards.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d and other point in exactly reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return !d.IsZero() && d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case Direction{}:
		return "none"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// Wrap maps coord onto [0, n) with toroidal topology.
func Wrap(coord, n int) int {
	return ((coord % n) + n) % n
}

// Grid describes the fixed board dimensions in cells.
type Grid struct {
	Width  int
	Height int
}

// Step returns the cell one move away from c in direction d, wrapping at
// the board edges.
func (g Grid) Step(c Cell, d Direction) Cell {
	return Cell{
		Col: Wrap(c.Col+d.DX, g.Width),
		Row: Wrap(c.Row+d.DY, g.Height),
	}
}

// Contains returns true if c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Center returns the middle cell, rounding down.
func (g Grid) Center() Cell {
	return Cell{Col: g.Width / 2, Row: g.Height / 2}
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// CellRect returns the pixel rectangle covered by c at the given cell size.
func (g Grid) CellRect(c Cell, cellSize int) Rect {
	return NewRect(c.Col*cellSize, c.Row*cellSize, cellSize, cellSize)
}

// PixelSize returns the board size in pixels.
func (g Grid) PixelSize(cellSize int) (int, int) {
	return g.Width * cellSize, g.Height * cellSize
}

// Rect represents an axis-aligned pixel rectangle.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
