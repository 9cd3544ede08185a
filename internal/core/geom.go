// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCorners builds the rectangle spanning two corner cells, inclusive.
// The corners may be given in any order.
func RectFromCorners(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CellToNDC converts the center of cell (x, y) on a w*h surface to normalized
// device coordinates. Row 0 is the top of the surface, so Y is flipped.
func CellToNDC(x, y, w, h int) Pointer {
	if w <= 0 || h <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: (float64(x)+0.5)/float64(w)*2 - 1,
		Y: 1 - (float64(y)+0.5)/float64(h)*2,
	}
}

// NDCToCell converts normalized device coordinates to the cell containing them.
// The result may lie outside the surface; callers clip when drawing.
func NDCToCell(p Pointer, w, h int) (int, int) {
	fx := (p.X + 1) / 2 * float64(w)
	fy := (1 - p.Y) / 2 * float64(h)
	return int(math.Floor(fx)), int(math.Floor(fy))
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
