// Package core provides fundamental types and utilities shared by the game
// session and its frontends. It contains no external dependencies (especially
// no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Point is a position on the canvas in pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Collide reports whether two point-like entities overlap: each is treated
// as a box of half-width margin around its position. Bounds are strict, so
// entities exactly margin apart do not collide. The test is symmetric.
func Collide(a, b Point, margin float64) bool {
	return math.Abs(a.X-b.X) < margin && math.Abs(a.Y-b.Y) < margin
}

// Visible reports whether p lies inside a width x height canvas grown by
// margin on every side.
func Visible(p Point, width, height, margin float64) bool {
	return p.X > -margin && p.X < width+margin &&
		p.Y > -margin && p.Y < height+margin
}

// Rect represents an axis-aligned box of screen cells.
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
