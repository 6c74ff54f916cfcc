// Package core provides fundamental types and utilities shared by the
// snake and minesweeper engines and the presentation layers.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoPoint marks an absent position (e.g. food that could not be placed).
var NoPoint = Point{X: -1, Y: -1}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Wrap folds the point onto a toroidal size×size grid.
func (p Point) Wrap(size int) Point {
	return Point{X: Mod(p.X, size), Y: Mod(p.Y, size)}
}

// InBounds reports whether the point lies on a size×size grid.
func (p Point) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// Index returns the row-major cell index (y*size + x).
func (p Point) Index(size int) int {
	return p.Y*size + p.X
}

// PointFromIndex is the inverse of Point.Index.
func PointFromIndex(idx, size int) Point {
	return Point{X: idx % size, Y: idx / size}
}

// Rect represents an axis-aligned rectangle on the screen.
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

// Mod returns the non-negative remainder of a divided by n.
func Mod(a, n int) int {
	return ((a % n) + n) % n
}
