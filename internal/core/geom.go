// Package core provides fundamental types and utilities for the arcade platform.
// It has no UI dependencies (especially no Bubble Tea) to keep game logic
// pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in world units.
// X, Y is the top-left corner; y grows downward.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAround returns the box of size w x h centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports whether both the X and Y ranges strictly overlap.
// Boxes that only touch along an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this box.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Viewport maps terminal cells to world units.
// World coordinates keep the pixel-scale constants of the game configs,
// one cell covering CellW x CellH world units.
type Viewport struct {
	CellW float64
	CellH float64
}

// WorldSize returns the world extent covered by a screen of the given size.
func (v Viewport) WorldSize(screenW, screenH int) (float64, float64) {
	return float64(screenW) * v.CellW, float64(screenH) * v.CellH
}

// ToWorld returns the world coordinates of the center of cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * v.CellW, (float64(cy) + 0.5) * v.CellH
}

// ToCell returns the cell that contains the world point (x, y).
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / v.CellW)), int(math.Floor(y / v.CellH))
}

// ToRect converts a world box to the smallest covering cell rectangle.
// Every box yields at least one cell so thin hazards stay visible.
func (v Viewport) ToRect(b Box) Rect {
	x0, y0 := v.ToCell(b.X, b.Y)
	x1 := int(math.Ceil(b.Right() / v.CellW))
	y1 := int(math.Ceil(b.Bottom() / v.CellH))
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
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
