// Package core provides fundamental types and utilities for the dodger.
// It has no UI dependencies (especially no Bubble Tea) to keep game logic
// pure and testable; vector math comes from mathgl.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect represents an integer rectangle on the character grid.
// Used by the screen buffer for boxes and fills.
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

// Box3 is an axis-aligned bounding box in world space.
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoxFromCenter builds a box around center with the given half extents.
func BoxFromCenter(center, half mgl64.Vec3) Box3 {
	return Box3{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Intersects reports whether two boxes overlap.
// Touching faces count as an intersection.
func (b Box3) Intersects(other Box3) bool {
	for i := 0; i < 3; i++ {
		if other.Max[i] < b.Min[i] || other.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
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
