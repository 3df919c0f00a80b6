// Package core provides fundamental types and utilities shared by the game
// logic and its front ends. It contains no UI dependencies (no Bubble Tea, no
// Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are in world pixels with Y growing downward.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds a rectangle from a sub-pixel position.
// The position is truncated toward zero, the same way a sprite rect is
// snapped when its float position is assigned.
func RectAt(x, y float64, w, h int) Rect {
	return Rect{X: int(x), Y: int(y), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the horizontal center.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
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

// Bounded is implemented by anything that occupies space in the world.
// Collision queries are written against this interface.
type Bounded interface {
	Bounds() Rect
}

// Overlaps reports whether two bounded entities intersect.
func Overlaps(a, b Bounded) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// FirstOverlap returns the index of the first entity in others that overlaps
// subject, or -1 if none does.
func FirstOverlap[T Bounded](subject Bounded, others []T) int {
	r := subject.Bounds()
	for i := range others {
		if r.Intersects(others[i].Bounds()) {
			return i
		}
	}
	return -1
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
