// Package core provides fundamental types and utilities shared by the games
// and the terminal platform. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
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

// Span is a closed vertical interval [Top, Bottom] in simulation units.
type Span struct {
	Top, Bottom float64
}

// SpanAround returns the span centered on y with the given half extent.
func SpanAround(y, half float64) Span {
	return Span{Top: y - half, Bottom: y + half}
}

// Overlaps reports whether two spans share at least one point.
// Touching edges count as overlap.
func (s Span) Overlaps(other Span) bool {
	return !(s.Bottom < other.Top || s.Top > other.Bottom)
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
