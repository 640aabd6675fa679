// Package physics provides collision detection utilities.
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether r and other share interior area.
// All comparisons are strict: rectangles that only touch along an edge do
// not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.Right() > other.X &&
		r.X < other.Right() &&
		r.Bottom() > other.Y &&
		r.Y < other.Bottom()
}

// RectsOverlap checks if two rectangles overlap.
func RectsOverlap(a, b Rect) bool {
	return a.Overlaps(b)
}

