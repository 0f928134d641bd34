package common

import "math"

// Rect is an axis-aligned box centered on (X, Y).
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether two centered boxes intersect. Touching edges do not count.
func (r Rect) Overlaps(other Rect) bool {
	return math.Abs(r.X-other.X) < (r.W+other.W)/2 &&
		math.Abs(r.Y-other.Y) < (r.H+other.H)/2
}

// AABB is the free-function form of Rect.Overlaps.
func AABB(a, b Rect) bool {
	return a.Overlaps(b)
}
