package input

import (
	"math"

	"github.com/jakecoffman/cp"
)

// stick is a virtual joystick owned by at most one touch.
type stick struct {
	owned  bool
	owner  int
	origin cp.Vector
	out    cp.Vector
	mag    float64
}

func (s *stick) grab(id int, x, y float64) {
	s.owned = true
	s.owner = id
	s.origin = cp.Vector{X: x, Y: y}
	s.out = cp.Vector{}
	s.mag = 0
}

func (s *stick) release() {
	*s = stick{}
}

func (s *stick) drag(x, y, deadzone, radius float64) {
	s.out, s.mag = StickVector(x-s.origin.X, y-s.origin.Y, deadzone, radius)
}

// StickVector converts a raw displacement into a joystick output. The
// magnitude is zero inside the deadzone and reaches one at radius; the
// returned vector is the unit direction scaled by that magnitude.
func StickVector(dx, dy, deadzone, radius float64) (cp.Vector, float64) {
	if !finite(dx) || !finite(dy) {
		return cp.Vector{}, 0
	}
	length := math.Hypot(dx, dy)
	if length <= deadzone || length == 0 {
		return cp.Vector{}, 0
	}
	span := radius - deadzone
	if span <= 0 {
		span = 1
	}
	mag := cp.Clamp01((length - deadzone) / span)
	dir := cp.Vector{X: dx / length, Y: dy / length}
	return dir.Mult(mag), mag
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
