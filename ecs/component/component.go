package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
)

// Body is the spatial record every entity variant carries. Pos is the centre
// of a W by H box.
type Body struct {
	ID   uint64
	Pos  cp.Vector
	Vel  cp.Vector
	W, H float64
	HP   int
	Dead bool
}

func (b *Body) Rect() common.Rect {
	return common.Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Kill flags the body for removal at the next sweep.
func (b *Body) Kill() {
	b.Dead = true
}

// Alive reports whether the body survives the next sweep.
func (b *Body) Alive() bool {
	return !b.Dead
}
