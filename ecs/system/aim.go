package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
)

// minAimSpeed is the velocity below which the player counts as stationary.
const minAimSpeed = 0.05

// AimSystem resolves the aim angle. Explicit aim wins; otherwise the nearest
// enemy body or the boss, then the direction of travel, then the last angle.
type AimSystem struct{}

func NewAimSystem() *AimSystem {
	return &AimSystem{}
}

func (s *AimSystem) Update(w *ecs.World) {
	if w.Controls.AimSet {
		w.Aim = common.WrapAngle(common.Finite(w.Controls.Aim, w.Aim))
		return
	}
	if target, ok := nearestTarget(w); ok {
		w.Aim = common.WrapAngle(target.Sub(w.Player.Pos).ToAngle())
		return
	}
	if w.Player.Vel.Length() > minAimSpeed {
		w.Aim = common.WrapAngle(w.Player.Vel.ToAngle())
	}
}

func nearestTarget(w *ecs.World) (cp.Vector, bool) {
	best := math.Inf(1)
	var at cp.Vector
	found := false
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead || e.IsBullet() {
			continue
		}
		if d := e.Pos.DistanceSq(w.Player.Pos); d < best {
			best, at, found = d, e.Pos, true
		}
	}
	if w.Boss != nil && !w.Boss.Dead {
		if d := w.Boss.Pos.DistanceSq(w.Player.Pos); d < best {
			at, found = w.Boss.Pos, true
		}
	}
	return at, found
}
