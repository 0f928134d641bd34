package system

import (
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/entity"
)

// MovementSystem eases the player's velocity toward the input axes, keeps
// the player inside the padded world and eases the collision radius toward
// the size implied by the remaining lives.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	spec := w.Tuning.Player
	p := &w.Player

	ax := common.Clamp(common.Finite(w.Controls.MoveX, 0), -1, 1)
	ay := common.Clamp(common.Finite(w.Controls.MoveY, 0), -1, 1)

	p.Vel.X = common.Finite(common.Lerp(p.Vel.X, ax*p.MaxSpeed, spec.Accel), 0)
	p.Vel.Y = common.Finite(common.Lerp(p.Vel.Y, ay*p.MaxSpeed, spec.Accel), 0)

	pad := w.Tuning.World.Padding
	p.Pos.X = common.Clamp(common.Finite(p.Pos.X+p.Vel.X, spec.StartX), pad+p.Radius, w.Width-pad-p.Radius)
	p.Pos.Y = common.Clamp(common.Finite(p.Pos.Y+p.Vel.Y, spec.StartY), pad+p.Radius, w.Height-pad-p.Radius)

	target := entity.TargetRadius(spec, p.HP)
	p.BaseRadius = common.Finite(common.Lerp(p.BaseRadius, target, spec.RadiusEase), target)
	p.Radius = max(spec.MinRadius, p.BaseRadius*(1+w.Timers.Bounce*0.2))
}
