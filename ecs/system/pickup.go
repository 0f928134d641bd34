package system

import (
	"math"

	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
)

// PickupSystem consumes power-ups the player touches and applies them.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w.State != ecs.Running {
		return
	}
	x, y, bw, bh := w.Player.Box()
	box := common.Rect{X: x, Y: y, W: bw, H: bh}
	size := w.Tuning.Drops.Size

	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		if pu.Dead || !common.AABB(box, common.Rect{X: pu.Pos.X, Y: pu.Pos.Y, W: size, H: size}) {
			continue
		}
		pu.Dead = true
		ApplyPowerUp(w, *pu)
	}
	w.PowerUps = ecs.Compact(w.PowerUps, func(p *component.PowerUp) bool { return !p.Dead })
}

// ApplyPowerUp grants the effect of pu and the shared pickup rewards.
func ApplyPowerUp(w *ecs.World, pu component.PowerUp) {
	buffs := w.Tuning.Buffs
	spec := w.Tuning.Player
	p := &w.Player

	switch pu.Kind {
	case component.PowerShield:
		p.ShieldMs = buffs.ShieldMs
	case component.PowerSpeed:
		p.MaxSpeed = min(spec.SpeedCap, p.MaxSpeed+spec.SpeedStep)
		w.Timers.RapidMs = buffs.RapidMs
	case component.PowerHeal:
		p.HP = min(spec.MaxLives, p.HP+1)
	case component.PowerWeapon:
		if level := component.TierIndex(pu.Payload); level > w.WeaponLevel {
			w.WeaponLevel = min(level, component.MaxWeaponLevel)
		}
		w.Timers.RapidMs = buffs.RapidMs
	case component.PowerDrone:
		w.Drones = append(w.Drones, component.Drone{Phase: w.Rand.Float64() * 2 * math.Pi})
	case component.PowerHaste:
		w.Timers.HasteMs = buffs.HasteMs
	case component.PowerAura:
		w.Timers.AuraMs = buffs.AuraMs
	case component.PowerMirror:
		w.Timers.MirrorMs = buffs.MirrorMs
	case component.PowerFamiliars:
		w.Timers.FamiliarMs = buffs.FamiliarsMs
	}

	w.Progress.Boosts++
	w.Progress.Score += w.Tuning.Progression.PickupScore

	if pu.Kind.Detrimental() {
		w.Burst(p.Pos, hasteColor, w.Tuning.Particles.PickupBurst)
		w.Emit(ecs.CueHit)
		return
	}
	w.Burst(p.Pos, pickupColor, w.Tuning.Particles.PickupBurst)
	w.Emit(ecs.CuePower)
}
