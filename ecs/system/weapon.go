package system

import (
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

// WeaponSystem fires the tier weapon on its cadence. A volley goes out when
// the trigger is held (or the weapon fires itself) and at least one gap has
// passed since the last volley.
type WeaponSystem struct{}

func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	w.WeaponLevel = max(0, min(w.WeaponLevel, component.MaxWeaponLevel))
	id := component.TierWeapon(w.WeaponLevel)
	w.Player.Weapon = id

	spec := w.Tuning.Weapon(string(id))
	gap := EffectiveGap(w, spec.Gap)

	if !(w.Controls.Firing || spec.AutoFire) || w.Frame-w.LastFire < gap {
		return
	}

	w.Bullets = append(w.Bullets, entity.Fire(id, spec, w.Player, w.Aim)...)
	if w.Timers.MirrorMs > 0 {
		twin, aim := entity.MirrorTwin(w.Player, w.Aim, w.Height)
		w.Bullets = append(w.Bullets, entity.Fire(id, spec, twin, aim)...)
	}
	w.LastFire = w.Frame
	w.Emit(ecs.Cue(spec.Cue))
}

// EffectiveGap is the frame gap between volleys after the rapid-fire buff.
func EffectiveGap(w *ecs.World, gap int) int {
	if !w.RapidActive() {
		return max(1, gap)
	}
	r := w.Tuning.Rapid
	return max(r.MinGap, int(float64(gap)*r.GapFactor), 1)
}
