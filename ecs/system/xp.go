package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

// XPSystem pulls orbs toward the player, banks the ones that arrive and
// turns banked XP into level-ups.
type XPSystem struct{}

func NewXPSystem() *XPSystem {
	return &XPSystem{}
}

func (s *XPSystem) Update(w *ecs.World) {
	prog := w.Tuning.Progression
	p := &w.Player

	for i := range w.Orbs {
		o := &w.Orbs[i]
		d := p.Pos.Sub(o.Pos)
		dist := max(0.001, d.Length())
		o.Vel = o.Vel.Add(d.Mult(prog.OrbPull / dist))
		o.Pos = o.Pos.Add(o.Vel)
		o.Life--
		if dist < prog.OrbPickupRadius {
			w.Progress.XP += prog.XPPerOrb
			o.Life = 0
			w.Sparks = append(w.Sparks, entity.NewSpark(p.Pos, cp.Vector{}, orbColor, 18, 3))
			w.Emit(ecs.CueBonus)
		}
		if !finiteVec(o.Pos) {
			o.Life = 0
		}
	}
	w.Orbs = ecs.Compact(w.Orbs, func(o *component.XPOrb) bool { return o.Life > 0 })

	s.levelUp(w)
}

func (s *XPSystem) levelUp(w *ecs.World) {
	prog := w.Tuning.Progression
	pr := &w.Progress

	pr.XP = common.Finite(pr.XP, 0)
	pr.XPToNext = max(1, common.Finite(pr.XPToNext, prog.XPStart))

	for pr.XP >= pr.XPToNext {
		pr.XP -= pr.XPToNext
		pr.XPToNext = max(1, math.Floor(pr.XPToNext*prog.XPGrowth))
		pr.Level++
		pr.Hue = math.Mod(pr.Hue+prog.HueStep, 360)
		if w.WeaponLevel < component.MaxWeaponLevel {
			w.WeaponLevel++
		}
		w.Sparks = append(w.Sparks, entity.LevelUpShower(w.Rand, w.Player.Pos, hueColor(pr.Hue), w.Tuning.Particles.LevelUpBurst)...)
		w.Emit(ecs.CuePower)
		w.LevelUps++
	}
}
