package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

const companionShotSpeed = 8

// CompanionSystem orbits drones and familiars around the player and fires
// them on their own cadences along the current aim.
type CompanionSystem struct{}

func NewCompanionSystem() *CompanionSystem {
	return &CompanionSystem{}
}

func (s *CompanionSystem) Update(w *ecs.World) {
	spec := w.Tuning.Companions
	fired := false

	droneTurn := spec.DroneEvery > 0 && w.Frame%spec.DroneEvery == 0
	for i := range w.Drones {
		d := &w.Drones[i]
		d.Phase += spec.DroneSpin * w.TS
		if droneTurn {
			from := w.Player.Pos.Add(cp.ForAngle(d.Phase).Mult(spec.DroneOrbit))
			w.Bullets = append(w.Bullets, entity.CompanionShot(from, w.Aim, companionShotSpeed))
			fired = true
		}
	}

	if w.Timers.FamiliarMs <= 0 {
		w.Familiars = nil
	} else {
		if len(w.Familiars) == 0 {
			w.Familiars = summonFamiliars(spec.FamiliarCount)
		}
		familiarTurn := spec.FamiliarEvery > 0 && w.Frame%spec.FamiliarEvery == 0
		for i := range w.Familiars {
			f := &w.Familiars[i]
			f.Phase += spec.FamiliarSpin * w.TS
			if familiarTurn {
				from := w.Player.Pos.Add(cp.ForAngle(f.Phase).Mult(spec.FamiliarOrbit))
				w.Bullets = append(w.Bullets, entity.CompanionShot(from, w.Aim, companionShotSpeed))
				fired = true
			}
		}
	}

	if fired {
		w.Emit(ecs.CueShoot)
	}
}

func summonFamiliars(n int) []component.Familiar {
	if n <= 0 {
		return nil
	}
	out := make([]component.Familiar, n)
	for i := range out {
		out[i].Phase = float64(i) * 2 * math.Pi / float64(n)
	}
	return out
}
