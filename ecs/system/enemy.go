package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

// EnemySystem moves every enemy record. Bodies follow their kind's pattern
// and may shoot; hostile projectiles travel in a straight line.
type EnemySystem struct {
	shots []component.Enemy
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	bound := w.Bound()
	ts := w.TS
	s.shots = s.shots[:0]

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.IsBullet() {
			e.Pos = e.Pos.Add(e.Vel.Mult(ts))
		} else {
			s.advance(w, e)
		}
		if !finiteVec(e.Pos) || !bound.ContainsVect(e.Pos) {
			e.Kill()
		}
	}

	w.Enemies = ecs.Compact(w.Enemies, func(e *component.Enemy) bool { return !e.Dead })
	for _, shot := range s.shots {
		if bound.ContainsVect(shot.Pos) {
			w.Enemies = append(w.Enemies, shot)
		}
	}
}

func (s *EnemySystem) advance(w *ecs.World, e *component.Enemy) {
	spec := w.Tuning.Enemy(string(e.Kind))
	fire := w.Tuning.EnemyFire
	ts := w.TS

	e.T += 0.03 * ts
	e.Pos.X += e.Vel.X * ts * spec.Speed

	switch e.Kind {
	case component.Jelly, component.Squid, component.Manta, component.Crab:
		e.Pos.Y += math.Sin(e.T*spec.BobFreq) * spec.BobAmp
	case component.Puffer:
		e.Scale = 1 + math.Sin(e.T*3)*spec.Pulse
	case component.Nautilus:
		if spec.Spits && fire.SpitEvery > 0 && w.Frame%fire.SpitEvery == 0 {
			vel := cp.Vector{X: -fire.SpitSpeed, Y: math.Sin(e.T*math.Pi) * 2.4}
			s.shots = append(s.shots, entity.NewShot(component.ShotSpit, cp.Vector{X: e.Pos.X - 20, Y: e.Pos.Y}, vel, 20, 20))
		}
	}

	if spec.Shoots && fire.AimedEvery > 0 && w.Frame%fire.AimedEvery == 0 && w.Rand.Float64() < fire.AimedChance {
		s.shots = append(s.shots, aimedShot(w, e.Pos))
	}
}

// aimedShot leads the player by their current velocity.
func aimedShot(w *ecs.World, from cp.Vector) component.Enemy {
	fire := w.Tuning.EnemyFire
	lead := w.Player.Pos.Add(w.Player.Vel.Mult(fire.AimedLead))
	d := lead.Sub(from)
	dist := max(0.001, d.Length())
	speed := fire.AimedSpeed + float64(w.Stage)*fire.AimedSpeedPerStage
	vel := d.Mult(speed / dist)
	return entity.NewShot(component.ShotAimed, from, vel, 14, 8)
}
