package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
)

// ProjectileSystem advances player projectiles and drifting power-ups, then
// drops whatever left the world or expired.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	bound := w.Bound()
	ts := w.TS

	for i := range w.Bullets {
		b := &w.Bullets[i]
		if b.Orbit {
			b.Phase += b.Spin * ts
			b.Pos = w.Player.Pos.Add(cp.ForAngle(b.Phase).Mult(b.OrbitRadius))
			b.Life--
			if b.Life <= 0 {
				b.Kill()
			}
			continue
		}
		b.Pos = b.Pos.Add(b.Vel.Mult(ts))
		if !finiteVec(b.Pos) || !bound.ContainsVect(b.Pos) {
			b.Kill()
		}
	}
	w.Bullets = ecs.Compact(w.Bullets, func(b *component.Bullet) bool { return !b.Dead })

	drift := w.Tuning.Drops.Drift
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		p.Pos.X -= drift * ts
		if !finiteVec(p.Pos) || !bound.ContainsVect(p.Pos) {
			p.Dead = true
		}
	}
	w.PowerUps = ecs.Compact(w.PowerUps, func(p *component.PowerUp) bool { return !p.Dead })
}

func finiteVec(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
