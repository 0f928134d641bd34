package system

import (
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

// ParticleSystem ages sparks out and cycles the background bubbles.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	for i := range w.Sparks {
		sp := &w.Sparks[i]
		sp.Pos = sp.Pos.Add(sp.Vel)
		sp.Life--
	}
	w.Sparks = ecs.Compact(w.Sparks, func(sp *component.Spark) bool {
		return sp.Life > 0 && finiteVec(sp.Pos)
	})

	for i := range w.Bubbles {
		b := &w.Bubbles[i]
		b.Y -= b.V
		if b.Y < -10 {
			entity.RespawnBubble(w.Rand, b, w.Width, w.Height)
		}
	}
}
