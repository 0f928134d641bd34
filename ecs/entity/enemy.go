package entity

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/prefabs"
)

// NewEnemy builds a regular enemy drifting left at speed. The footprint comes
// from the kind's tuning.
func NewEnemy(kind component.EnemyKind, spec prefabs.EnemySpec, pos cp.Vector, speed float64, hp int) component.Enemy {
	return component.Enemy{
		Body: component.Body{
			ID:  common.NextID(),
			Pos: pos,
			Vel: cp.Vector{X: -speed},
			W:   spec.W,
			H:   spec.H,
			HP:  max(1, hp),
		},
		Kind:  kind,
		Heavy: spec.Heavy,
		Scale: 1,
	}
}

// NewShot builds a hostile projectile. Shots share the enemy list but never
// take player fire.
func NewShot(shot component.ShotKind, pos, vel cp.Vector, w, h float64) component.Enemy {
	return component.Enemy{
		Body: component.Body{
			ID:  common.NextID(),
			Pos: pos,
			Vel: vel,
			W:   w,
			H:   h,
			HP:  1,
		},
		Shot:  shot,
		Scale: 1,
	}
}

// EnemyHP is the spawn hit points for kind at the level's base.
func EnemyHP(spec prefabs.EnemySpec, base int) int {
	return max(1, base+spec.HPBonus)
}

// PickEnemyKind draws a kind from a bag that widens with the stage.
func PickEnemyKind(rng *rand.Rand, stage int) component.EnemyKind {
	bag := []component.EnemyKind{component.Jelly, component.Squid, component.Manta, component.Puffer}
	if stage >= 2 {
		bag = append(bag, component.Nautilus)
	}
	if stage >= 3 {
		bag = append(bag, component.Crab)
	}
	return bag[rng.Intn(len(bag))]
}

func NewBoss(spec prefabs.BossSpec, pos cp.Vector, hp int) component.Boss {
	return component.Boss{
		Body: component.Body{
			ID:  common.NextID(),
			Pos: pos,
			Vel: cp.Vector{X: -spec.Drift},
			W:   spec.W,
			H:   spec.H,
			HP:  max(1, hp),
		},
		Aura: 1,
	}
}
