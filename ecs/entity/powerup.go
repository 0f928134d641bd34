package entity

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/prefabs"
)

func NewPowerUp(pos cp.Vector, kind component.PowerUpKind, payload component.WeaponID) component.PowerUp {
	return component.PowerUp{
		ID:      common.NextID(),
		Pos:     pos,
		Kind:    kind,
		Payload: payload,
	}
}

// DropChance is the per-spawn drop probability for a kill streak.
func DropChance(spec prefabs.DropSpec, streak int) float64 {
	bonus := min(spec.StreakCap, float64(max(0, streak))*spec.StreakBonus)
	return common.Clamp(spec.BaseChance+bonus, 0, 1)
}

// RollDrop decides whether a spawn carries a power-up and which one. The
// pool is chosen first: mythic, then detrimental, else beneficial.
func RollDrop(rng *rand.Rand, spec prefabs.DropSpec, streak int) (component.PowerUpKind, bool) {
	if rng.Float64() >= DropChance(spec, streak) {
		return "", false
	}
	return PickPowerUp(rng, spec), true
}

func PickPowerUp(rng *rand.Rand, spec prefabs.DropSpec) component.PowerUpKind {
	pool := component.BeneficialPool
	switch r := rng.Float64(); {
	case r < spec.MythicChance:
		pool = component.MythicPool
	case r < spec.MythicChance+spec.BadChance:
		pool = component.DetrimentalPool
	}
	return pool[rng.Intn(len(pool))]
}

func NewOrb(rng *rand.Rand, pos cp.Vector, life int) component.XPOrb {
	return component.XPOrb{
		ID:   common.NextID(),
		Pos:  pos,
		Vel:  cp.Vector{X: common.RandRange(rng, -1.2, 1.2), Y: common.RandRange(rng, -1.2, 1.2)},
		Life: life,
	}
}
