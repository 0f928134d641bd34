package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/prefabs"
)

func NewPlayer(spec prefabs.PlayerSpec) component.Player {
	return component.Player{
		Pos:        cp.Vector{X: spec.StartX, Y: spec.StartY},
		MaxSpeed:   spec.MaxSpeed,
		Radius:     spec.BaseRadius,
		BaseRadius: spec.BaseRadius,
		HP:         spec.MaxLives,
		Weapon:     component.Blaster,
	}
}

// TargetRadius is the radius the player eases toward at hp lives.
func TargetRadius(spec prefabs.PlayerSpec, hp int) float64 {
	lives := float64(max(1, spec.MaxLives))
	t := float64(max(1, hp)) / lives
	return spec.BaseRadius * (0.32 + 0.68*t)
}
