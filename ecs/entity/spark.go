package entity

import (
	"image/color"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
)

func NewSpark(pos, vel cp.Vector, c color.RGBA, life, size float64) component.Spark {
	return component.Spark{
		Body: component.Body{
			ID:  common.NextID(),
			Pos: pos,
			Vel: vel,
			W:   size,
			H:   size,
		},
		Life:  life,
		Color: c,
	}
}

// Burst scatters n short-lived sparks from p.
func Burst(rng *rand.Rand, p cp.Vector, c color.RGBA, n int) []component.Spark {
	if n <= 0 {
		return nil
	}
	out := make([]component.Spark, 0, n)
	for range n {
		vel := cp.Vector{X: common.RandRange(rng, -2, 2), Y: common.RandRange(rng, -2, 2)}
		out = append(out, NewSpark(p, vel, c, 18+rng.Float64()*16, 2+rng.Float64()*2))
	}
	return out
}

// DeathBurst is the two-tone explosion shown when the player dies.
func DeathBurst(rng *rand.Rand, p cp.Vector, a, b color.RGBA, n int) []component.Spark {
	out := make([]component.Spark, 0, max(0, n))
	for i := range n {
		c := a
		if i%2 == 1 {
			c = b
		}
		vel := cp.Vector{X: common.RandRange(rng, -2, 2), Y: common.RandRange(rng, -2, 2)}
		out = append(out, NewSpark(p, vel, c, 24+common.RandRange(rng, 0, 20), 2+common.RandRange(rng, 0, 3)))
	}
	return out
}

// LevelUpShower rains n sparks down from above p.
func LevelUpShower(rng *rand.Rand, p cp.Vector, c color.RGBA, n int) []component.Spark {
	out := make([]component.Spark, 0, max(0, n))
	for range n {
		pos := cp.Vector{X: p.X + common.RandRange(rng, -40, 40), Y: p.Y - 120 + common.RandRange(rng, -20, 20)}
		vel := cp.Vector{X: common.RandRange(rng, -1, 1), Y: common.RandRange(rng, 1.2, 2.2)}
		out = append(out, NewSpark(pos, vel, c, 24, 3))
	}
	return out
}

// Bubbles seeds n background bubbles across a width by height surface.
func Bubbles(rng *rand.Rand, n int, width, height float64) []component.Bubble {
	if n <= 0 {
		return nil
	}
	out := make([]component.Bubble, 0, n)
	for range n {
		out = append(out, component.Bubble{
			X: common.RandRange(rng, 0, width),
			Y: common.RandRange(rng, 0, height),
			R: common.RandRange(rng, 2, 6),
			V: common.RandRange(rng, 0.4, 1.2),
		})
	}
	return out
}

// RespawnBubble moves a bubble that left the top back below the bottom edge.
func RespawnBubble(rng *rand.Rand, b *component.Bubble, width, height float64) {
	b.X = common.RandRange(rng, 0, width)
	b.Y = height + common.RandRange(rng, 10, 80)
	b.R = common.RandRange(rng, 2, 6)
	b.V = common.RandRange(rng, 0.4, 1.2)
}
