package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

// BossSystem drifts the boss in from the right, weaves it vertically and
// runs its three attack cadences. Every cadence tightens with the stage.
type BossSystem struct{}

func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

func (s *BossSystem) Update(w *ecs.World) {
	b := w.Boss
	if b == nil || b.Dead {
		return
	}
	spec := w.Tuning.Boss
	stage := float64(w.Stage)

	minX := w.Width - spec.MinXFromRight
	b.Pos.X = common.Finite(b.Pos.X-spec.Drift*w.TS, minX)
	if b.Pos.X < minX {
		b.Pos.X = minX
	}
	b.T += 0.02
	b.Aura = 0.8 + 0.2*math.Sin(float64(w.Frame)*0.08)

	amp := spec.WeaveBase + spec.WeavePerStage*stage
	if room := w.Height/2 - w.Tuning.World.Padding - spec.H/2; room > 0 && amp > room {
		amp = room
	}
	b.Pos.Y = common.Finite(w.Height/2+math.Sin(b.T)*amp, w.Height/2)

	if every := max(spec.SpearMin, spec.SpearEvery-2*w.Stage); every > 0 && w.Frame%every == 0 {
		for i := -1; i <= 1; i++ {
			fi := float64(i)
			pos := cp.Vector{X: b.Pos.X - 60, Y: b.Pos.Y + fi*20}
			vel := cp.Vector{X: -(4.6 + stage*0.15), Y: fi * 0.6}
			w.Enemies = append(w.Enemies, entity.NewShot(component.ShotSpear, pos, vel, 18, 6))
		}
	}

	if every := max(spec.RingMin, spec.RingEvery-2*w.Stage); every > 0 && w.Frame%every == 0 {
		n := max(1, spec.RingCount)
		for i := range n {
			ang := float64(i) * 2 * math.Pi / float64(n)
			vel := cp.Vector{X: math.Cos(ang) * (-3.5 - stage*0.08), Y: math.Sin(ang) * 2.2}
			w.Enemies = append(w.Enemies, entity.NewShot(component.ShotRing, cp.Vector{X: b.Pos.X - 40, Y: b.Pos.Y}, vel, 10, 10))
		}
	}

	if every := max(spec.FlameMin, spec.FlameEvery-w.Stage); every > 0 && w.Frame%every == 0 {
		vy := math.Sin(b.T+w.Rand.Float64()) * 2.8
		vel := cp.Vector{X: -(3.2 + stage*0.18), Y: vy}
		w.Enemies = append(w.Enemies, entity.NewShot(component.ShotFlame, cp.Vector{X: b.Pos.X - 70, Y: b.Pos.Y}, vel, 24, 24))
	}
}
