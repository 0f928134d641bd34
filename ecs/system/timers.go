package system

import (
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
)

// TimerSystem decays buff timers by elapsed time and the damage effects by
// frame. Nothing goes below zero.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (s *TimerSystem) Update(w *ecs.World) {
	ms := w.DT * common.NominalFrameMs

	t := &w.Timers
	t.HasteMs = decay(t.HasteMs, ms)
	t.RapidMs = decay(t.RapidMs, ms)
	t.AuraMs = decay(t.AuraMs, ms)
	t.MirrorMs = decay(t.MirrorMs, ms)
	t.FamiliarMs = decay(t.FamiliarMs, ms)
	w.Player.ShieldMs = decay(w.Player.ShieldMs, ms)

	t.HitFlash = decay(t.HitFlash, 1)
	t.Bounce = decay(t.Bounce, 0.08)
	t.Shake = decay(t.Shake, 0.8)
}

func decay(v, by float64) float64 {
	v = common.Finite(v, 0) - by
	if v < 0 {
		return 0
	}
	return v
}
