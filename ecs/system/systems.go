package system

import (
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/input"
)

// DefaultSystems returns the frame phases in their required order. Later
// phases rely on what earlier ones did this same frame.
func DefaultSystems(source input.Source, progress ecs.ProgressFunc, sink ecs.SoundSink) []ecs.System {
	return []ecs.System{
		NewInputSystem(source),
		NewTimerSystem(),
		NewMovementSystem(),
		NewAimSystem(),
		NewWeaponSystem(),
		NewCompanionSystem(),
		NewSpawnSystem(),
		NewProjectileSystem(),
		NewEnemySystem(),
		NewBossSystem(),
		NewCombatSystem(),
		NewPickupSystem(),
		NewXPSystem(),
		NewParticleSystem(),
		NewProgressSystem(progress),
		NewAudioSystem(sink),
	}
}

// NewScheduler builds a started scheduler running the default phases.
func NewScheduler(source input.Source, progress ecs.ProgressFunc, sink ecs.SoundSink) *ecs.Scheduler {
	s := ecs.NewScheduler(DefaultSystems(source, progress, sink)...)
	s.Start()
	return s
}
