package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/entity"
	"github.com/milk9111/eliko/levels"
)

// SpawnSystem feeds enemies in from the right edge while no boss is up and
// brings the boss in once the stage quota is met.
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w.Boss != nil {
		return
	}

	if w.Frame%SpawnInterval(w) == 0 {
		spawnEnemy(w)
	}

	if spec := w.Tuning.Boss; w.Spawns >= spec.Quota {
		b := entity.NewBoss(spec, cp.Vector{X: w.Width + 200, Y: w.Height / 2}, w.Level.BossHP+spec.HPBonus)
		w.Boss = &b
		w.Spawns = 0
	}
}

// SpawnInterval is the frame gap between regular spawns, shortened by haste
// and never below the level floor.
func SpawnInterval(w *ecs.World) int {
	every := w.Level.SpawnEvery
	if w.HasteActive() && w.Tuning.Haste.Detrimental && w.Tuning.Haste.SpawnFactor > 0 {
		every = int(float64(every) * w.Tuning.Haste.SpawnFactor)
	}
	return max(levels.MinSpawnEvery, every)
}

func spawnEnemy(w *ecs.World) {
	pad := w.Tuning.World.Padding
	y := common.RandRange(w.Rand, pad+60, w.Height-pad-60)

	kind := entity.PickEnemyKind(w.Rand, w.Stage)
	spec := w.Tuning.Enemy(string(kind))
	hp := entity.EnemyHP(spec, w.Level.EnemyHP)
	speed := w.Level.Speed * w.Tuning.EnemyFire.SpawnSpeed

	w.Enemies = append(w.Enemies, entity.NewEnemy(kind, spec, cp.Vector{X: w.Width + 60, Y: y}, speed, hp))
	w.Spawns++

	kindPU, ok := entity.RollDrop(w.Rand, w.Tuning.Drops, w.Progress.KillStreak)
	if !ok {
		return
	}
	payload := entity.PickWeapon(w.Rand, w.Stage)
	w.PowerUps = append(w.PowerUps, entity.NewPowerUp(cp.Vector{X: w.Width + 50, Y: y}, kindPU, payload))
}
