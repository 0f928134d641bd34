package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

// bossContactDamage is what touching the boss body costs per frame.
const bossContactDamage = 2

// CombatSystem resolves player fire against enemies and the boss, the aura
// mythic, and enemy contact against the player. It ends with a sweep so no
// dead record reaches the next phase.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World) {
	s.resolveFire(w)
	s.resolveAura(w)
	s.resolveContact(w)
	w.Sweep()
}

func (s *CombatSystem) resolveFire(w *ecs.World) {
	particles := w.Tuning.Particles

	for bi := range w.Bullets {
		b := &w.Bullets[bi]
		if b.Dead {
			continue
		}

		for ei := range w.Enemies {
			e := &w.Enemies[ei]
			if e.Dead || e.IsBullet() {
				continue
			}
			if !common.AABB(b.Rect(), e.Rect()) {
				continue
			}
			e.HP -= b.Damage
			w.Burst(e.Pos, enemyColor(e.Kind), particles.HitBurst)
			consumePierce(b)
			if e.HP <= 0 {
				killEnemy(w, e)
			}
			if b.Dead {
				break
			}
		}

		boss := w.Boss
		if b.Dead || boss == nil || boss.Dead || !common.AABB(b.Rect(), boss.Rect()) {
			continue
		}
		boss.HP -= b.Damage
		w.Burst(boss.Pos, bossColor, particles.BossHitBurst)
		consumePierce(b)
		if boss.HP <= 0 {
			killBoss(w)
		}
	}
}

// resolveAura damages every enemy body inside the aura on its cadence.
func (s *CombatSystem) resolveAura(w *ecs.World) {
	spec := w.Tuning.Companions
	if w.Timers.AuraMs <= 0 || spec.AuraEvery <= 0 || w.Frame%spec.AuraEvery != 0 {
		return
	}
	r2 := spec.AuraRadius * spec.AuraRadius
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead || e.IsBullet() || e.Pos.DistanceSq(w.Player.Pos) > r2 {
			continue
		}
		e.HP -= spec.AuraDamage
		if e.HP <= 0 {
			killEnemy(w, e)
		}
	}
	boss := w.Boss
	if boss == nil || boss.Dead {
		return
	}
	reach := spec.AuraRadius + boss.W/2
	if boss.Pos.DistanceSq(w.Player.Pos) <= reach*reach {
		boss.HP -= spec.AuraDamage
		if boss.HP <= 0 {
			killBoss(w)
		}
	}
}

func (s *CombatSystem) resolveContact(w *ecs.World) {
	if w.State == ecs.GameOver {
		return
	}
	x, y, bw, bh := w.Player.Box()
	box := common.Rect{X: x, Y: y, W: bw, H: bh}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead || !common.AABB(box, e.Rect()) {
			continue
		}
		DamagePlayer(w, e.ContactDamage())
		e.Kill()
	}
	if boss := w.Boss; boss != nil && !boss.Dead && common.AABB(box, boss.Rect()) {
		DamagePlayer(w, bossContactDamage)
	}
}

func consumePierce(b *component.Bullet) {
	if b.Pierce > 0 {
		b.Pierce--
		return
	}
	b.Kill()
}

func killEnemy(w *ecs.World, e *component.Enemy) {
	prog := w.Tuning.Progression
	p := &w.Progress

	e.Kill()
	p.Score += prog.KillScore
	p.Kills++
	p.KillsSincePower++
	p.KillStreak++
	w.Emit(ecs.CueBonus)

	for range 3 + w.Rand.Intn(3) {
		w.Orbs = append(w.Orbs, entity.NewOrb(w.Rand, e.Pos, prog.OrbLife))
	}

	if p.KillsNeeded > 0 && p.KillsSincePower >= p.KillsNeeded {
		p.KillsSincePower = 0
		p.KillsNeeded += prog.KillsNeededStep
		if w.Rand.Float64() < prog.KillUpgradeChance && w.WeaponLevel < component.MaxWeaponLevel {
			w.WeaponLevel++
			w.Emit(ecs.CuePower)
		}
	}
}

// killBoss advances the stage, grants a drone and scatters a batch of
// power-ups where the boss fought.
func killBoss(w *ecs.World) {
	boss := w.Boss
	drops := w.Tuning.Drops
	pad := w.Tuning.World.Padding

	boss.Kill()
	w.Progress.Score += w.Tuning.Progression.BossScore
	w.Burst(boss.Pos, bossColor, w.Tuning.Particles.BossDeathBurst)
	w.Emit(ecs.CuePower)

	w.AdvanceStage()
	w.Drones = append(w.Drones, component.Drone{Phase: w.Rand.Float64() * 2 * math.Pi})

	for k := range drops.BossSeedCount {
		kind := component.PowerDrone
		if w.Rand.Float64() < drops.BossWeaponChance {
			kind = component.PowerWeapon
		}
		pos := cp.Vector{
			X: w.Width - 260 + float64(k)*44,
			Y: common.RandRange(w.Rand, pad+80, w.Height-pad-80),
		}
		w.PowerUps = append(w.PowerUps, entity.NewPowerUp(pos, kind, entity.PickWeapon(w.Rand, w.Stage)))
	}
}

// DamagePlayer applies dmg unless shielded. Reaching zero lives ends the
// game with a death burst; damage after that is ignored.
func DamagePlayer(w *ecs.World, dmg int) {
	if w.State == ecs.GameOver || dmg <= 0 {
		return
	}
	p := &w.Player
	if p.ShieldMs > 0 {
		w.Timers.HitFlash = 8
		w.Emit(ecs.CueHit)
		return
	}

	p.HP = max(0, p.HP-dmg)
	w.Timers.Bounce = 1
	w.Timers.HitFlash = 16
	w.Timers.Shake = 22
	w.Progress.KillStreak = 0
	w.Emit(ecs.CueHit)

	if p.HP > 0 {
		return
	}
	w.Sparks = append(w.Sparks, entity.DeathBurst(w.Rand, p.Pos, deathColorA, deathColorB, w.Tuning.Particles.DeathBurst)...)
	w.Emit(ecs.CueNova)
	w.EndGame()
}
