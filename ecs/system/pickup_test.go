package system

import (
	"testing"

	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
)

func TestHealAtFullLivesIsCapped(t *testing.T) {
	w := newTestWorld()
	maxLives := w.Tuning.Player.MaxLives
	w.Player.HP = maxLives
	w.PowerUps = append(w.PowerUps, entity.NewPowerUp(w.Player.Pos, component.PowerHeal, component.Blaster))

	NewPickupSystem().Update(w)

	if w.Player.HP != maxLives {
		t.Fatalf("hp = %d, want %d", w.Player.HP, maxLives)
	}
	if len(w.PowerUps) != 0 {
		t.Fatalf("power-up should be consumed")
	}
	if w.Progress.Boosts != 1 || w.Progress.Score != w.Tuning.Progression.PickupScore {
		t.Fatalf("boosts/score = %d/%d", w.Progress.Boosts, w.Progress.Score)
	}
}

func TestPickupEffects(t *testing.T) {
	cases := []struct {
		kind  component.PowerUpKind
		check func(t *testing.T, w *ecs.World)
	}{
		{component.PowerShield, func(t *testing.T, w *ecs.World) {
			if w.Player.ShieldMs != w.Tuning.Buffs.ShieldMs {
				t.Fatalf("shield = %v", w.Player.ShieldMs)
			}
		}},
		{component.PowerSpeed, func(t *testing.T, w *ecs.World) {
			want := w.Tuning.Player.MaxSpeed + w.Tuning.Player.SpeedStep
			if w.Player.MaxSpeed != want || !w.RapidActive() {
				t.Fatalf("speed = %v rapid = %v", w.Player.MaxSpeed, w.RapidActive())
			}
		}},
		{component.PowerHeal, func(t *testing.T, w *ecs.World) {
			if w.Player.HP != 3 {
				t.Fatalf("hp = %d, want 3", w.Player.HP)
			}
		}},
		{component.PowerDrone, func(t *testing.T, w *ecs.World) {
			if len(w.Drones) != 1 {
				t.Fatalf("drones = %d", len(w.Drones))
			}
		}},
		{component.PowerHaste, func(t *testing.T, w *ecs.World) {
			if !w.HasteActive() {
				t.Fatalf("haste should be active")
			}
			if !hasCue(w.DrainCues(), ecs.CueHit) {
				t.Fatalf("detrimental pickup should sound like a hit")
			}
		}},
		{component.PowerAura, func(t *testing.T, w *ecs.World) {
			if w.Timers.AuraMs != w.Tuning.Buffs.AuraMs {
				t.Fatalf("aura = %v", w.Timers.AuraMs)
			}
		}},
		{component.PowerMirror, func(t *testing.T, w *ecs.World) {
			if w.Timers.MirrorMs != w.Tuning.Buffs.MirrorMs {
				t.Fatalf("mirror = %v", w.Timers.MirrorMs)
			}
		}},
		{component.PowerFamiliars, func(t *testing.T, w *ecs.World) {
			if w.Timers.FamiliarMs != w.Tuning.Buffs.FamiliarsMs {
				t.Fatalf("familiars = %v", w.Timers.FamiliarMs)
			}
		}},
	}
	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			w := newTestWorld()
			w.Player.HP = 2
			ApplyPowerUp(w, entity.NewPowerUp(w.Player.Pos, c.kind, component.Blaster))
			c.check(t, w)
		})
	}
}

func TestSpeedPickupCapped(t *testing.T) {
	w := newTestWorld()
	for range 20 {
		ApplyPowerUp(w, entity.NewPowerUp(w.Player.Pos, component.PowerSpeed, ""))
	}
	if w.Player.MaxSpeed != w.Tuning.Player.SpeedCap {
		t.Fatalf("max speed = %v, want cap %v", w.Player.MaxSpeed, w.Tuning.Player.SpeedCap)
	}
}

func TestWeaponPickupNeverDowngrades(t *testing.T) {
	cases := []struct {
		name    string
		level   int
		payload component.WeaponID
		want    int
	}{
		{"upgrade", 0, component.Laser, 3},
		{"lower_payload", 3, component.Spread, 3},
		{"same_payload", 3, component.Laser, 3},
		{"top", 3, component.Nova, component.MaxWeaponLevel},
		{"unknown_payload", 2, "", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld()
			w.WeaponLevel = c.level
			ApplyPowerUp(w, entity.NewPowerUp(w.Player.Pos, component.PowerWeapon, c.payload))
			if w.WeaponLevel != c.want {
				t.Fatalf("weapon level = %d, want %d", w.WeaponLevel, c.want)
			}
		})
	}
}

func TestPickupWaitsWhilePaused(t *testing.T) {
	w := newTestWorld()
	w.PowerUps = append(w.PowerUps, entity.NewPowerUp(w.Player.Pos, component.PowerShield, ""))
	w.TogglePause()

	NewPickupSystem().Update(w)

	if len(w.PowerUps) != 1 || w.Player.ShieldMs != 0 {
		t.Fatalf("paused pickup applied: %d left, shield %v", len(w.PowerUps), w.Player.ShieldMs)
	}
}

func TestPickupIgnoresDistantPowerUps(t *testing.T) {
	w := newTestWorld()
	far := w.Player.Pos
	far.X += 300
	w.PowerUps = append(w.PowerUps, entity.NewPowerUp(far, component.PowerShield, ""))

	NewPickupSystem().Update(w)

	if len(w.PowerUps) != 1 || w.Progress.Boosts != 0 {
		t.Fatalf("distant power-up collected")
	}
}
