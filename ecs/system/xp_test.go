package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/ecs/component"
)

func TestExactThresholdLevelsOnce(t *testing.T) {
	w := newTestWorld()
	start := w.Progress.XPToNext
	w.Progress.XP = start

	var reports []bool
	NewXPSystem().Update(w)
	NewProgressSystem(func(xp, next float64, level int, up bool) {
		reports = append(reports, up)
	}).Update(w)

	if w.Progress.Level != 2 {
		t.Fatalf("level = %d, want 2", w.Progress.Level)
	}
	if w.Progress.XP != 0 {
		t.Fatalf("xp = %v, want 0", w.Progress.XP)
	}
	if want := float64(int(start * w.Tuning.Progression.XPGrowth)); w.Progress.XPToNext != want {
		t.Fatalf("xpToNext = %v, want %v", w.Progress.XPToNext, want)
	}
	if w.LevelUps != 1 {
		t.Fatalf("level ups = %d, want 1", w.LevelUps)
	}
	if len(reports) != 1 || !reports[0] {
		t.Fatalf("progress reports = %v, want [true]", reports)
	}
	if w.WeaponLevel != 1 {
		t.Fatalf("weapon level = %d, want 1", w.WeaponLevel)
	}
}

func TestLargeXPGainCarriesOver(t *testing.T) {
	w := newTestWorld()
	w.Progress.XP = 40 + 54 + 10

	NewXPSystem().Update(w)

	if w.Progress.Level != 3 || w.LevelUps != 2 {
		t.Fatalf("level/ups = %d/%d, want 3/2", w.Progress.Level, w.LevelUps)
	}
	if w.Progress.XP != 10 {
		t.Fatalf("xp = %v, want 10", w.Progress.XP)
	}
	if w.Progress.XP >= w.Progress.XPToNext {
		t.Fatalf("xp %v not below threshold %v", w.Progress.XP, w.Progress.XPToNext)
	}
}

func TestLevelUpKeepsWeaponAtMax(t *testing.T) {
	w := newTestWorld()
	w.WeaponLevel = component.MaxWeaponLevel
	w.Progress.XP = w.Progress.XPToNext

	NewXPSystem().Update(w)

	if w.WeaponLevel != component.MaxWeaponLevel {
		t.Fatalf("weapon level = %d, want %d", w.WeaponLevel, component.MaxWeaponLevel)
	}
}

func TestOrbsAreCollected(t *testing.T) {
	w := newTestWorld()
	w.Orbs = append(w.Orbs,
		component.XPOrb{Pos: w.Player.Pos.Add(cp.Vector{X: 4}), Life: 100},
		component.XPOrb{Pos: cp.Vector{X: 700, Y: 900}, Life: 100},
	)

	NewXPSystem().Update(w)

	if len(w.Orbs) != 1 {
		t.Fatalf("orbs = %d, want 1", len(w.Orbs))
	}
	if w.Progress.XP != w.Tuning.Progression.XPPerOrb {
		t.Fatalf("xp = %v, want %v", w.Progress.XP, w.Tuning.Progression.XPPerOrb)
	}
}

func TestExpiredOrbsVanish(t *testing.T) {
	w := newTestWorld()
	w.Orbs = append(w.Orbs, component.XPOrb{Pos: cp.Vector{X: 700, Y: 900}, Life: 1})

	NewXPSystem().Update(w)

	if len(w.Orbs) != 0 || w.Progress.XP != 0 {
		t.Fatalf("orbs/xp = %d/%v, want 0/0", len(w.Orbs), w.Progress.XP)
	}
}
