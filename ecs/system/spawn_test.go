package system

import (
	"testing"

	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/levels"
)

func TestSpawnQuotaBringsBoss(t *testing.T) {
	w := newTestWorld()
	w.Spawns = w.Tuning.Boss.Quota
	w.Frame = 1

	s := NewSpawnSystem()
	s.Update(w)

	if w.Boss == nil || !w.BossActive() {
		t.Fatalf("boss should be active")
	}
	if w.Spawns != 0 {
		t.Fatalf("spawns = %d, want 0", w.Spawns)
	}
	boss := w.Boss

	for f := 2; f < 400; f++ {
		w.Frame = f
		s.Update(w)
	}
	if len(w.Enemies) != 0 {
		t.Fatalf("regular spawns continued during the boss: %d", len(w.Enemies))
	}
	if w.Boss != boss {
		t.Fatalf("a second boss replaced the first")
	}
}

func TestSpawnOnInterval(t *testing.T) {
	w := newTestWorld()
	every := SpawnInterval(w)
	s := NewSpawnSystem()

	for f := 1; f <= every*3; f++ {
		w.Frame = f
		s.Update(w)
	}
	if len(w.Enemies) != 3 || w.Spawns != 3 {
		t.Fatalf("enemies/spawns = %d/%d, want 3/3", len(w.Enemies), w.Spawns)
	}
	for _, e := range w.Enemies {
		if e.Pos.X <= w.Width {
			t.Fatalf("enemy spawned on screen at x=%v", e.Pos.X)
		}
		if e.HP < 1 {
			t.Fatalf("enemy spawned with hp %d", e.HP)
		}
	}
}

func TestHasteTightensSpawnsAndTime(t *testing.T) {
	w := newTestWorld()
	normal := SpawnInterval(w)

	w.Timers.HasteMs = 1000
	w.BeginFrame(common.NominalFrameMs)

	if w.TS != w.Tuning.Haste.TimeScale {
		t.Fatalf("timescale = %v, want %v", w.TS, w.Tuning.Haste.TimeScale)
	}
	hasted := SpawnInterval(w)
	if hasted >= normal {
		t.Fatalf("haste interval = %d, want below %d", hasted, normal)
	}
	if hasted < levels.MinSpawnEvery {
		t.Fatalf("haste interval %d below floor %d", hasted, levels.MinSpawnEvery)
	}

	w.Timers.HasteMs = 0
	w.BeginFrame(common.NominalFrameMs)
	if w.TS != 1 {
		t.Fatalf("timescale after haste = %v, want 1", w.TS)
	}
}

func TestTunedQuotaBringsBossSooner(t *testing.T) {
	w := newTestWorld()
	w.Tuning.Boss.Quota = 3
	every := SpawnInterval(w)
	s := NewSpawnSystem()

	for f := 1; f < every*3; f++ {
		w.Frame = f
		s.Update(w)
	}
	if w.Boss != nil {
		t.Fatalf("boss arrived after %d spawns, want 3", w.Spawns)
	}
	w.Frame = every * 3
	s.Update(w)
	if w.Boss == nil || w.Spawns != 0 {
		t.Fatalf("boss = %v spawns = %d, want boss after 3 spawns", w.Boss != nil, w.Spawns)
	}
}
