package system

import (
	"math"
	"reflect"
	"testing"

	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/input"
	"github.com/milk9111/eliko/prefabs"
)

func TestSessionInvariants(t *testing.T) {
	seeds := []int64{1, 7, 42}
	for _, seed := range seeds {
		w := ecs.NewWorld(prefabs.DefaultTuning(), nil, 1, seed)
		reports := 0
		sched := NewScheduler(
			fixedSource{input.Frame{MoveY: 0.4, Firing: true}},
			func(xp, next float64, level int, up bool) { reports++ },
			&recordingSink{},
		)

		steps := 0
		for range 3000 {
			if !sched.Step(w, common.NominalFrameMs) {
				break
			}
			steps++

			p := w.Progress
			if w.Player.HP < 0 || w.Player.HP > w.Tuning.Player.MaxLives {
				t.Fatalf("seed %d frame %d: hp %d out of range", seed, w.Frame, w.Player.HP)
			}
			if !(p.XP >= 0 && p.XP < p.XPToNext) {
				t.Fatalf("seed %d frame %d: xp %v not below threshold %v", seed, w.Frame, p.XP, p.XPToNext)
			}
			if w.WeaponLevel < 0 || w.WeaponLevel > component.MaxWeaponLevel {
				t.Fatalf("seed %d frame %d: weapon level %d", seed, w.Frame, w.WeaponLevel)
			}
			for _, b := range w.Bullets {
				if !w.InBound(b.Pos) || b.Dead {
					t.Fatalf("seed %d frame %d: stray bullet %+v", seed, w.Frame, b.Pos)
				}
			}
			for _, e := range w.Enemies {
				if !w.InBound(e.Pos) || e.Dead {
					t.Fatalf("seed %d frame %d: stray enemy %+v", seed, w.Frame, e.Pos)
				}
			}
			if math.IsNaN(w.Player.Pos.X) || math.IsNaN(w.Player.Pos.Y) {
				t.Fatalf("seed %d frame %d: player position is nan", seed, w.Frame)
			}
			if w.PendingCues() != 0 {
				t.Fatalf("seed %d frame %d: %d cues left undrained", seed, w.Frame, w.PendingCues())
			}
		}

		if reports != steps {
			t.Fatalf("seed %d: %d progress reports for %d frames", seed, reports, steps)
		}
		if steps < 3000 && w.State != ecs.GameOver {
			t.Fatalf("seed %d: stepping stopped at frame %d while %v", seed, w.Frame, w.State)
		}
	}
}

func TestStepRespectsSchedulerAndState(t *testing.T) {
	w := newTestWorld()
	sched := NewScheduler(nil, nil, nil)

	if !sched.Step(w, common.NominalFrameMs) || w.Frame != 1 {
		t.Fatalf("running scheduler should step, frame %d", w.Frame)
	}

	sched.Stop()
	if sched.Step(w, common.NominalFrameMs) || w.Frame != 1 {
		t.Fatalf("stopped scheduler stepped, frame %d", w.Frame)
	}
	sched.Start()

	w.TogglePause()
	if sched.Step(w, common.NominalFrameMs) || w.Frame != 1 {
		t.Fatalf("paused world stepped, frame %d", w.Frame)
	}
	w.TogglePause()

	w.EndGame()
	if sched.Step(w, common.NominalFrameMs) || w.Frame != 1 {
		t.Fatalf("finished game stepped, frame %d", w.Frame)
	}
}

func TestRestartMatchesFreshSession(t *testing.T) {
	tun := prefabs.DefaultTuning()
	w := ecs.NewWorld(tun, nil, 2, 99)
	sched := NewScheduler(fixedSource{input.Frame{MoveX: 0.5, Firing: true}}, nil, nil)
	for range 240 {
		sched.Step(w, common.NominalFrameMs)
	}
	w.Player.HP = 2
	w.Emit(ecs.CueHit)

	w.Restart()
	fresh := ecs.NewWorld(tun, nil, w.Stage, 99)

	if got, want := w.Snapshot(), fresh.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("restarted snapshot differs from a fresh session\n got: %+v\nwant: %+v", got.HUD, want.HUD)
	}
	if w.PendingCues() != 0 {
		t.Fatalf("restart kept %d cues", w.PendingCues())
	}
	if w.Level != fresh.Level || w.Spawns != 0 || w.LastFire != 0 {
		t.Fatalf("restart left level state behind: %+v spawns %d", w.Level, w.Spawns)
	}

	for range 30 {
		sched.Step(w, common.NominalFrameMs)
		sched.Step(fresh, common.NominalFrameMs)
	}
	a, b := w.Snapshot(), fresh.Snapshot()
	if a.Player != b.Player || len(a.Bullets) != len(b.Bullets) || len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("restarted session diverged: %+v vs %+v", a.Player, b.Player)
	}
}

func TestDefaultSystemsOrder(t *testing.T) {
	systems := DefaultSystems(nil, nil, nil)
	if _, ok := systems[0].(*InputSystem); !ok {
		t.Fatalf("first phase = %T, want input", systems[0])
	}
	if _, ok := systems[len(systems)-1].(*AudioSystem); !ok {
		t.Fatalf("last phase = %T, want audio", systems[len(systems)-1])
	}

	combat, pickup := -1, -1
	for i, s := range systems {
		switch s.(type) {
		case *CombatSystem:
			combat = i
		case *PickupSystem:
			pickup = i
		}
	}
	if combat < 0 || pickup < combat {
		t.Fatalf("combat %d must run before pickups %d", combat, pickup)
	}
}
