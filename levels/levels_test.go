package levels

import "testing"

func TestMakeIsMonotonic(t *testing.T) {
	prev := Make(1)
	for stage := 2; stage <= 60; stage++ {
		cur := Make(stage)
		if cur.SpawnEvery > prev.SpawnEvery {
			t.Fatalf("stage %d spawn interval grew: %d > %d", stage, cur.SpawnEvery, prev.SpawnEvery)
		}
		if cur.EnemyHP < prev.EnemyHP {
			t.Fatalf("stage %d enemy hp shrank: %d < %d", stage, cur.EnemyHP, prev.EnemyHP)
		}
		if cur.Speed < prev.Speed {
			t.Fatalf("stage %d speed shrank: %v < %v", stage, cur.Speed, prev.Speed)
		}
		if cur.BossHP < prev.BossHP {
			t.Fatalf("stage %d boss hp shrank: %d < %d", stage, cur.BossHP, prev.BossHP)
		}
		if cur.SpawnEvery < MinSpawnEvery {
			t.Fatalf("stage %d spawn interval %d below floor", stage, cur.SpawnEvery)
		}
		prev = cur
	}
}

func TestMakeValues(t *testing.T) {
	cases := []struct {
		stage int
		want  LevelState
	}{
		{1, LevelState{Stage: 1, SpawnEvery: 66, EnemyHP: 1, Speed: 2.45, BossHP: 18}},
		{3, LevelState{Stage: 3, SpawnEvery: 58, EnemyHP: 2, Speed: 2.95, BossHP: 30}},
		{20, LevelState{Stage: 20, SpawnEvery: 26, EnemyHP: 7, Speed: 5.2, BossHP: 132}},
	}
	for _, c := range cases {
		got := Make(c.stage)
		if got.SpawnEvery != c.want.SpawnEvery || got.EnemyHP != c.want.EnemyHP || got.BossHP != c.want.BossHP {
			t.Fatalf("Make(%d) = %+v, want %+v", c.stage, got, c.want)
		}
		if d := got.Speed - c.want.Speed; d > 1e-9 || d < -1e-9 {
			t.Fatalf("Make(%d).Speed = %v, want %v", c.stage, got.Speed, c.want.Speed)
		}
	}
}

func TestScriptCurveMatchesBuiltin(t *testing.T) {
	curve, err := LoadScriptCurve(DefaultCurveScript)
	if err != nil {
		t.Fatalf("load curve: %v", err)
	}
	for stage := 1; stage <= 30; stage++ {
		got := curve.Level(stage)
		want := Make(stage)
		if got.SpawnEvery != want.SpawnEvery || got.EnemyHP != want.EnemyHP || got.BossHP != want.BossHP {
			t.Fatalf("stage %d: script %+v, builtin %+v", stage, got, want)
		}
	}
}

func TestScriptCurveClampsFloors(t *testing.T) {
	src := []byte("spawn_every := 1\nenemy_hp := 0\nspeed := -1.0\nboss_hp := 0\n")
	curve, err := NewScriptCurve("floors", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got := curve.Level(5)
	if got.SpawnEvery != MinSpawnEvery {
		t.Fatalf("spawn every = %d, want %d", got.SpawnEvery, MinSpawnEvery)
	}
	if got.EnemyHP < 1 || got.BossHP < 1 || got.Speed <= 0 {
		t.Fatalf("floors not applied: %+v", got)
	}
}

func TestScriptCurveFallsBackOnMissingOutput(t *testing.T) {
	curve, err := NewScriptCurve("partial", []byte("spawn_every := 40\n"))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got, want := curve.Level(4), Make(4); got != want {
		t.Fatalf("fallback = %+v, want %+v", got, want)
	}
}

func TestNewScriptCurveRejectsBadSource(t *testing.T) {
	if _, err := NewScriptCurve("broken", []byte("spawn_every := (")); err == nil {
		t.Fatalf("expected compile error")
	}
}
