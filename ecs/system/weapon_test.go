package system

import (
	"testing"

	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
)

func TestContinuousFireVolleyCount(t *testing.T) {
	cases := []struct {
		name   string
		level  int
		frames int
	}{
		{"blaster_100", 0, 100},
		{"blaster_7", 0, 7},
		{"spread_99", 1, 99},
		{"rail_340", 4, 340},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld()
			w.WeaponLevel = c.level
			w.Controls.Firing = true
			id := component.TierWeapon(c.level)
			spec := w.Tuning.Weapon(string(id))

			ws := NewWeaponSystem()
			for range c.frames {
				w.BeginFrame(common.NominalFrameMs)
				ws.Update(w)
			}

			volleys := c.frames / spec.Gap
			if got, want := len(w.Bullets), volleys*len(spec.Angles); got != want {
				t.Fatalf("bullets = %d, want %d (%d volleys)", got, want, volleys)
			}
		})
	}
}

func TestNoFireWithoutTrigger(t *testing.T) {
	w := newTestWorld()
	ws := NewWeaponSystem()
	for range 60 {
		w.BeginFrame(common.NominalFrameMs)
		ws.Update(w)
	}
	if len(w.Bullets) != 0 {
		t.Fatalf("bullets = %d, want 0", len(w.Bullets))
	}
}

func TestOrbitalsFireOnTheirOwn(t *testing.T) {
	w := newTestWorld()
	w.WeaponLevel = component.TierIndex(component.Orbitals)
	ws := NewWeaponSystem()
	for range 16 {
		w.BeginFrame(common.NominalFrameMs)
		ws.Update(w)
	}
	if len(w.Bullets) == 0 {
		t.Fatalf("orbitals should fire without the trigger")
	}
	for _, b := range w.Bullets {
		if !b.Orbit {
			t.Fatalf("orbital bullet not orbiting: %+v", b)
		}
	}
}

func TestWeaponLevelClamped(t *testing.T) {
	cases := []struct {
		level int
		want  component.WeaponID
	}{
		{-3, component.Blaster},
		{2, component.Piercer},
		{99, component.Nova},
	}
	for _, c := range cases {
		w := newTestWorld()
		w.WeaponLevel = c.level
		NewWeaponSystem().Update(w)
		if w.Player.Weapon != c.want {
			t.Fatalf("level %d: weapon = %s, want %s", c.level, w.Player.Weapon, c.want)
		}
		if w.WeaponLevel < 0 || w.WeaponLevel > component.MaxWeaponLevel {
			t.Fatalf("level %d not clamped: %d", c.level, w.WeaponLevel)
		}
	}
}

func TestEffectiveGap(t *testing.T) {
	w := newTestWorld()
	if got := EffectiveGap(w, 22); got != 22 {
		t.Fatalf("gap without rapid = %d, want 22", got)
	}
	w.Timers.RapidMs = 1000
	if got := EffectiveGap(w, 22); got != 14 {
		t.Fatalf("rapid gap = %d, want 14", got)
	}
	if got := EffectiveGap(w, 5); got != w.Tuning.Rapid.MinGap {
		t.Fatalf("rapid gap floor = %d, want %d", got, w.Tuning.Rapid.MinGap)
	}
}

func TestMirrorDoublesVolley(t *testing.T) {
	w := newTestWorld()
	w.Controls.Firing = true
	w.Timers.MirrorMs = 1000
	w.Frame = 100

	NewWeaponSystem().Update(w)

	if len(w.Bullets) != 2 {
		t.Fatalf("bullets = %d, want 2", len(w.Bullets))
	}
	wantY := w.Height - w.Player.Pos.Y
	if got := w.Bullets[1].Pos.Y; got < wantY-1 || got > wantY+1 {
		t.Fatalf("mirrored bullet y = %v, want about %v", got, wantY)
	}
}
