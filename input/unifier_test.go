package input

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStickVector(t *testing.T) {
	cases := []struct {
		name     string
		dx, dy   float64
		wantMag  float64
		wantX    float64
		wantY    float64
		deadzone float64
		radius   float64
	}{
		{name: "inside deadzone", dx: 5, dy: 0, deadzone: 12, radius: 110},
		{name: "half way", dx: 61, dy: 0, deadzone: 12, radius: 110, wantMag: 0.5, wantX: 0.5},
		{name: "beyond radius clamps", dx: 0, dy: -400, deadzone: 12, radius: 110, wantMag: 1, wantY: -1},
		{name: "non finite", dx: math.NaN(), dy: 1, deadzone: 12, radius: 110},
		{name: "degenerate radius", dx: 20, dy: 0, deadzone: 12, radius: 12, wantMag: 1, wantX: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, mag := StickVector(c.dx, c.dy, c.deadzone, c.radius)
			if !near(mag, c.wantMag) || !near(v.X, c.wantX) || !near(v.Y, c.wantY) {
				t.Fatalf("got (%v, %v) mag %v, want (%v, %v) mag %v", v.X, v.Y, mag, c.wantX, c.wantY, c.wantMag)
			}
		})
	}
}

func TestKeyboardAxesAreNormalized(t *testing.T) {
	u := NewUnifier(DefaultConfig(), 760)
	u.SetKey(KeyRight, true)
	u.SetKey(KeyDown, true)

	f := u.Frame(0, 0)
	if got := math.Hypot(f.MoveX, f.MoveY); !near(got, 1) {
		t.Fatalf("diagonal length = %v, want 1", got)
	}
	if f.MoveX <= 0 || f.MoveY <= 0 {
		t.Fatalf("diagonal direction = (%v, %v)", f.MoveX, f.MoveY)
	}

	u.SetKey(KeyLeft, true)
	f = u.Frame(0, 0)
	if f.MoveX != 0 || !near(f.MoveY, 1) {
		t.Fatalf("opposed keys = (%v, %v), want (0, 1)", f.MoveX, f.MoveY)
	}
}

func TestFireLatch(t *testing.T) {
	u := NewUnifier(DefaultConfig(), 760)
	u.SetKey(KeyFire, true)
	if !u.Frame(0, 0).Firing {
		t.Fatalf("fire key held but not firing")
	}
	u.SetKey(KeyFire, false)
	if u.Frame(0, 0).Firing {
		t.Fatalf("fire key released but still firing")
	}
}

func TestTouchMoveOverridesKeyboard(t *testing.T) {
	u := NewUnifier(DefaultConfig(), 760)
	u.SetKey(KeyUp, true)

	u.TouchStart(1, 100, 500)
	u.TouchMove(1, 100+110, 500)

	f := u.Frame(0, 0)
	if !f.TouchMove {
		t.Fatalf("touch move not reported")
	}
	if !near(f.MoveX, 1) || f.MoveY != 0 {
		t.Fatalf("move = (%v, %v), want (1, 0)", f.MoveX, f.MoveY)
	}

	u.TouchEnd(1)
	f = u.Frame(0, 0)
	if f.TouchMove || !near(f.MoveY, -1) {
		t.Fatalf("after release move = (%v, %v) touch=%v, want keyboard up", f.MoveX, f.MoveY, f.TouchMove)
	}
}

func TestOneTouchPerZone(t *testing.T) {
	u := NewUnifier(DefaultConfig(), 760)
	u.TouchStart(1, 100, 500)
	u.TouchStart(2, 120, 500)
	u.TouchMove(2, 400, 500)

	if f := u.Frame(0, 0); f.MoveX != 0 {
		t.Fatalf("second touch in owned zone moved the stick: %v", f.MoveX)
	}

	u.TouchEnd(1)
	u.TouchStart(2, 120, 500)
	u.TouchMove(2, 120, 500-200)
	if f := u.Frame(0, 0); !near(f.MoveY, -1) {
		t.Fatalf("freed zone not reusable: move y = %v", f.MoveY)
	}
}

func TestAimStickFiresPastThreshold(t *testing.T) {
	cfg := DefaultConfig()
	u := NewUnifier(cfg, 760)
	u.TouchStart(7, 600, 500)

	u.TouchMove(7, 600, 500+cfg.AimDeadzone+2)
	f := u.Frame(0, 0)
	if !f.AimSet || !near(f.Aim, math.Pi/2) {
		t.Fatalf("aim = %v set=%v, want pi/2", f.Aim, f.AimSet)
	}
	if f.Firing {
		t.Fatalf("tiny displacement fired")
	}

	u.TouchMove(7, 600-cfg.AimRadius, 500)
	f = u.Frame(0, 0)
	if !f.Firing || !near(math.Abs(f.Aim), math.Pi) {
		t.Fatalf("full deflection: firing=%v aim=%v", f.Firing, f.Aim)
	}

	u.TouchEnd(7)
	f = u.Frame(0, 0)
	if f.Firing || f.AimSet {
		t.Fatalf("released aim stick still active: %+v", f)
	}
}

func TestMouseAimRelativeToPlayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MouseIdleFrames = 3
	u := NewUnifier(cfg, 760)

	if f := u.Frame(100, 100); f.AimSet {
		t.Fatalf("aim set before any mouse input")
	}

	u.MouseMove(100, 200)
	f := u.Frame(100, 100)
	if !f.AimSet || !near(f.Aim, math.Pi/2) {
		t.Fatalf("aim = %v set=%v, want pi/2", f.Aim, f.AimSet)
	}

	u.Frame(100, 100)
	u.Frame(100, 100)
	if f := u.Frame(100, 100); f.AimSet {
		t.Fatalf("idle cursor still steering aim")
	}

	u.MouseButton(true)
	f = u.Frame(100, 100)
	if !f.AimSet || !f.Firing {
		t.Fatalf("held button: aim set=%v firing=%v", f.AimSet, f.Firing)
	}
}

func TestResizeMovesSplit(t *testing.T) {
	u := NewUnifier(DefaultConfig(), 760)
	u.Resize(200)
	u.TouchStart(3, 150, 10)
	if u.MoveStickActive() || !u.AimStickActive() {
		t.Fatalf("touch at 150 of 200 should own the aim zone")
	}
}
