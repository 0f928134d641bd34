package input

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Key is a digital control understood by the unifier.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	keyCount
)

// Config holds the virtual joystick and pointer tuning.
type Config struct {
	// Split is the fraction of the surface width that belongs to the move zone.
	Split         float64
	MoveRadius    float64
	MoveDeadzone  float64
	AimRadius     float64
	AimDeadzone   float64
	FireThreshold float64
	// MouseIdleFrames is how long a cursor that stopped moving keeps steering the aim.
	MouseIdleFrames int
}

// DefaultConfig matches the shipped tuning file.
func DefaultConfig() Config {
	return Config{
		Split:           0.5,
		MoveRadius:      110,
		MoveDeadzone:    12,
		AimRadius:       120,
		AimDeadzone:     8,
		FireThreshold:   0.2,
		MouseIdleFrames: 90,
	}
}

// Frame is the merged control signal for one simulation step.
type Frame struct {
	MoveX, MoveY float64
	// Aim is only meaningful when AimSet is true.
	Aim       float64
	AimSet    bool
	Firing    bool
	TouchMove bool
}

// Source yields the control signal for a player at (px, py).
type Source interface {
	Frame(px, py float64) Frame
}

// Unifier merges keyboard, mouse and dual touch sticks into one Frame.
// Event methods only store scalars; Frame does all the combining.
type Unifier struct {
	cfg   Config
	width float64

	keys [keyCount]bool

	mouseX, mouseY float64
	mouseSeen      bool
	mouseIdle      int
	mouseDown      bool

	move stick
	aim  stick
}

func NewUnifier(cfg Config, width float64) *Unifier {
	return &Unifier{cfg: cfg, width: width, mouseIdle: math.MaxInt32}
}

// SetConfig swaps the tuning without dropping held touches.
func (u *Unifier) SetConfig(cfg Config) {
	u.cfg = cfg
}

func (u *Unifier) Resize(width float64) {
	if finite(width) && width > 0 {
		u.width = width
	}
}

func (u *Unifier) SetKey(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	u.keys[k] = down
}

func (u *Unifier) MouseMove(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	u.mouseX, u.mouseY = x, y
	u.mouseSeen = true
	u.mouseIdle = 0
}

func (u *Unifier) MouseButton(down bool) {
	u.mouseDown = down
}

// TouchStart assigns the touch to the zone it lands in, if that zone is free.
func (u *Unifier) TouchStart(id int, x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	if u.owns(id) {
		return
	}
	if x < u.width*u.cfg.Split {
		if !u.move.owned {
			u.move.grab(id, x, y)
		}
		return
	}
	if !u.aim.owned {
		u.aim.grab(id, x, y)
	}
}

func (u *Unifier) TouchMove(id int, x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	switch {
	case u.move.owned && u.move.owner == id:
		u.move.drag(x, y, u.cfg.MoveDeadzone, u.cfg.MoveRadius)
	case u.aim.owned && u.aim.owner == id:
		u.aim.drag(x, y, u.cfg.AimDeadzone, u.cfg.AimRadius)
	}
}

// TouchEnd zeroes and frees whichever zone the touch owned.
func (u *Unifier) TouchEnd(id int) {
	if u.move.owned && u.move.owner == id {
		u.move.release()
	}
	if u.aim.owned && u.aim.owner == id {
		u.aim.release()
	}
}

func (u *Unifier) owns(id int) bool {
	return (u.move.owned && u.move.owner == id) || (u.aim.owned && u.aim.owner == id)
}

// MoveStickActive reports whether a touch currently owns the move zone.
func (u *Unifier) MoveStickActive() bool { return u.move.owned }

// AimStickActive reports whether a touch currently owns the aim zone.
func (u *Unifier) AimStickActive() bool { return u.aim.owned }

// Frame resolves the control signal. It is called once per simulated step
// and ages the mouse idle counter.
func (u *Unifier) Frame(px, py float64) Frame {
	var f Frame

	if u.move.owned {
		f.TouchMove = true
		f.MoveX, f.MoveY = u.move.out.X, u.move.out.Y
	} else {
		f.MoveX, f.MoveY = u.keyAxes()
	}

	f.Firing = u.keys[KeyFire] || u.mouseDown

	switch {
	case u.aim.owned && u.aim.mag > 0:
		f.Aim = u.aim.out.ToAngle()
		f.AimSet = true
		if u.aim.mag > u.cfg.FireThreshold {
			f.Firing = true
		}
	case u.mouseSeen && (u.mouseDown || u.mouseIdle < u.cfg.MouseIdleFrames):
		dx, dy := u.mouseX-px, u.mouseY-py
		if dx != 0 || dy != 0 {
			f.Aim = math.Atan2(dy, dx)
			f.AimSet = true
		}
	}

	if u.mouseIdle < math.MaxInt32 {
		u.mouseIdle++
	}
	return f
}

func (u *Unifier) keyAxes() (float64, float64) {
	var v cp.Vector
	if u.keys[KeyLeft] {
		v.X--
	}
	if u.keys[KeyRight] {
		v.X++
	}
	if u.keys[KeyUp] {
		v.Y--
	}
	if u.keys[KeyDown] {
		v.Y++
	}
	if v.X == 0 && v.Y == 0 {
		return 0, 0
	}
	v = v.Normalize()
	return v.X, v.Y
}
