package ecs

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
	"github.com/milk9111/eliko/input"
	"github.com/milk9111/eliko/levels"
	"github.com/milk9111/eliko/prefabs"
)

type State int

const (
	Running State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// World is the whole simulation state for one session. Systems receive it
// by pointer and run strictly one after another.
type World struct {
	Tuning *prefabs.Tuning
	Curve  levels.Curve
	Rand   *rand.Rand
	Seed   int64

	Width, Height float64

	State State
	Frame int
	// DT is the elapsed time of this frame in nominal 60 Hz frames.
	DT float64
	// TS is the enemy timescale, above 1 while haste is active.
	TS float64

	Stage  int
	Level  levels.LevelState
	Spawns int

	Player      component.Player
	WeaponLevel int
	LastFire    int
	Timers      component.Timers
	Progress    component.Progress
	LevelUps    int

	Controls input.Frame
	Aim      float64

	Bullets   []component.Bullet
	Enemies   []component.Enemy
	Boss      *component.Boss
	PowerUps  []component.PowerUp
	Sparks    []component.Spark
	Orbs      []component.XPOrb
	Bubbles   []component.Bubble
	Drones    []component.Drone
	Familiars []component.Familiar

	cues CueQueue
}

// NewWorld starts a session at stage with a deterministic random source.
// A nil curve uses the builtin difficulty curve.
func NewWorld(t *prefabs.Tuning, curve levels.Curve, stage int, seed int64) *World {
	if t == nil {
		t = prefabs.DefaultTuning()
	}
	if curve == nil {
		curve = levels.Builtin
	}
	if stage < 1 {
		stage = 1
	}
	w := &World{
		Tuning: t,
		Curve:  curve,
		Seed:   seed,
		Width:  t.World.Width,
		Height: t.World.Height,
		Stage:  stage,
	}
	w.reset()
	return w
}

// Restart rebuilds the session at the current stage with the session seed.
func (w *World) Restart() {
	w.reset()
}

func (w *World) reset() {
	t := w.Tuning

	w.Rand = rand.New(rand.NewSource(w.Seed))
	w.State = Running
	w.Frame = 0
	w.DT = 1
	w.TS = 1

	w.Level = w.Curve.Level(w.Stage)
	w.Spawns = 0

	w.Player = entity.NewPlayer(t.Player)
	w.WeaponLevel = 0
	w.Player.Weapon = component.TierWeapon(0)
	w.LastFire = 0
	w.Timers = component.Timers{}
	w.Progress = component.Progress{
		XPToNext:    t.Progression.XPStart,
		Level:       1,
		Hue:         t.Progression.HueStart,
		KillsNeeded: t.Progression.KillsNeeded,
	}
	w.LevelUps = 0

	w.Controls = input.Frame{}
	w.Aim = 0

	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Boss = nil
	w.PowerUps = w.PowerUps[:0]
	w.Sparks = w.Sparks[:0]
	w.Orbs = w.Orbs[:0]
	w.Drones = nil
	w.Familiars = nil
	w.Bubbles = entity.Bubbles(w.Rand, t.Particles.Bubbles, w.Width, w.Height)

	w.cues.flush()
}

// BeginFrame converts wall time into nominal frames and advances the frame
// counter. Bad or negative deltas count as one frame.
func (w *World) BeginFrame(elapsedMs float64) {
	units := elapsedMs / common.NominalFrameMs
	if math.IsNaN(units) || math.IsInf(units, 0) || units < 0 {
		units = 1
	}
	if limit := w.Tuning.World.MaxFrameUnits; limit > 0 && units > limit {
		units = limit
	}
	w.DT = units
	w.Frame++
	w.LevelUps = 0

	w.TS = 1
	if w.HasteActive() && w.Tuning.Haste.Detrimental && w.Tuning.Haste.TimeScale > 0 {
		w.TS = w.Tuning.Haste.TimeScale
	}
}

func (w *World) TogglePause() {
	switch w.State {
	case Running:
		w.State = Paused
	case Paused:
		w.State = Running
	}
}

// EndGame enters the terminal state. It reports false if the game was
// already over.
func (w *World) EndGame() bool {
	if w.State == GameOver {
		return false
	}
	w.State = GameOver
	return true
}

// Resize changes the logical bounds used from the next step on.
func (w *World) Resize(width, height float64) {
	if common.Finite(width, 0) > 0 {
		w.Width = width
	}
	if common.Finite(height, 0) > 0 {
		w.Height = height
	}
}

// SetTuning swaps the tuning of a running session.
func (w *World) SetTuning(t *prefabs.Tuning) {
	if t == nil {
		return
	}
	w.Tuning = t
}

// SetCurve swaps the difficulty curve and recomputes the current stage.
func (w *World) SetCurve(c levels.Curve) {
	if c == nil {
		return
	}
	w.Curve = c
	w.Level = c.Level(w.Stage)
}

// AdvanceStage moves to the next stage and regenerates the level.
func (w *World) AdvanceStage() {
	w.Stage++
	w.Level = w.Curve.Level(w.Stage)
}

func (w *World) HasteActive() bool { return w.Timers.HasteMs > 0 }

func (w *World) RapidActive() bool { return w.Timers.RapidMs > 0 }

func (w *World) BossActive() bool { return w.Boss != nil }

// Bound is the padded rectangle live entities must stay inside.
func (w *World) Bound() cp.BB {
	m := w.Tuning.World.CullMargin
	return cp.BB{L: -m, B: -m, R: w.Width + m, T: w.Height + m}
}

func (w *World) InBound(p cp.Vector) bool {
	return w.Bound().ContainsVect(p)
}

// Emit queues a sound cue for the end of the frame.
func (w *World) Emit(c Cue) {
	w.cues.Push(c)
}

func (w *World) DrainCues() []Cue {
	return w.cues.Drain()
}

func (w *World) PendingCues() int {
	return w.cues.Len()
}

// Burst adds n decorative sparks at p.
func (w *World) Burst(p cp.Vector, c color.RGBA, n int) {
	w.Sparks = append(w.Sparks, entity.Burst(w.Rand, p, c, n)...)
}

// Sweep drops every record flagged dead or outside the bound.
func (w *World) Sweep() {
	bound := w.Bound()
	w.Bullets = Compact(w.Bullets, func(b *component.Bullet) bool {
		return !b.Dead && bound.ContainsVect(b.Pos)
	})
	w.Enemies = Compact(w.Enemies, func(e *component.Enemy) bool {
		return !e.Dead && bound.ContainsVect(e.Pos)
	})
	w.PowerUps = Compact(w.PowerUps, func(p *component.PowerUp) bool {
		return !p.Dead && bound.ContainsVect(p.Pos)
	})
	if w.Boss != nil && w.Boss.Dead {
		w.Boss = nil
	}
}

// Compact filters s in place, keeping the order of survivors.
func Compact[T any](s []T, keep func(*T) bool) []T {
	n := 0
	for i := range s {
		if keep(&s[i]) {
			if n != i {
				s[n] = s[i]
			}
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}
