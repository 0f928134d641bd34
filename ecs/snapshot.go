package ecs

import "github.com/milk9111/eliko/ecs/component"

// HUD holds the scalar readouts drawn over the playfield.
type HUD struct {
	Score      int
	Stage      int
	BossActive bool
	BossHP     int
	Weapon     component.WeaponID
	Lives      int
	MaxLives   int
	XPFraction float64
	Level      int
	Paused     bool
	GameOver   bool
	Kills      int
	Boosts     int
	Hue        float64

	Shake       float64
	HitFlash    float64
	Bounce      float64
	HasteActive bool
	RapidActive bool
	Shielded    bool
	AuraActive  bool
	MirrorOn    bool
	ShowHelp    bool
}

// Snapshot is a read-only copy of everything the renderer needs. Mutating it
// never touches the world.
type Snapshot struct {
	Width, Height float64
	Frame         int
	Aim           float64
	AuraRadius    float64

	Player    component.Player
	Bullets   []component.Bullet
	Enemies   []component.Enemy
	Boss      *component.Boss
	PowerUps  []component.PowerUp
	Sparks    []component.Spark
	Orbs      []component.XPOrb
	Bubbles   []component.Bubble
	Drones    []component.Drone
	Familiars []component.Familiar

	HUD HUD
}

const helpFrames = 600

func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Width:      w.Width,
		Height:     w.Height,
		Frame:      w.Frame,
		Aim:        w.Aim,
		AuraRadius: w.Tuning.Companions.AuraRadius,

		Player:    w.Player,
		Bullets:   append([]component.Bullet(nil), w.Bullets...),
		Enemies:   append([]component.Enemy(nil), w.Enemies...),
		PowerUps:  append([]component.PowerUp(nil), w.PowerUps...),
		Sparks:    append([]component.Spark(nil), w.Sparks...),
		Orbs:      append([]component.XPOrb(nil), w.Orbs...),
		Bubbles:   append([]component.Bubble(nil), w.Bubbles...),
		Drones:    append([]component.Drone(nil), w.Drones...),
		Familiars: append([]component.Familiar(nil), w.Familiars...),
	}
	if w.Boss != nil {
		b := *w.Boss
		s.Boss = &b
	}

	xpFrac := 0.0
	if w.Progress.XPToNext > 0 {
		xpFrac = w.Progress.XP / w.Progress.XPToNext
	}

	s.HUD = HUD{
		Score:      w.Progress.Score,
		Stage:      w.Stage,
		BossActive: w.Boss != nil,
		Weapon:     w.Player.Weapon,
		Lives:      w.Player.HP,
		MaxLives:   w.Tuning.Player.MaxLives,
		XPFraction: xpFrac,
		Level:      w.Progress.Level,
		Paused:     w.State == Paused,
		GameOver:   w.State == GameOver,
		Kills:      w.Progress.Kills,
		Boosts:     w.Progress.Boosts,
		Hue:        w.Progress.Hue,

		Shake:       w.Timers.Shake,
		HitFlash:    w.Timers.HitFlash,
		Bounce:      w.Timers.Bounce,
		HasteActive: w.HasteActive(),
		RapidActive: w.RapidActive(),
		Shielded:    w.Player.ShieldMs > 0,
		AuraActive:  w.Timers.AuraMs > 0,
		MirrorOn:    w.Timers.MirrorMs > 0,
		ShowHelp:    w.Frame < helpFrames,
	}
	if w.Boss != nil {
		s.HUD.BossHP = w.Boss.HP
	}
	return s
}
