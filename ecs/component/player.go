package component

import "github.com/jakecoffman/cp"

type Player struct {
	Pos      cp.Vector
	Vel      cp.Vector
	MaxSpeed float64
	// Radius is the collision radius. BaseRadius is the eased value before
	// the damage squash is applied.
	Radius     float64
	BaseRadius float64
	HP         int
	ShieldMs   float64
	Weapon     WeaponID
}

// Box is the square the player collides with.
func (p *Player) Box() (x, y, w, h float64) {
	return p.Pos.X, p.Pos.Y, p.Radius * 2, p.Radius * 2
}

// Timers are the countdowns that decay every frame. Ms fields tick by
// elapsed wall time, the rest by frames.
type Timers struct {
	HasteMs    float64
	RapidMs    float64
	AuraMs     float64
	MirrorMs   float64
	FamiliarMs float64

	HitFlash float64
	Bounce   float64
	Shake    float64
}

type Progress struct {
	XP       float64
	XPToNext float64
	Level    int
	Hue      float64

	Kills           int
	KillStreak      int
	KillsSincePower int
	KillsNeeded     int
	Boosts          int
	Score           int
}
