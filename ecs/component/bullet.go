package component

// Bullet is a player-side projectile. Orbiting bullets circle the player
// instead of travelling and expire when Life runs out.
type Bullet struct {
	Body
	Weapon WeaponID
	Pierce int
	Damage int

	Orbit       bool
	Phase       float64
	Spin        float64
	OrbitRadius float64
	Life        int
}
