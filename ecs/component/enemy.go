package component

type EnemyKind string

const (
	Jelly    EnemyKind = "jelly"
	Squid    EnemyKind = "squid"
	Manta    EnemyKind = "manta"
	Nautilus EnemyKind = "nautilus"
	Puffer   EnemyKind = "puffer"
	Crab     EnemyKind = "crab"
)

var EnemyKinds = [...]EnemyKind{Jelly, Squid, Manta, Nautilus, Puffer, Crab}

// ShotKind tags an enemy record as a hostile projectile. ShotNone is a
// regular enemy body.
type ShotKind int

const (
	ShotNone ShotKind = iota
	ShotAimed
	ShotSpit
	ShotSpear
	ShotRing
	ShotFlame
)

type Enemy struct {
	Body
	Kind  EnemyKind
	Shot  ShotKind
	T     float64
	Heavy bool
	Scale float64
}

// IsBullet reports whether the record is a hostile projectile.
func (e *Enemy) IsBullet() bool {
	return e.Shot != ShotNone
}

// ContactDamage is what touching this record costs the player.
func (e *Enemy) ContactDamage() int {
	if e.Heavy {
		return 2
	}
	return 1
}
