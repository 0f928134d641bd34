package component

import "github.com/jakecoffman/cp"

type PowerUpKind string

const (
	PowerShield    PowerUpKind = "shield"
	PowerSpeed     PowerUpKind = "speed"
	PowerHeal      PowerUpKind = "heal"
	PowerWeapon    PowerUpKind = "weapon"
	PowerDrone     PowerUpKind = "drone"
	PowerHaste     PowerUpKind = "haste"
	PowerAura      PowerUpKind = "aura"
	PowerMirror    PowerUpKind = "mirror"
	PowerFamiliars PowerUpKind = "familiars"
)

var (
	BeneficialPool  = []PowerUpKind{PowerShield, PowerSpeed, PowerHeal, PowerWeapon, PowerDrone}
	DetrimentalPool = []PowerUpKind{PowerHaste}
	MythicPool      = []PowerUpKind{PowerAura, PowerMirror, PowerFamiliars}
)

func (k PowerUpKind) Mythic() bool {
	return k == PowerAura || k == PowerMirror || k == PowerFamiliars
}

func (k PowerUpKind) Detrimental() bool {
	return k == PowerHaste
}

type PowerUp struct {
	ID      uint64
	Pos     cp.Vector
	Kind    PowerUpKind
	Payload WeaponID
	Dead    bool
}

type XPOrb struct {
	ID   uint64
	Pos  cp.Vector
	Vel  cp.Vector
	Life int
}

// Drone orbits the player for the rest of the session.
type Drone struct {
	Phase float64
}

// Familiar orbits the player while the familiars buff lasts.
type Familiar struct {
	Phase float64
}
