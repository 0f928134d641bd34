package component

// WeaponID names a weapon and its fire pattern.
type WeaponID string

const (
	Blaster  WeaponID = "blaster"
	Spread   WeaponID = "spread"
	Piercer  WeaponID = "piercer"
	Laser    WeaponID = "laser"
	Rail     WeaponID = "rail"
	Orbitals WeaponID = "orbitals"
	Nova     WeaponID = "nova"
)

// WeaponTier is the upgrade order. A weapon level indexes into it.
var WeaponTier = [...]WeaponID{Blaster, Spread, Piercer, Laser, Rail, Orbitals, Nova}

// MaxWeaponLevel is the last valid index into WeaponTier.
const MaxWeaponLevel = len(WeaponTier) - 1

// TierWeapon returns the weapon for a level, clamped to the tier.
func TierWeapon(level int) WeaponID {
	if level < 0 {
		level = 0
	}
	return WeaponTier[min(level, MaxWeaponLevel)]
}

// TierIndex returns the level of a weapon, or -1 if it is not in the tier.
func TierIndex(id WeaponID) int {
	for i, w := range WeaponTier {
		if w == id {
			return i
		}
	}
	return -1
}
