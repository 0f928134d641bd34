package entity

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/prefabs"
)

// Fire builds one volley of weapon for a player aiming at aim. It does not
// touch the player; callers append the result to the world.
//
// Every weapon fans its projectiles over spec.Angles around the aim. Orbitals
// instead start one revolving projectile per angle, alternating direction.
func Fire(weapon component.WeaponID, spec prefabs.WeaponSpec, p component.Player, aim float64) []component.Bullet {
	aim = common.Finite(aim, 0)
	angles := spec.Angles
	if len(angles) == 0 {
		angles = []float64{0}
	}

	out := make([]component.Bullet, 0, len(angles))
	switch weapon {
	case component.Orbitals:
		for i, a := range angles {
			spin := spec.Speed
			if i%2 == 1 {
				spin = -spin
			}
			b := NewOrbital(p.Pos, aim+a, spin, spec.Muzzle, spec.W, max(1, spec.Life))
			b.Pierce = spec.Pierce
			b.Damage = max(1, spec.Damage)
			out = append(out, b)
		}
	default:
		for _, a := range angles {
			dir := cp.ForAngle(aim + a)
			pos := p.Pos.Add(dir.Mult(spec.Muzzle))
			b := NewBullet(weapon, pos, dir.Mult(spec.Speed), spec.W, spec.H)
			b.Pierce = spec.Pierce
			b.Damage = max(1, spec.Damage)
			out = append(out, b)
		}
	}
	return out
}

// MirrorTwin returns the player reflected across the horizontal midline,
// along with the reflected aim.
func MirrorTwin(p component.Player, aim, height float64) (component.Player, float64) {
	twin := p
	twin.Pos.Y = height - p.Pos.Y
	return twin, -aim
}

// PickWeapon draws a weapon from a bag that widens with the stage.
func PickWeapon(rng *rand.Rand, stage int) component.WeaponID {
	bag := []component.WeaponID{component.Blaster, component.Blaster, component.Spread, component.Piercer}
	if stage >= 2 {
		bag = append(bag, component.Spread, component.Piercer)
	}
	if stage >= 3 {
		bag = append(bag, component.Laser)
	}
	if stage >= 4 {
		bag = append(bag, component.Rail)
	}
	if stage >= 5 {
		bag = append(bag, component.Orbitals)
	}
	if stage >= 6 {
		bag = append(bag, component.Nova)
	}
	return bag[rng.Intn(len(bag))]
}
