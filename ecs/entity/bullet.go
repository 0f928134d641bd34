package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs/component"
)

func NewBullet(weapon component.WeaponID, pos, vel cp.Vector, w, h float64) component.Bullet {
	return component.Bullet{
		Body: component.Body{
			ID:  common.NextID(),
			Pos: pos,
			Vel: vel,
			W:   w,
			H:   h,
		},
		Weapon: weapon,
		Damage: 1,
	}
}

// NewOrbital revolves around center at radius, starting at phase.
func NewOrbital(center cp.Vector, phase, spin, radius, size float64, life int) component.Bullet {
	b := NewBullet(component.Orbitals, center.Add(cp.ForAngle(phase).Mult(radius)), cp.Vector{}, size, size)
	b.Orbit = true
	b.Phase = phase
	b.Spin = spin
	b.OrbitRadius = radius
	b.Life = life
	return b
}

// CompanionShot is the small blaster round drones and familiars fire.
func CompanionShot(from cp.Vector, aim, speed float64) component.Bullet {
	dir := cp.ForAngle(aim)
	return NewBullet(component.Blaster, from, dir.Mult(speed), 7, 7)
}
