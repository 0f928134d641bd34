package system

import (
	"image/color"
	"math"

	"github.com/milk9111/eliko/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	bossColor     = color.RGBA{R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff}
	pickupColor   = color.RGBA{R: 0xfd, G: 0xe0, B: 0x47, A: 0xff}
	hasteColor    = color.RGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}
	deathColorA   = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	deathColorB   = bossColor
	orbColor      = pickupColor
	shotColor     = color.RGBA{R: 0xfb, G: 0x71, B: 0x85, A: 0xff}
	flameColor    = colornames.Orangered
	spearColor    = colornames.Lavender
	shieldColor   = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xe6}
	auraColor     = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0x40}
	backdropTop   = colornames.Deepskyblue
	backdropFloor = colornames.Midnightblue
	bubbleColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
)

func enemyColor(k component.EnemyKind) color.RGBA {
	switch k {
	case component.Jelly:
		return color.RGBA{R: 0x67, G: 0xe8, B: 0xf9, A: 0xff}
	case component.Squid:
		return color.RGBA{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff}
	case component.Manta:
		return color.RGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 0xff}
	case component.Nautilus:
		return color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	case component.Puffer:
		return color.RGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff}
	case component.Crab:
		return color.RGBA{R: 0xfc, G: 0xa5, B: 0xa5, A: 0xff}
	default:
		return colornames.White
	}
}

func weaponColor(id component.WeaponID) color.RGBA {
	switch id {
	case component.Spread:
		return color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	case component.Piercer, component.Laser:
		return bossColor
	case component.Rail:
		return color.RGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	case component.Orbitals:
		return color.RGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff}
	case component.Nova:
		return pickupColor
	default:
		return color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	}
}

func powerUpColor(k component.PowerUpKind) color.RGBA {
	switch {
	case k.Detrimental():
		return hasteColor
	case k.Mythic():
		return colornames.Gold
	case k == component.PowerShield:
		return deathColorA
	case k == component.PowerHeal:
		return colornames.Lightgreen
	default:
		return pickupColor
	}
}

// hueColor converts an avatar hue in degrees to a saturated colour.
func hueColor(hue float64) color.RGBA {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	x := 1 - math.Abs(math.Mod(h/60, 2)-1)
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = 1, x, 0
	case h < 120:
		r, g, b = x, 1, 0
	case h < 180:
		r, g, b = 0, 1, x
	case h < 240:
		r, g, b = 0, x, 1
	case h < 300:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	const lo, span = 0x30, 0xcf
	return color.RGBA{R: uint8(lo + r*span), G: uint8(lo + g*span), B: uint8(lo + b*span), A: 0xff}
}
