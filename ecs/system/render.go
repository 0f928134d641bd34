package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
)

// Labels are the translated HUD strings. Language never reaches the
// simulation; only the renderer and the host menus read these.
type Labels struct {
	Score    string
	Stage    string
	Boss     string
	Weapon   string
	Level    string
	Paused   string
	GameOver string
	Restart  string
	Help     []string
}

// DefaultLabels are the English HUD strings.
func DefaultLabels() Labels {
	return Labels{
		Score:    "Score",
		Stage:    "Stage",
		Boss:     "BOSS",
		Weapon:   "Weapon",
		Level:    "Lv",
		Paused:   "Paused",
		GameOver: "Game over",
		Restart:  "Enter to restart",
		Help: []string{
			"WASD / arrows: swim",
			"Mouse or Space: fire",
			"Touch: left stick moves, right stick aims",
			"P pause  M mute  L language",
		},
	}
}

const backdropBands = 16

// Renderer draws a snapshot with vector shapes. It never sees the world.
type Renderer struct {
	Labels Labels
	Debug  bool
}

func NewRenderer() *Renderer {
	return &Renderer{Labels: DefaultLabels()}
}

func (r *Renderer) Draw(screen *ebiten.Image, s ecs.Snapshot) {
	if r == nil || screen == nil {
		return
	}

	ox, oy := shakeOffset(s.HUD.Shake, s.Frame)

	r.drawBackdrop(screen, s)
	r.drawPowerUps(screen, s, ox, oy)
	r.drawOrbs(screen, s, ox, oy)
	r.drawEnemies(screen, s, ox, oy)
	r.drawBoss(screen, s, ox, oy)
	r.drawBullets(screen, s, ox, oy)
	r.drawPlayer(screen, s, ox, oy)
	r.drawSparks(screen, s, ox, oy)
	r.drawHUD(screen, s)

	if s.HUD.HitFlash > 0 {
		a := uint8(min(120, s.HUD.HitFlash*6))
		vector.DrawFilledRect(screen, 0, 0, float32(s.Width), float32(s.Height), color.RGBA{R: 0xb9, G: 0x1c, B: 0x1c, A: a}, false)
	}
}

func shakeOffset(shake float64, frame int) (float32, float32) {
	if shake <= 0 {
		return 0, 0
	}
	f := float64(frame)
	return float32(math.Sin(f*1.7) * shake * 0.3), float32(math.Cos(f*2.3) * shake * 0.3)
}

func (r *Renderer) drawBackdrop(screen *ebiten.Image, s ecs.Snapshot) {
	band := float32(s.Height) / backdropBands
	for i := range backdropBands {
		t := float64(i) / (backdropBands - 1)
		c := color.RGBA{
			R: lerp8(backdropTop.R, backdropFloor.R, t),
			G: lerp8(backdropTop.G, backdropFloor.G, t),
			B: lerp8(backdropTop.B, backdropFloor.B, t),
			A: 0xff,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*band, float32(s.Width), band+1, c, false)
	}
	for _, b := range s.Bubbles {
		vector.StrokeCircle(screen, float32(b.X), float32(b.Y), float32(b.R), 1, bubbleColor, true)
	}
}

func (r *Renderer) drawPowerUps(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	for _, p := range s.PowerUps {
		c := powerUpColor(p.Kind)
		x, y := float32(p.Pos.X)+ox, float32(p.Pos.Y)+oy
		vector.StrokeRect(screen, x-14, y-14, 28, 28, 2, c, true)
		vector.DrawFilledCircle(screen, x, y, 6, c, true)
	}
}

func (r *Renderer) drawOrbs(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	for _, o := range s.Orbs {
		vector.DrawFilledCircle(screen, float32(o.Pos.X)+ox, float32(o.Pos.Y)+oy, 3, orbColor, true)
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	for _, e := range s.Enemies {
		x, y := float32(e.Pos.X)+ox, float32(e.Pos.Y)+oy
		w, h := float32(e.W), float32(e.H)

		switch e.Shot {
		case component.ShotAimed, component.ShotSpit:
			vector.DrawFilledCircle(screen, x, y, w/2, shotColor, true)
			continue
		case component.ShotSpear:
			vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, spearColor, true)
			continue
		case component.ShotRing:
			vector.StrokeCircle(screen, x, y, w/2, 2, bossColor, true)
			continue
		case component.ShotFlame:
			vector.DrawFilledCircle(screen, x, y, w/2, flameColor, true)
			continue
		}

		c := enemyColor(e.Kind)
		switch e.Kind {
		case component.Jelly:
			vector.DrawFilledCircle(screen, x, y-h*0.1, w/2, c, true)
			for i := -2; i <= 2; i++ {
				tx := x + float32(i)*6
				vector.StrokeLine(screen, tx, y+h*0.2, tx, y+h/2, 2, c, true)
			}
		case component.Squid:
			vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h*0.6, c, true)
			vector.StrokeLine(screen, x-w/3, y+h*0.1, x-w/3, y+h/2, 3, c, true)
			vector.StrokeLine(screen, x+w/3, y+h*0.1, x+w/3, y+h/2, 3, c, true)
		case component.Manta:
			vector.DrawFilledRect(screen, x-w/2, y-h/4, w, h/2, c, true)
			vector.DrawFilledCircle(screen, x-w/3, y, h/3, c, true)
		case component.Nautilus:
			vector.DrawFilledCircle(screen, x, y, w/2, c, true)
			vector.StrokeCircle(screen, x, y, w/4, 2, color.RGBA{A: 0x80}, true)
		case component.Puffer:
			scale := float32(e.Scale)
			if scale <= 0 {
				scale = 1
			}
			vector.DrawFilledCircle(screen, x, y, w/2*scale, c, true)
		case component.Crab:
			vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, true)
			vector.StrokeLine(screen, x-w/2, y, x-w/2-8, y-8, 3, c, true)
			vector.StrokeLine(screen, x+w/2, y, x+w/2+8, y-8, 3, c, true)
		}
	}
}

func (r *Renderer) drawBoss(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	b := s.Boss
	if b == nil {
		return
	}
	x, y := float32(b.Pos.X)+ox, float32(b.Pos.Y)+oy
	w, h := float32(b.W), float32(b.H)
	glow := color.RGBA{R: bossColor.R, G: bossColor.G, B: bossColor.B, A: uint8(80 * b.Aura)}
	vector.DrawFilledCircle(screen, x, y, w/2+12*float32(b.Aura), glow, true)
	vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, bossColor, true)
	vector.DrawFilledCircle(screen, x-w/4, y-h/6, 8, color.RGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0xff}, true)
}

func (r *Renderer) drawBullets(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	for _, b := range s.Bullets {
		c := weaponColor(b.Weapon)
		x, y := float32(b.Pos.X)+ox, float32(b.Pos.Y)+oy
		if b.Orbit || b.Weapon == component.Nova {
			vector.DrawFilledCircle(screen, x, y, float32(b.W)/2, c, true)
			continue
		}
		vector.DrawFilledRect(screen, x-float32(b.W)/2, y-float32(b.H)/2, float32(b.W), float32(b.H), c, true)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	p := s.Player
	x, y := float32(p.Pos.X)+ox, float32(p.Pos.Y)+oy
	rad := float32(p.Radius)

	if s.HUD.AuraActive {
		vector.DrawFilledCircle(screen, x, y, float32(s.AuraRadius), auraColor, true)
	}

	vector.DrawFilledCircle(screen, x, y, rad, hueColor(s.HUD.Hue), true)
	ax, ay := float32(math.Cos(s.Aim)), float32(math.Sin(s.Aim))
	vector.StrokeLine(screen, x, y, x+ax*(rad+10), y+ay*(rad+10), 3, color.White, true)

	if s.HUD.Shielded {
		pulse := float32(math.Sin(float64(s.Frame)*0.2) * 2)
		vector.StrokeCircle(screen, x, y, rad+10+pulse, 3, shieldColor, true)
	}
	if s.HUD.MirrorOn {
		vector.StrokeCircle(screen, x, float32(s.Height-p.Pos.Y)+oy, rad*0.8, 2, hueColor(s.HUD.Hue), true)
	}

	for _, d := range s.Drones {
		dx, dy := float32(math.Cos(d.Phase)*28), float32(math.Sin(d.Phase)*28)
		vector.DrawFilledCircle(screen, x+dx, y+dy, 5, weaponColor(component.Blaster), true)
	}
	for _, f := range s.Familiars {
		fx, fy := float32(math.Cos(f.Phase)*46), float32(math.Sin(f.Phase)*46)
		vector.DrawFilledCircle(screen, x+fx, y+fy, 6, auraColor, true)
		vector.StrokeCircle(screen, x+fx, y+fy, 6, 1, pickupColor, true)
	}
}

func (r *Renderer) drawSparks(screen *ebiten.Image, s ecs.Snapshot, ox, oy float32) {
	for _, sp := range s.Sparks {
		c := sp.Color
		c.A = uint8(min(255, sp.Life*10))
		vector.DrawFilledRect(screen, float32(sp.Pos.X)+ox, float32(sp.Pos.Y)+oy, float32(sp.W), float32(sp.H), c, false)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s ecs.Snapshot) {
	h := s.HUD
	l := r.Labels

	line := fmt.Sprintf("%s %d   %s %d   %s %s   %s %d", l.Score, h.Score, l.Stage, h.Stage, l.Weapon, h.Weapon, l.Level, h.Level)
	ebitenutil.DebugPrintAt(screen, line, 12, 10)

	for i := range h.MaxLives {
		c := color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
		if i < h.Lives {
			c = color.RGBA{R: 0xf4, G: 0x3f, B: 0x5e, A: 0xff}
		}
		vector.DrawFilledCircle(screen, float32(18+i*18), 36, 6, c, true)
	}

	barW := float32(s.Width - 24)
	vector.DrawFilledRect(screen, 12, 48, barW, 6, color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xc0}, false)
	vector.DrawFilledRect(screen, 12, 48, barW*float32(max(0, min(1, h.XPFraction))), 6, hueColor(h.Hue), false)

	if h.BossActive {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", l.Boss, h.BossHP), int(s.Width)-96, 10)
	}

	if h.ShowHelp && !h.GameOver {
		for i, text := range l.Help {
			ebitenutil.DebugPrintAt(screen, text, 12, int(s.Height)-20-16*(len(l.Help)-i))
		}
	}

	if r.Debug {
		dbg := fmt.Sprintf("FPS %.1f  bullets %d  enemies %d  sparks %d", ebiten.ActualFPS(), len(s.Bullets), len(s.Enemies), len(s.Sparks))
		ebitenutil.DebugPrintAt(screen, dbg, 12, 60)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
