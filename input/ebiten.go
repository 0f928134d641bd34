package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller feeds ebiten key, mouse and touch state into a Unifier.
type Poller struct {
	pressed  []ebiten.TouchID
	released []ebiten.TouchID
	active   []ebiten.TouchID

	cursorX, cursorY int
	cursorKnown      bool
}

func NewPoller() *Poller {
	return &Poller{}
}

var keyBindings = map[Key][]ebiten.Key{
	KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	KeyFire:  {ebiten.KeySpace},
}

// Poll must run on the game loop goroutine, before the simulation step.
func (p *Poller) Poll(u *Unifier) {
	if u == nil {
		return
	}

	for k, bound := range keyBindings {
		down := false
		for _, key := range bound {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		u.SetKey(k, down)
	}

	cx, cy := ebiten.CursorPosition()
	if !p.cursorKnown || cx != p.cursorX || cy != p.cursorY {
		if p.cursorKnown {
			u.MouseMove(float64(cx), float64(cy))
		}
		p.cursorX, p.cursorY = cx, cy
		p.cursorKnown = true
	}
	u.MouseButton(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		u.MouseMove(float64(cx), float64(cy))
	}

	p.released = inpututil.AppendJustReleasedTouchIDs(p.released[:0])
	for _, id := range p.released {
		u.TouchEnd(int(id))
	}

	p.pressed = inpututil.AppendJustPressedTouchIDs(p.pressed[:0])
	for _, id := range p.pressed {
		x, y := ebiten.TouchPosition(id)
		u.TouchStart(int(id), float64(x), float64(y))
	}

	p.active = ebiten.AppendTouchIDs(p.active[:0])
	for _, id := range p.active {
		x, y := ebiten.TouchPosition(id)
		u.TouchMove(int(id), float64(x), float64(y))
	}
}
