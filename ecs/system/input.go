package system

import (
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/input"
)

// InputSystem samples the control source into the world. With no source
// the world keeps whatever controls were set on it.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s.source == nil {
		return
	}
	w.Controls = s.source.Frame(w.Player.Pos.X, w.Player.Pos.Y)
}
