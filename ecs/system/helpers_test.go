package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/component"
	"github.com/milk9111/eliko/ecs/entity"
	"github.com/milk9111/eliko/input"
	"github.com/milk9111/eliko/prefabs"
)

func newTestWorld() *ecs.World {
	return ecs.NewWorld(prefabs.DefaultTuning(), nil, 1, 1)
}

func enemyAt(w *ecs.World, kind component.EnemyKind, pos cp.Vector, hp int) component.Enemy {
	return entity.NewEnemy(kind, w.Tuning.Enemy(string(kind)), pos, 1, hp)
}

// fixedSource replays the same control frame every step.
type fixedSource struct {
	frame input.Frame
}

func (s fixedSource) Frame(float64, float64) input.Frame { return s.frame }

type recordingSink struct {
	played []ecs.Cue
	muted  bool
}

func (s *recordingSink) Play(c ecs.Cue)  { s.played = append(s.played, c) }
func (s *recordingSink) Mute(muted bool) { s.muted = muted }

func hasCue(cues []ecs.Cue, want ecs.Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}
