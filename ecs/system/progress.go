package system

import "github.com/milk9111/eliko/ecs"

// ProgressSystem reports XP state to the host once per simulated frame.
type ProgressSystem struct {
	report ecs.ProgressFunc
}

func NewProgressSystem(report ecs.ProgressFunc) *ProgressSystem {
	return &ProgressSystem{report: report}
}

func (s *ProgressSystem) Update(w *ecs.World) {
	if s.report == nil {
		return
	}
	p := w.Progress
	s.report(p.XP, p.XPToNext, p.Level, w.LevelUps > 0)
}
