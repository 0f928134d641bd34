package ecs

// System runs one phase of the frame.
type System interface {
	Update(w *World)
}

// Scheduler runs its systems in order. It only steps while started.
type Scheduler struct {
	systems []System
	running bool
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Start() { s.running = true }

func (s *Scheduler) Stop() { s.running = false }

func (s *Scheduler) Running() bool { return s.running }

// Step advances the world by one frame of elapsedMs wall time. It reports
// whether the simulation ran; a stopped scheduler, a paused world and a
// finished game all leave the world untouched.
func (s *Scheduler) Step(w *World, elapsedMs float64) bool {
	if s == nil || w == nil || !s.running || w.State != Running {
		return false
	}
	w.BeginFrame(elapsedMs)
	s.Update(w)
	return true
}

// Update runs every system once without the frame bookkeeping.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
