package ecs

// Cue names a sound the host should play. The simulation never waits on it.
type Cue string

const (
	CueShoot  Cue = "shoot"
	CueSpread Cue = "spread"
	CuePierce Cue = "pierce"
	CueLaser  Cue = "laser"
	CueRail   Cue = "rail"
	CueNova   Cue = "nova"
	CueBonus  Cue = "bonus"
	CueHit    Cue = "hit"
	CuePower  Cue = "power"
)

var Cues = [...]Cue{CueShoot, CueSpread, CuePierce, CueLaser, CueRail, CueNova, CueBonus, CueHit, CuePower}

// SoundSink receives cues. Implementations must tolerate being called while
// muted or with no audio device.
type SoundSink interface {
	Play(c Cue)
	Mute(muted bool)
}

// NopSound discards every cue.
type NopSound struct{}

func (NopSound) Play(Cue)  {}
func (NopSound) Mute(bool) {}

// ProgressFunc receives the XP state once per simulated frame.
type ProgressFunc func(xp, xpToNext float64, level int, didLevelUp bool)

// CueQueue is a FIFO of cues raised during one frame.
type CueQueue struct {
	items []Cue
}

func (q *CueQueue) Push(c Cue) {
	if q == nil || c == "" {
		return
	}
	q.items = append(q.items, c)
}

// Drain returns all queued cues and clears the queue.
func (q *CueQueue) Drain() []Cue {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *CueQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *CueQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
