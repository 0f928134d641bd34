package system

import "github.com/milk9111/eliko/ecs"

// AudioSystem hands the frame's cues to the sink. A cue raised several times
// in one frame plays once.
type AudioSystem struct {
	sink ecs.SoundSink
	seen map[ecs.Cue]bool
}

func NewAudioSystem(sink ecs.SoundSink) *AudioSystem {
	if sink == nil {
		sink = ecs.NopSound{}
	}
	return &AudioSystem{sink: sink, seen: make(map[ecs.Cue]bool, len(ecs.Cues))}
}

func (a *AudioSystem) Update(w *ecs.World) {
	cues := w.DrainCues()
	if len(cues) == 0 {
		return
	}
	clear(a.seen)
	for _, c := range cues {
		if a.seen[c] {
			continue
		}
		a.seen[c] = true
		a.sink.Play(c)
	}
}
