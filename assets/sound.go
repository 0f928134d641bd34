package assets

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/eliko/ecs"
)

const masterVolume = 0.9

// Synth plays the cue voices through ebiten's audio context. Clips are
// rendered once up front; each cue gets a fresh player so voices overlap.
type Synth struct {
	ctx   *audio.Context
	clips map[ecs.Cue][]byte

	mu       sync.Mutex
	muted    bool
	warnOnce sync.Once
}

// NewSynth renders every voice and attaches to the running audio context,
// creating one if none exists yet.
func NewSynth() *Synth {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	clips := make(map[ecs.Cue][]byte, len(Voices))
	for cue, v := range Voices {
		clips[cue] = Render(v, ctx.SampleRate())
	}
	return &Synth{ctx: ctx, clips: clips}
}

func (s *Synth) Play(c ecs.Cue) {
	if s == nil || s.Muted() {
		return
	}
	if !s.ctx.IsReady() {
		s.warnOnce.Do(func() { log.Println("audio: device not ready, cues are dropped until it is") })
		return
	}
	clip, ok := s.clips[c]
	if !ok {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.SetVolume(masterVolume)
	p.Play()
}

func (s *Synth) Mute(muted bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.muted = muted
	s.mu.Unlock()
}

func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

var _ ecs.SoundSink = (*Synth)(nil)
