package assets

import (
	"encoding/binary"
	"math"

	"github.com/milk9111/eliko/ecs"
)

// SampleRate is the rate clips are rendered at and the audio context runs at.
const SampleRate = 44100

type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Triangle
)

// Voice is one short beep: a single oscillator under an attack/decay
// envelope.
type Voice struct {
	Freq float64
	// Dur is the decay length in seconds.
	Dur  float64
	Wave Wave
	Gain float64
}

var Voices = map[ecs.Cue]Voice{
	ecs.CueShoot:  {Freq: 880, Dur: 0.06, Wave: Square, Gain: 0.12},
	ecs.CueSpread: {Freq: 760, Dur: 0.06, Wave: Square, Gain: 0.12},
	ecs.CuePierce: {Freq: 640, Dur: 0.08, Wave: Saw, Gain: 0.12},
	ecs.CueLaser:  {Freq: 520, Dur: 0.10, Wave: Triangle, Gain: 0.14},
	ecs.CueRail:   {Freq: 440, Dur: 0.12, Wave: Saw, Gain: 0.18},
	ecs.CueNova:   {Freq: 300, Dur: 0.20, Wave: Sine, Gain: 0.25},
	ecs.CueBonus:  {Freq: 1200, Dur: 0.07, Wave: Triangle, Gain: 0.12},
	ecs.CueHit:    {Freq: 220, Dur: 0.09, Wave: Square, Gain: 0.16},
	ecs.CuePower:  {Freq: 1000, Dur: 0.10, Wave: Triangle, Gain: 0.18},
}

const (
	attackSec = 0.005
	tailSec   = 0.02
	// floorRatio is where the exponential decay ends relative to the peak.
	floorRatio = 0.0008
)

// Render produces 16-bit little-endian stereo PCM for v at rate.
func Render(v Voice, rate int) []byte {
	if rate <= 0 || v.Freq <= 0 {
		return nil
	}
	dur := max(0.01, v.Dur)
	total := int(max(0.02, dur+tailSec) * float64(rate))
	attack := int(attackSec * float64(rate))
	decay := max(1, int(dur*float64(rate))-attack)

	out := make([]byte, total*4)
	phase := 0.0
	inc := v.Freq / float64(rate)
	for i := range total {
		env := envelope(i, attack, decay)
		s := oscillate(v.Wave, phase) * env * v.Gain
		sample := int16(max(-1, min(1, s)) * math.MaxInt16)

		binary.LittleEndian.PutUint16(out[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sample))

		phase += inc
		if phase >= 1 {
			phase -= 1
		}
	}
	return out
}

func envelope(i, attack, decay int) float64 {
	if i < attack {
		return float64(i) / float64(attack)
	}
	t := float64(i-attack) / float64(decay)
	if t >= 1 {
		return 0
	}
	return math.Pow(floorRatio, t)
}

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Saw:
		return 2 * (phase - 0.5)
	case Triangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
