package common

import (
	"math"
	"math/rand"
)

const (
	BaseWidth  = 760
	BaseHeight = 980

	// NominalFrameMs is the length of one simulated frame at 60 Hz.
	NominalFrameMs = 1000.0 / 60.0
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandRange returns a value in [a, b). A nil rng falls back to the global source.
func RandRange(rng *rand.Rand, a, b float64) float64 {
	if rng == nil {
		return a + rand.Float64()*(b-a)
	}
	return a + rng.Float64()*(b-a)
}

// Finite returns v, or fallback when v is NaN or infinite.
func Finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// WrapAngle maps an angle into (-pi, pi].
func WrapAngle(a float64) float64 {
	a = math.Remainder(Finite(a, 0), 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
