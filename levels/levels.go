package levels

import "math"

const (
	// MinSpawnEvery is the hard floor for the spawn interval in frames.
	MinSpawnEvery = 12

	DefaultCurveScript = "curve.tengo"
)

// LevelState is the difficulty for one stage. It never changes once computed.
type LevelState struct {
	Stage      int
	SpawnEvery int
	EnemyHP    int
	Speed      float64
	BossHP     int
}

// Curve maps a stage number to its difficulty.
type Curve interface {
	Level(stage int) LevelState
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(stage int) LevelState

func (f CurveFunc) Level(stage int) LevelState { return f(stage) }

// Builtin is the compiled-in difficulty curve.
var Builtin Curve = CurveFunc(Make)

// Make scales values gently per stage.
func Make(stage int) LevelState {
	if stage < 1 {
		stage = 1
	}
	return normalize(LevelState{
		Stage:      stage,
		SpawnEvery: max(26, 70-stage*4),
		EnemyHP:    1 + stage/3,
		Speed:      2.2 + math.Min(3, float64(stage)*0.25),
		BossHP:     12 + stage*6,
	})
}

// normalize enforces the floors every curve must respect.
func normalize(l LevelState) LevelState {
	if l.Stage < 1 {
		l.Stage = 1
	}
	if l.SpawnEvery < MinSpawnEvery {
		l.SpawnEvery = MinSpawnEvery
	}
	if l.EnemyHP < 1 {
		l.EnemyHP = 1
	}
	if math.IsNaN(l.Speed) || math.IsInf(l.Speed, 0) || l.Speed <= 0 {
		l.Speed = 2.2
	}
	if l.BossHP < 1 {
		l.BossHP = 1
	}
	return l
}
