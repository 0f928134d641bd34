package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/system"
	"github.com/milk9111/eliko/input"
	"github.com/milk9111/eliko/prefabs"
)

// pilot weaves up and down while holding the trigger.
type pilot struct {
	frame int
}

func (p *pilot) Frame(px, py float64) input.Frame {
	p.frame++
	return input.Frame{
		MoveX:  0.3 * math.Sin(float64(p.frame)/90),
		MoveY:  math.Sin(float64(p.frame) / 40),
		Firing: true,
	}
}

func main() {
	seed := flag.Int64("seed", 1, "random seed")
	stage := flag.Int("stage", 1, "starting stage")
	frames := flag.Int("frames", 60*60*5, "frames to simulate")
	tuningName := flag.String("tuning", prefabs.TuningFile, "tuning file under prefabs/")
	flag.Parse()

	t, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatalf("soak: %v", err)
	}

	w := ecs.NewWorld(t, nil, *stage, *seed)
	levelUps := 0
	sched := system.NewScheduler(&pilot{}, func(_, _ float64, _ int, up bool) {
		if up {
			levelUps++
		}
	}, nil)

	n := 0
	for n < *frames && sched.Step(w, common.NominalFrameMs) {
		n++
	}

	p := w.Progress
	fmt.Printf("frames %d state %v stage %d\n", n, w.State, w.Stage)
	fmt.Printf("score %d kills %d boosts %d level %d (%d level-ups)\n", p.Score, p.Kills, p.Boosts, p.Level, levelUps)
	fmt.Printf("weapon %s lives %d/%d drones %d\n", w.Player.Weapon, w.Player.HP, t.Player.MaxLives, len(w.Drones))
}
