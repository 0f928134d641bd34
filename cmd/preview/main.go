package main

import (
	"flag"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/system"
	"github.com/milk9111/eliko/input"
	"github.com/milk9111/eliko/prefabs"
)

// autopilot circles the playfield and fires, so the renderer can be checked
// without touching the controls.
type autopilot struct {
	t float64
}

func (a *autopilot) Frame(px, py float64) input.Frame {
	a.t += 0.02
	return input.Frame{MoveX: math.Cos(a.t), MoveY: math.Sin(a.t * 1.3), Firing: true}
}

type previewGame struct {
	world    *ecs.World
	sched    *ecs.Scheduler
	renderer *system.Renderer
}

func (g *previewGame) Update() error {
	if g.world.State == ecs.GameOver {
		g.world.Restart()
	}
	g.sched.Step(g.world, common.NominalFrameMs)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world.Snapshot())
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func main() {
	stage := flag.Int("stage", 1, "stage to preview")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	g := &previewGame{
		world:    ecs.NewWorld(prefabs.DefaultTuning(), nil, *stage, *seed),
		sched:    system.NewScheduler(&autopilot{}, nil, nil),
		renderer: system.NewRenderer(),
	}
	g.renderer.Debug = true

	ebiten.SetWindowSize(common.BaseWidth/2, common.BaseHeight/2)
	ebiten.SetWindowTitle("eliko preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
