package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/ecs"
	"github.com/milk9111/eliko/ecs/system"
	"github.com/milk9111/eliko/input"
	"github.com/milk9111/eliko/levels"
	"github.com/milk9111/eliko/prefabs"
)

const (
	minLayoutW, maxLayoutW = 520, 900
	minLayoutH, maxLayoutH = 640, 1040
)

type Options struct {
	Stage  int
	Seed   int64
	Tuning string
	Watch  bool
	Debug  bool
}

type Game struct {
	session string

	world    *ecs.World
	sched    *ecs.Scheduler
	unifier  *input.Unifier
	poller   *input.Poller
	renderer *system.Renderer
	sound    ecs.SoundSink

	menu    *Menu
	watcher *prefabs.Watcher

	settings     Settings
	settingsPath string
	tuningName   string

	last       time.Time
	width      float64
	height     float64
	overLogged bool
	level      int
}

func NewGame(opts Options, settings Settings, settingsPath string, sound ecs.SoundSink) *Game {
	t, err := prefabs.LoadTuning(opts.Tuning)
	if err != nil {
		log.Printf("game: %v, using embedded tuning", err)
		t = prefabs.DefaultTuning()
	}

	var curve levels.Curve
	if c, err := levels.LoadScriptCurve(t.World.CurveScript); err != nil {
		log.Printf("game: %v, using builtin curve", err)
	} else {
		curve = c
	}

	if sound == nil {
		sound = ecs.NopSound{}
	}
	sound.Mute(settings.Muted)

	g := &Game{
		session:      uuid.NewString(),
		world:        ecs.NewWorld(t, curve, opts.Stage, opts.Seed),
		unifier:      input.NewUnifier(inputConfig(t.Input), t.World.Width),
		poller:       input.NewPoller(),
		renderer:     system.NewRenderer(),
		sound:        sound,
		settings:     settings,
		settingsPath: settingsPath,
		tuningName:   opts.Tuning,
		width:        t.World.Width,
		height:       t.World.Height,
		level:        1,
	}
	g.renderer.Debug = opts.Debug
	g.renderer.Labels = Lookup(g.lang()).HUD
	g.sched = system.NewScheduler(g.unifier, g.onProgress, g.sound)
	g.menu = NewMenu(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(watchDirs()...)
		if err != nil {
			log.Printf("game: watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	log.Printf("game: session %s start stage %d seed %d", g.session, g.world.Stage, opts.Seed)
	return g
}

func (g *Game) Update() error {
	g.handleHostKeys()
	g.drainReloads()

	now := time.Now()
	elapsed := common.NominalFrameMs
	if !g.last.IsZero() {
		elapsed = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last = now

	switch g.world.State {
	case ecs.Running:
		g.poller.Poll(g.unifier)
		g.sched.Step(g.world, elapsed)
	case ecs.GameOver:
		g.logGameOver()
		g.menu.Update()
	case ecs.Paused:
		g.menu.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world.Snapshot())
	if g.world.State != ecs.Running {
		g.menu.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	w, h := clampLayout(outsideWidth, outsideHeight)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.world.Resize(w, h)
		g.unifier.Resize(w)
	}
	return w, h
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// Close stops the watcher. Safe to call more than once.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) handleHostKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.CycleLanguage()
	case g.world.State == ecs.GameOver &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)):
		g.Restart()
	}
}

func (g *Game) TogglePause() {
	g.world.TogglePause()
	g.menu.Refresh()
}

func (g *Game) Restart() {
	g.world.Restart()
	g.overLogged = false
	g.level = 1
	g.last = time.Time{}
	g.menu.Refresh()
	log.Printf("game: session %s restart stage %d", g.session, g.world.Stage)
}

func (g *Game) ToggleMute() {
	g.settings.Muted = !g.settings.Muted
	g.sound.Mute(g.settings.Muted)
	g.saveSettings()
	g.menu.Refresh()
}

func (g *Game) CycleLanguage() {
	g.settings.Lang = string(g.lang().Next())
	g.renderer.Labels = Lookup(g.lang()).HUD
	g.saveSettings()
	g.menu.Refresh()
}

func (g *Game) lang() Lang {
	return ParseLang(g.settings.Lang)
}

// Summary is the one-line score report shown on game over.
func (g *Game) Summary() string {
	p := g.world.Progress
	return fmt.Sprintf(Lookup(g.lang()).Summary, p.Score, p.Kills, p.Boosts)
}

func (g *Game) saveSettings() {
	if g.settingsPath == "" {
		return
	}
	if err := SaveSettings(g.settingsPath, g.settings); err != nil {
		log.Printf("game: %v", err)
	}
}

func (g *Game) onProgress(xp, xpToNext float64, level int, didLevelUp bool) {
	if didLevelUp && level != g.level {
		g.level = level
		log.Printf("game: session %s level %d", g.session, level)
	}
}

func (g *Game) logGameOver() {
	if g.overLogged {
		return
	}
	g.overLogged = true
	g.menu.Refresh()
	p := g.world.Progress
	log.Printf("game: session %s over stage %d score %d kills %d", g.session, g.world.Stage, p.Score, p.Kills)
}

// drainReloads applies pending tuning and curve edits without blocking.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	name := filepath.Base(path)
	switch {
	case prefabs.IsTuningFile(path):
		if g.tuningName != "" && filepath.Base(g.tuningName) != name {
			return
		}
		t, err := prefabs.LoadTuning(name)
		if err != nil {
			log.Printf("game: reload: %v", err)
			return
		}
		g.world.SetTuning(t)
		g.unifier.SetConfig(inputConfig(t.Input))
		log.Printf("game: reloaded %s", name)
	case prefabs.IsCurveFile(path):
		c, err := levels.LoadScriptCurve(name)
		if err != nil {
			log.Printf("game: reload: %v", err)
			return
		}
		g.world.SetCurve(c)
		log.Printf("game: reloaded %s", name)
	}
}

func watchDirs() []string {
	var dirs []string
	for _, d := range []string{"prefabs", "levels"} {
		if ok, _ := filepath.Glob(filepath.Join(d, "*")); len(ok) > 0 {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func clampLayout(w, h float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return common.BaseWidth, common.BaseHeight
	}
	return common.Clamp(w, minLayoutW, maxLayoutW), common.Clamp(h, minLayoutH, maxLayoutH)
}

func inputConfig(spec prefabs.InputSpec) input.Config {
	if spec.Split <= 0 || spec.Split >= 1 {
		return input.DefaultConfig()
	}
	return input.Config{
		Split:           spec.Split,
		MoveRadius:      spec.MoveRadius,
		MoveDeadzone:    spec.MoveDeadzone,
		AimRadius:       spec.AimRadius,
		AimDeadzone:     spec.AimDeadzone,
		FireThreshold:   spec.FireThreshold,
		MouseIdleFrames: spec.MouseIdleFrames,
	}
}

var _ ebiten.Game = (*Game)(nil)
