package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/eliko/assets"
	"github.com/milk9111/eliko/common"
	"github.com/milk9111/eliko/prefabs"
)

func main() {
	stage := flag.Int("stage", 1, "stage to start at")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ edits while playing")
	tuning := flag.String("tuning", prefabs.TuningFile, "tuning file under prefabs/")
	mute := flag.Bool("mute", false, "start muted")
	lang := flag.String("lang", "", "display language (en, es)")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	settingsPath, err := SettingsPath()
	if err != nil {
		log.Printf("main: %v", err)
	}
	settings := DefaultSettings()
	if settingsPath != "" {
		if s, err := LoadSettings(settingsPath); err != nil {
			log.Printf("main: %v", err)
		} else {
			settings = s
		}
	}
	if *lang != "" {
		settings.Lang = string(ParseLang(*lang))
	}
	if *mute {
		settings.Muted = true
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("eliko")

	game := NewGame(Options{
		Stage:  *stage,
		Seed:   *seed,
		Tuning: *tuning,
		Watch:  *watch,
		Debug:  *debug,
	}, settings, settingsPath, assets.NewSynth())
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
