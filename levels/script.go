package levels

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptCurve evaluates a tengo script per stage. Results are cached, so the
// script runs at most once per stage.
type ScriptCurve struct {
	name     string
	compiled *tengo.Compiled
	fallback Curve

	mu       sync.Mutex
	cache    map[int]LevelState
	reported bool
}

// NewScriptCurve compiles src. The script reads `stage` and must define
// spawn_every, enemy_hp, speed and boss_hp.
func NewScriptCurve(name string, src []byte) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	if err := script.Add("stage", 1); err != nil {
		return nil, fmt.Errorf("levels: script %s: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("levels: compile %s: %w", name, err)
	}

	return &ScriptCurve{
		name:     name,
		compiled: compiled,
		fallback: Builtin,
		cache:    make(map[int]LevelState),
	}, nil
}

// LoadScriptCurve reads and compiles a curve script by name.
func LoadScriptCurve(name string) (*ScriptCurve, error) {
	src, err := LoadCurveSource(name)
	if err != nil {
		return nil, err
	}
	return NewScriptCurve(name, src)
}

func (c *ScriptCurve) Level(stage int) LevelState {
	if stage < 1 {
		stage = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.cache[stage]; ok {
		return l
	}

	l, err := c.eval(stage)
	if err != nil {
		if !c.reported {
			log.Printf("levels: curve %s failed at stage %d, using builtin: %v", c.name, stage, err)
			c.reported = true
		}
		l = c.fallback.Level(stage)
	}
	c.cache[stage] = l
	return l
}

func (c *ScriptCurve) eval(stage int) (LevelState, error) {
	run := c.compiled.Clone()
	if err := run.Set("stage", stage); err != nil {
		return LevelState{}, err
	}
	if err := run.Run(); err != nil {
		return LevelState{}, err
	}

	for _, name := range []string{"spawn_every", "enemy_hp", "speed", "boss_hp"} {
		if !run.IsDefined(name) {
			return LevelState{}, fmt.Errorf("missing %q", name)
		}
	}

	return normalize(LevelState{
		Stage:      stage,
		SpawnEvery: run.Get("spawn_every").Int(),
		EnemyHP:    run.Get("enemy_hp").Int(),
		Speed:      run.Get("speed").Float(),
		BossHP:     run.Get("boss_hp").Int(),
	}), nil
}
