package prefabs

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

const TuningFile = "tuning.yaml"

type Tuning struct {
	World       WorldSpec             `yaml:"world"`
	Player      PlayerSpec            `yaml:"player"`
	Weapons     map[string]WeaponSpec `yaml:"weapons"`
	Rapid       RapidSpec             `yaml:"rapid"`
	Enemies     map[string]EnemySpec  `yaml:"enemies"`
	EnemyFire   EnemyFireSpec         `yaml:"enemy_fire"`
	Boss        BossSpec              `yaml:"boss"`
	Drops       DropSpec              `yaml:"drops"`
	Haste       HasteSpec             `yaml:"haste"`
	Buffs       BuffSpec              `yaml:"buffs"`
	Companions  CompanionSpec         `yaml:"companions"`
	Progression ProgressionSpec       `yaml:"progression"`
	Particles   ParticleSpec          `yaml:"particles"`
	Input       InputSpec             `yaml:"input"`
}

type WorldSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Padding       float64 `yaml:"padding"`
	CullMargin    float64 `yaml:"cull_margin"`
	MaxFrameUnits float64 `yaml:"max_frame_units"`
	CurveScript   string  `yaml:"curve_script"`
}

type PlayerSpec struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	MaxSpeed   float64 `yaml:"max_speed"`
	SpeedStep  float64 `yaml:"speed_step"`
	SpeedCap   float64 `yaml:"speed_cap"`
	Accel      float64 `yaml:"accel"`
	BaseRadius float64 `yaml:"base_radius"`
	MinRadius  float64 `yaml:"min_radius"`
	RadiusEase float64 `yaml:"radius_ease"`
	MaxLives   int     `yaml:"max_lives"`
}

// WeaponSpec describes one weapon's volley. For orbiting weapons Speed is the
// angular speed in radians per frame and Muzzle is the orbit radius.
type WeaponSpec struct {
	Gap      int       `yaml:"gap"`
	Speed    float64   `yaml:"speed"`
	W        float64   `yaml:"w"`
	H        float64   `yaml:"h"`
	Muzzle   float64   `yaml:"muzzle"`
	Cue      string    `yaml:"cue"`
	Pierce   int       `yaml:"pierce"`
	Damage   int       `yaml:"damage"`
	Life     int       `yaml:"life"`
	AutoFire bool      `yaml:"auto_fire"`
	Angles   []float64 `yaml:"angles"`
}

type RapidSpec struct {
	GapFactor float64 `yaml:"gap_factor"`
	MinGap    int     `yaml:"min_gap"`
}

type EnemySpec struct {
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Speed   float64 `yaml:"speed"`
	BobFreq float64 `yaml:"bob_freq"`
	BobAmp  float64 `yaml:"bob_amp"`
	Pulse   float64 `yaml:"pulse"`
	Heavy   bool    `yaml:"heavy"`
	HPBonus int     `yaml:"hp_bonus"`
	Shoots  bool    `yaml:"shoots"`
	Spits   bool    `yaml:"spits"`
}

type EnemyFireSpec struct {
	SpawnSpeed         float64 `yaml:"spawn_speed"`
	AimedEvery         int     `yaml:"aimed_every"`
	AimedChance        float64 `yaml:"aimed_chance"`
	AimedLead          float64 `yaml:"aimed_lead"`
	AimedSpeed         float64 `yaml:"aimed_speed"`
	AimedSpeedPerStage float64 `yaml:"aimed_speed_per_stage"`
	SpitEvery          int     `yaml:"spit_every"`
	SpitSpeed          float64 `yaml:"spit_speed"`
}

type BossSpec struct {
	W             float64 `yaml:"w"`
	H             float64 `yaml:"h"`
	Quota         int     `yaml:"quota"`
	HPBonus       int     `yaml:"hp_bonus"`
	Drift         float64 `yaml:"drift"`
	MinXFromRight float64 `yaml:"min_x_from_right"`
	WeaveBase     float64 `yaml:"weave_base"`
	WeavePerStage float64 `yaml:"weave_per_stage"`
	SpearEvery    int     `yaml:"spear_every"`
	SpearMin      int     `yaml:"spear_min"`
	RingEvery     int     `yaml:"ring_every"`
	RingMin       int     `yaml:"ring_min"`
	RingCount     int     `yaml:"ring_count"`
	FlameEvery    int     `yaml:"flame_every"`
	FlameMin      int     `yaml:"flame_min"`
}

type DropSpec struct {
	BaseChance       float64 `yaml:"base_chance"`
	StreakBonus      float64 `yaml:"streak_bonus"`
	StreakCap        float64 `yaml:"streak_cap"`
	BadChance        float64 `yaml:"bad_chance"`
	MythicChance     float64 `yaml:"mythic_chance"`
	BossSeedCount    int     `yaml:"boss_seed_count"`
	BossWeaponChance float64 `yaml:"boss_weapon_chance"`
	Drift            float64 `yaml:"drift"`
	Size             float64 `yaml:"size"`
}

// HasteSpec is the haste policy. When Detrimental is false haste is inert
// for enemies and only shows in the HUD.
type HasteSpec struct {
	Detrimental bool    `yaml:"detrimental"`
	TimeScale   float64 `yaml:"time_scale"`
	SpawnFactor float64 `yaml:"spawn_factor"`
}

type BuffSpec struct {
	ShieldMs    float64 `yaml:"shield_ms"`
	RapidMs     float64 `yaml:"rapid_ms"`
	HasteMs     float64 `yaml:"haste_ms"`
	AuraMs      float64 `yaml:"aura_ms"`
	MirrorMs    float64 `yaml:"mirror_ms"`
	FamiliarsMs float64 `yaml:"familiars_ms"`
}

type CompanionSpec struct {
	DroneEvery    int     `yaml:"drone_every"`
	DroneOrbit    float64 `yaml:"drone_orbit"`
	DroneSpin     float64 `yaml:"drone_spin"`
	FamiliarCount int     `yaml:"familiar_count"`
	FamiliarEvery int     `yaml:"familiar_every"`
	FamiliarOrbit float64 `yaml:"familiar_orbit"`
	FamiliarSpin  float64 `yaml:"familiar_spin"`
	AuraRadius    float64 `yaml:"aura_radius"`
	AuraEvery     int     `yaml:"aura_every"`
	AuraDamage    int     `yaml:"aura_damage"`
}

type ProgressionSpec struct {
	XPStart           float64 `yaml:"xp_start"`
	XPGrowth          float64 `yaml:"xp_growth"`
	XPPerOrb          float64 `yaml:"xp_per_orb"`
	OrbPull           float64 `yaml:"orb_pull"`
	OrbLife           int     `yaml:"orb_life"`
	OrbPickupRadius   float64 `yaml:"orb_pickup_radius"`
	HueStart          float64 `yaml:"hue_start"`
	HueStep           float64 `yaml:"hue_step"`
	KillsNeeded       int     `yaml:"kills_needed"`
	KillsNeededStep   int     `yaml:"kills_needed_step"`
	KillUpgradeChance float64 `yaml:"kill_upgrade_chance"`
	KillScore         int     `yaml:"kill_score"`
	BossScore         int     `yaml:"boss_score"`
	PickupScore       int     `yaml:"pickup_score"`
}

type ParticleSpec struct {
	HitBurst       int `yaml:"hit_burst"`
	BossHitBurst   int `yaml:"boss_hit_burst"`
	BossDeathBurst int `yaml:"boss_death_burst"`
	PickupBurst    int `yaml:"pickup_burst"`
	LevelUpBurst   int `yaml:"level_up_burst"`
	DeathBurst     int `yaml:"death_burst"`
	Bubbles        int `yaml:"bubbles"`
}

type InputSpec struct {
	Split           float64 `yaml:"split"`
	MoveRadius      float64 `yaml:"move_radius"`
	MoveDeadzone    float64 `yaml:"move_deadzone"`
	AimRadius       float64 `yaml:"aim_radius"`
	AimDeadzone     float64 `yaml:"aim_deadzone"`
	FireThreshold   float64 `yaml:"fire_threshold"`
	MouseIdleFrames int     `yaml:"mouse_idle_frames"`
}

var (
	defaultOnce   sync.Once
	defaultTuning *Tuning
)

// DefaultTuning returns a fresh copy of the embedded tuning file.
func DefaultTuning() *Tuning {
	defaultOnce.Do(func() {
		data, err := PrefabsFS.ReadFile(TuningFile)
		if err != nil {
			panic(fmt.Sprintf("prefabs: embedded %s missing: %v", TuningFile, err))
		}
		t, err := ParseTuning(data)
		if err != nil {
			panic(fmt.Sprintf("prefabs: embedded %s invalid: %v", TuningFile, err))
		}
		defaultTuning = t
	})
	return defaultTuning.Clone()
}

// LoadTuning reads a tuning file, preferring a disk copy under prefabs/.
func LoadTuning(name string) (*Tuning, error) {
	if name == "" {
		name = TuningFile
	}
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return t, nil
}

// ParseTuning decodes YAML and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects tuning the simulation cannot run with.
func (t *Tuning) Validate() error {
	if t.World.Width <= 0 || t.World.Height <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidTuning, t.World.Width, t.World.Height)
	}
	if t.Player.MaxLives < 1 {
		return fmt.Errorf("%w: max_lives %d", ErrInvalidTuning, t.Player.MaxLives)
	}
	if t.Progression.XPStart < 1 || t.Progression.XPGrowth < 1 {
		return fmt.Errorf("%w: xp_start %v xp_growth %v", ErrInvalidTuning, t.Progression.XPStart, t.Progression.XPGrowth)
	}
	if t.Boss.Quota < 1 {
		return fmt.Errorf("%w: boss quota %d", ErrInvalidTuning, t.Boss.Quota)
	}
	for name, w := range t.Weapons {
		if w.Gap < 1 {
			return fmt.Errorf("%w: weapon %s gap %d", ErrInvalidTuning, name, w.Gap)
		}
		if len(w.Angles) == 0 {
			return fmt.Errorf("%w: weapon %s has no angles", ErrInvalidTuning, name)
		}
	}
	for name, e := range t.Enemies {
		if e.W <= 0 || e.H <= 0 {
			return fmt.Errorf("%w: enemy %s size %vx%v", ErrInvalidTuning, name, e.W, e.H)
		}
	}
	return nil
}

// Weapon returns the named weapon, falling back to a plain single shot.
func (t *Tuning) Weapon(name string) WeaponSpec {
	if w, ok := t.Weapons[name]; ok {
		return w
	}
	return WeaponSpec{Gap: 8, Speed: 9, W: 8, H: 4, Muzzle: 18, Cue: "shoot", Angles: []float64{0}}
}

// Enemy returns the named enemy kind, falling back to a 40x40 drifter.
func (t *Tuning) Enemy(name string) EnemySpec {
	if e, ok := t.Enemies[name]; ok {
		return e
	}
	return EnemySpec{W: 40, H: 40, Speed: 1}
}

// Clone deep-copies the maps and slices so a running world can own its tuning.
func (t *Tuning) Clone() *Tuning {
	if t == nil {
		return nil
	}
	c := *t
	c.Weapons = make(map[string]WeaponSpec, len(t.Weapons))
	for k, w := range t.Weapons {
		w.Angles = append([]float64(nil), w.Angles...)
		c.Weapons[k] = w
	}
	c.Enemies = make(map[string]EnemySpec, len(t.Enemies))
	for k, e := range t.Enemies {
		c.Enemies[k] = e
	}
	return &c
}
