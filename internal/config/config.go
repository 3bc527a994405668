// Package config provides YAML-based game configuration loading and
// difficulty management for the pocket arcade.
package config

// FroggyConfig contains all configuration for Froggy Road.
type FroggyConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Player     FroggyPlayer     `yaml:"player"`
	Lanes      FroggyLanes      `yaml:"lanes"`
	Actors     FroggyActors     `yaml:"actors"`
	Death      FroggyDeath      `yaml:"death"`
	World      FroggyWorld      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FroggyPlayer defines the frog's lateral movement.
type FroggyPlayer struct {
	Step      float64 `yaml:"step"`       // Lateral distance per key press
	Bound     float64 `yaml:"bound"`      // Playfield half width; beyond it the frog dies
	HalfWidth float64 `yaml:"half_width"` // Half of the frog's footprint
}

// FroggyLanes defines lane generation and spawning.
type FroggyLanes struct {
	OffscreenBound    float64 `yaml:"offscreen_bound"`     // Actors past ±bound are removed
	SpawnJitter       int     `yaml:"spawn_jitter"`        // Spawn threshold varies by ±jitter ticks
	SkipChance        float64 `yaml:"skip_chance"`         // Probability a due spawn is skipped
	BaseSpawnInterval int     `yaml:"base_spawn_interval"` // Interval at tier 0
	IntervalPerTier   int     `yaml:"interval_per_tier"`   // Interval reduction per tier
	MinSpawnInterval  int     `yaml:"min_spawn_interval"`  // Interval floor
	BlockingSpeedStep float64 `yaml:"blocking_speed_step"` // Speed added per tier on roads
	CarrySpeedStep    float64 `yaml:"carry_speed_step"`    // Speed added per tier on rivers
}

// FroggyActors defines actor footprints (full widths).
type FroggyActors struct {
	Car  float64 `yaml:"car"`
	Log  float64 `yaml:"log"`
	Lily float64 `yaml:"lily"`
}

// FroggyDeath defines the death transition.
type FroggyDeath struct {
	FreezeTicks int     `yaml:"freeze_ticks"` // Ticks the fatal lanes stay visible
	Rumble      float64 `yaml:"rumble"`       // Rumble intensity on death
	RumbleTicks int     `yaml:"rumble_ticks"` // Rumble is cleared after this many ticks
}

// FroggyWorld defines the selectable world (seed) range.
type FroggyWorld struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// AsteroidsConfig contains all configuration for Asteroids.
type AsteroidsConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Ship       AsteroidsShip    `yaml:"ship"`
	Bullets    AsteroidsBullets `yaml:"bullets"`
	Meteoroids AsteroidsMeteors `yaml:"meteoroids"`
	Shield     AsteroidsShield  `yaml:"shield"`
	Difficulty DifficultyConfig `yaml:"difficulty"` // Meteoroid speed tiers
}

// AsteroidsShip defines ship handling.
type AsteroidsShip struct {
	RotationSteps int     `yaml:"rotation_steps"` // Ticks for a half turn
	Acceleration  float64 `yaml:"acceleration"`   // Thrust divisor
	TopSpeed      float64 `yaml:"top_speed"`
	Radius        float64 `yaml:"radius"`
}

// AsteroidsBullets defines bullet behavior.
type AsteroidsBullets struct {
	Speed float64 `yaml:"speed"`
	Bound float64 `yaml:"bound"`
}

// AsteroidsMeteors defines meteoroid spawning.
type AsteroidsMeteors struct {
	BaseCount    int       `yaml:"base_count"` // Population at score 0
	CountStep    int       `yaml:"count_step"` // Score per extra meteoroid
	MaxCount     int       `yaml:"max_count"`
	Sizes        []float64 `yaml:"sizes"`
	MaxSlope     int       `yaml:"max_slope"`
	SpeedDivisor float64   `yaml:"speed_divisor"`
	PointsBase   float64   `yaml:"points_base"` // Points are (base - radius) * 10
	SplitShrink  float64   `yaml:"split_shrink"`
}

// AsteroidsShield defines the shield.
type AsteroidsShield struct {
	Drain float64 `yaml:"drain"` // Score drained per shielded tick
}

// BitFlipConfig contains all configuration for BitFlip.
type BitFlipConfig struct {
	TickRate      int      `yaml:"tick_rate"`
	Grid          int      `yaml:"grid"`
	Depth         RangeInt `yaml:"depth"`
	Level         RangeInt `yaml:"level"`
	WinDelayTicks int      `yaml:"win_delay_ticks"`
}

// RangeInt is a bounded integer setting with a default.
type RangeInt struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how the difficulty tier grows with score.
type ProgressionConfig struct {
	Type    string `yaml:"type"`     // "score" or "none"
	Step    int    `yaml:"step"`     // Score needed per tier
	MaxTier int    `yaml:"max_tier"` // Highest reachable tier
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value into a preset.
// Unknown values yield the empty preset, which leaves configs untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
// Normal starts at tier 0, the same as the shipped defaults.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy, DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
