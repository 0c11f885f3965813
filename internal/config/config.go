// Package config provides YAML-based game configuration loading and
// difficulty management for the joust arena.
package config

// JoustConfig contains all configuration for the joust arena.
type JoustConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Platforms  []PlatformConfig `yaml:"platforms"`
	Waves      []WaveConfig     `yaml:"waves"`
	Player     PlayerConfig     `yaml:"player"`
	Spawning   SpawningConfig   `yaml:"spawning"`
	Lava       LavaConfig       `yaml:"lava"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	EggWave    EggWaveConfig    `yaml:"egg_wave"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the size of the world in simulation units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformConfig is one ledge, given by its top-left corner and size.
// Spawn, when present, is the center of a rider spawned on it.
type PlatformConfig struct {
	X     float64     `yaml:"x"`
	Y     float64     `yaml:"y"`
	W     float64     `yaml:"w"`
	H     float64     `yaml:"h"`
	Spawn *[2]float64 `yaml:"spawn,omitempty"`
}

// WaveConfig lists the riders a wave sends, in spawn order, and the indices
// of the platforms active during it. Rider names: bounder, hunter, shadow_lord.
type WaveConfig struct {
	Spawns    []string `yaml:"spawns"`
	Platforms []int    `yaml:"platforms"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives int `yaml:"lives"`
}

// SpawningConfig defines enemy spawn pacing.
type SpawningConfig struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
	BannerSeconds   float64 `yaml:"banner_seconds"`
}

// LavaConfig defines the rising lava line. Caps are per wave; the last
// entry applies to every later wave.
type LavaConfig struct {
	Rise            float64   `yaml:"rise"`
	IntervalDivisor int       `yaml:"interval_divisor"` // rises every tick_rate/divisor ticks
	Caps            []float64 `yaml:"caps"`
}

// ScoringConfig defines wave bonuses.
type ScoringConfig struct {
	SurvivalBonus int `yaml:"survival_bonus"`
}

// EggWaveConfig defines how many eggs an egg wave lays: min(max, base + wave/per).
type EggWaveConfig struct {
	Base    int `yaml:"base"`
	Max     int `yaml:"max"`
	PerWave int `yaml:"per_wave"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "wave", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks/wave at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to rider speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Seconds cut from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
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
