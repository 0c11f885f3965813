package config

import (
	_ "embed"
)

//go:embed defaults/joust.yaml
var defaultJoustYAML []byte

func spawnAt(x, y float64) *[2]float64 {
	return &[2]float64{x, y}
}

// DefaultJoustConfig returns the default arena: the arcade layout of nine
// platforms and a ten-wave campaign.
func DefaultJoustConfig() JoustConfig {
	all := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	noBridge := []int{0, 1, 2, 3, 4, 5, 6, 8}

	return JoustConfig{
		Field: FieldConfig{Width: 600, Height: 600},
		Platforms: []PlatformConfig{
			{X: 180, Y: 196, W: 160, H: 8, Spawn: spawnAt(234, 175)},   // top middle
			{X: 525, Y: 186, W: 110, H: 8},                             // top right
			{X: -80, Y: 186, W: 80, H: 8},                              // top left
			{X: -40, Y: 326, W: 120, H: 8, Spawn: spawnAt(25, 304)},    // bottom left
			{X: 210, Y: 376, W: 120, H: 8},                             // bottom middle
			{X: 525, Y: 324, W: 80, H: 8},                              // right connector
			{X: 430, Y: 314, W: 90, H: 8, Spawn: spawnAt(490, 288)},    // left connector
			{X: -20, Y: 500, W: 640, H: 8},                             // bridge
			{X: 140, Y: 500, W: 320, H: 100, Spawn: spawnAt(288, 479)}, // base
		},
		Waves: []WaveConfig{
			{Spawns: []string{"bounder", "bounder", "bounder"}, Platforms: all},
			{Spawns: []string{"bounder", "bounder", "bounder", "bounder"}, Platforms: all},
			{Spawns: []string{"bounder", "bounder", "bounder", "bounder", "bounder", "bounder"}, Platforms: noBridge},
			{Spawns: []string{"bounder", "bounder", "bounder", "hunter", "hunter"}, Platforms: noBridge},
			{Platforms: noBridge},
			{Spawns: []string{"bounder", "bounder", "bounder", "hunter", "hunter", "hunter"}, Platforms: []int{1, 2, 3, 4, 5, 6, 8}},
			{Spawns: []string{"bounder", "bounder", "hunter", "hunter", "hunter", "hunter"}, Platforms: []int{3, 4, 5, 6, 8}},
			{Spawns: []string{"hunter", "hunter", "hunter", "hunter", "shadow_lord"}, Platforms: []int{3, 4, 5, 6, 8}},
			{Spawns: []string{"hunter", "hunter", "hunter", "hunter", "hunter", "hunter"}, Platforms: []int{3, 5, 6, 8}},
			{Platforms: noBridge},
		},
		Player: PlayerConfig{Lives: 4},
		Spawning: SpawningConfig{
			IntervalSeconds: 3,
			BannerSeconds:   3,
		},
		Lava: LavaConfig{
			Rise:            4,
			IntervalDivisor: 3,
			Caps:            []float64{40, 55, 75},
		},
		Scoring: ScoringConfig{SurvivalBonus: 3000},
		EggWave: EggWaveConfig{Base: 10, Max: 12, PerWave: 5},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  1.5,
			},
		},
	}
}
