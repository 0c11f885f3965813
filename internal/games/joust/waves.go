package joust

import (
	"github.com/vovakirdan/tui-joust/internal/config"
	"github.com/vovakirdan/tui-joust/internal/core"
	"github.com/vovakirdan/tui-joust/internal/games/joust/sim"
)

// WaveKind selects the rules of a wave.
type WaveKind int

const (
	WaveGeneric  WaveKind = iota // spawn the table's riders, clear them all
	WaveSurvival                 // generic, plus a bonus for losing no life
	WaveEgg                      // a clutch of eggs is laid at the start
)

// String returns the banner subtitle for the wave kind.
func (k WaveKind) String() string {
	switch k {
	case WaveSurvival:
		return "SURVIVAL WAVE"
	case WaveEgg:
		return "EGG WAVE"
	default:
		return ""
	}
}

// waveKindFor classifies a 1-based wave number: every 5th wave lays eggs and
// waves 2, 7, 12... are survival waves.
func waveKindFor(wave int) WaveKind {
	switch {
	case wave%5 == 0:
		return WaveEgg
	case (wave-2)%5 == 0:
		return WaveSurvival
	default:
		return WaveGeneric
	}
}

var riderKinds = map[string]sim.Kind{
	"bounder":     sim.Patrol,
	"hunter":      sim.Pursuit,
	"shadow_lord": sim.Elite,
}

// spawnQueue turns a wave's rider names into kinds. Unknown names were
// rejected by config validation and are skipped here.
func spawnQueue(w config.WaveConfig) []sim.Kind {
	out := make([]sim.Kind, 0, len(w.Spawns))
	for _, name := range w.Spawns {
		if k, ok := riderKinds[name]; ok {
			out = append(out, k)
		}
	}
	return out
}

// buildPlatforms converts the configured layout into sim platforms.
func buildPlatforms(cfg []config.PlatformConfig) []sim.Platform {
	out := make([]sim.Platform, len(cfg))
	for i, p := range cfg {
		out[i] = sim.Platform{Box: core.NewRectF(p.X, p.Y, p.W, p.H)}
		if p.Spawn != nil {
			out[i].HasSpawn = true
			out[i].Spawn = core.V(p.Spawn[0], p.Spawn[1])
		}
	}
	return out
}

// activePlatforms selects the platforms a wave uses, in table order.
func activePlatforms(all []sim.Platform, indices []int) []sim.Platform {
	out := make([]sim.Platform, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(all) {
			out = append(out, all[idx])
		}
	}
	return out
}

// eggCount is the size of an egg wave's clutch.
func eggCount(cfg config.EggWaveConfig, wave int) int {
	n := cfg.Base
	if cfg.PerWave > 0 {
		n += wave / cfg.PerWave
	}
	if cfg.Max > 0 && n > cfg.Max {
		n = cfg.Max
	}
	return n
}

// lavaCap returns how high the lava may rise during a wave.
func lavaCap(cfg config.LavaConfig, wave int) float64 {
	if len(cfg.Caps) == 0 {
		return 0
	}
	if wave-1 < len(cfg.Caps) {
		return cfg.Caps[wave-1]
	}
	return cfg.Caps[len(cfg.Caps)-1]
}
