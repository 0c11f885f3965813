// Package joust is the wave driver of the joust arena. It owns the
// collections of riders and egg lifecycles, the score, the lives and the
// wave number, and runs the simulation core once per tick.
package joust

import (
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-joust/internal/config"
	"github.com/vovakirdan/tui-joust/internal/core"
	"github.com/vovakirdan/tui-joust/internal/games/joust/sim"
	"github.com/vovakirdan/tui-joust/internal/registry"
)

// Game states
const (
	StateBanner   = "banner"   // Wave announcement, character may move
	StatePlaying  = "playing"  // Wave in progress
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Last wave cleared (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the wave table, win at end
	ModeEndless                  // Loop the wave table until game over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger for the driver and the simulation core.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
	sim.SetLogger(l)
}

// popup is a floating score shown where points were earned.
type popup struct {
	pos   core.Vec2
	text  string
	ticks int
}

// Game implements the joust arena.
type Game struct {
	mode GameMode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.JoustConfig
	difficulty *config.DifficultyManager
	base       sim.Params

	// Simulation
	rng          *rand.Rand
	env          sim.Env
	platforms    []sim.Platform
	character    *sim.Character
	adversaries  []*sim.Adversary
	lifecycles   []*sim.Lifecycle
	resolver     *sim.Resolver
	hazard       *sim.Hazard
	nextID       uint64
	controls     sim.Controls
	holdLeft     int
	holdRight    int
	holdDuration int

	// Wave progress
	wave          int // 1-based wave number
	waveIndex     int // index into cfg.Waves
	cycle         int // times the table has looped (endless mode)
	waveKind      WaveKind
	pending       []sim.Kind
	spawnCounter  int
	spawnInterval int
	bannerTicks   int
	waveLivesLost int

	// Run state
	state     string
	score     int
	lives     int
	livesLost int
	kills     int
	eggs      int
	tickCount int
	popups    []popup

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game in campaign mode.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "joust_endless"
	}
	return "joust"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Joust (Endless)"
	}
	return "Joust"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadJoust(configPath)
	if err != nil {
		logger.Warn("using default arena", "err", err)
		cfg = config.DefaultJoustConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyJoustPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.base = sim.DefaultParams(runtime.TickRate)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.platforms = buildPlatforms(cfg.Platforms)
	g.env = sim.Env{
		Bounds: sim.Bounds{W: cfg.Field.Width, H: cfg.Field.Height},
		Params: g.base,
		Rand:   g.rng,
	}
	g.resolver = sim.NewResolver(g.base.Combat)

	divisor := cfg.Lava.IntervalDivisor
	if divisor <= 0 {
		divisor = 3
	}
	g.hazard = sim.NewHazard(g.env.Bounds, lavaCap(cfg.Lava, 1), cfg.Lava.Rise, runtime.TickRate/divisor)

	g.adversaries = nil
	g.lifecycles = nil
	g.popups = nil
	g.nextID = 0
	g.controls = sim.Controls{}
	g.holdLeft, g.holdRight = 0, 0
	g.holdDuration = max(1, runtime.TickRate/6)

	g.score = 0
	g.lives = cfg.Player.Lives
	g.livesLost = 0
	g.kills = 0
	g.eggs = 0
	g.tickCount = 0
	g.wave = 1
	g.waveIndex = 0
	g.cycle = 0

	g.env.Platforms = activePlatforms(g.platforms, cfg.Waves[0].Platforms)
	g.character = sim.NewCharacter(core.V(g.env.Bounds.W/2, g.env.Bounds.H/2), &g.env)
	g.character.Respawn(&g.env)

	g.startWave()
}

// Resize follows a terminal resize. The world keeps its size; only the
// too-small check changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// startWave loads the current table entry and shows its banner.
func (g *Game) startWave() {
	w := g.cfg.Waves[g.waveIndex]
	g.waveKind = waveKindFor(g.wave)
	g.env.Platforms = activePlatforms(g.platforms, w.Platforms)

	progress := g.progress()
	g.env.Params = g.base
	g.env.Params.Adversary.Speed = g.difficulty.Speed(g.base.Adversary.Speed, progress)
	g.spawnInterval = int(g.difficulty.SpawnInterval(g.cfg.Spawning.IntervalSeconds, progress) * float64(g.runtime.TickRate))

	g.pending = nil
	if g.waveKind != WaveEgg {
		g.pending = spawnQueue(w)
	}
	g.spawnCounter = g.runtime.TickRate

	g.resolver.ResetEggValue()
	g.hazard.SetCap(lavaCap(g.cfg.Lava, g.wave))
	g.waveLivesLost = 0

	if g.waveKind == WaveEgg {
		g.layEggs(eggCount(g.cfg.EggWave, g.wave))
	}

	g.bannerTicks = int(g.cfg.Spawning.BannerSeconds * float64(g.runtime.TickRate))
	g.state = StateBanner
	if g.bannerTicks <= 0 {
		g.state = StatePlaying
	}

	logger.Info("wave start", "wave", g.wave, "kind", g.waveKind, "riders", len(g.pending), "lifecycles", len(g.lifecycles))
}

func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Ticks: g.tickCount, Wave: g.wave}
}

// layEggs places a clutch of bounder eggs on random active platforms,
// never overlapping each other.
func (g *Game) layEggs(n int) {
	p := g.env.Params.Egg
	var boxes []core.RectF
	for i := 0; i < n; i++ {
		for attempt := 0; attempt < 50; attempt++ {
			pos := g.randomPointOnPlatform()
			box := core.RectFromCenter(pos, p.Width, p.Height)
			if overlapsAny(box, boxes) {
				continue
			}
			boxes = append(boxes, box)
			egg := sim.NewEgg(pos, core.Vec2{}, sim.Patrol, &g.env)
			g.lifecycles = append(g.lifecycles, sim.NewLifecycle(egg, &g.env))
			break
		}
	}
}

func (g *Game) randomPointOnPlatform() core.Vec2 {
	pl := g.env.Platforms[g.rng.Intn(len(g.env.Platforms))].Box
	lo, hi := int(pl.Left())+10, int(pl.Right())-10
	x := float64(lo)
	if hi > lo {
		x = float64(lo + g.rng.Intn(hi-lo+1))
	}
	x = core.ClampF(x, 10, g.env.Bounds.W-10)
	return core.V(x, pl.Top()-g.env.Params.Egg.Height/2)
}

func overlapsAny(box core.RectF, others []core.RectF) bool {
	for _, o := range others {
		if box.Intersects(o) {
			return true
		}
	}
	return false
}

// spawnPoint picks a random spawn point of the active platforms.
func (g *Game) spawnPoint() core.Vec2 {
	pts := g.env.SpawnPoints()
	if len(pts) == 0 {
		return core.V(g.env.Bounds.W/2, g.env.Bounds.H/4)
	}
	return pts[g.rng.Intn(len(pts))]
}

func (g *Game) spawnAdversary(kind sim.Kind, pos core.Vec2) *sim.Adversary {
	g.nextID++
	return sim.NewAdversary(g.nextID, kind, pos, &g.env)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.readControls(in)
	g.updatePopups()

	if g.state == StateBanner {
		g.character.Step(&g.env, g.controls)
		g.bannerTicks--
		if g.bannerTicks <= 0 {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	g.tick()
	return core.StepResult{State: g.State()}
}

// readControls turns key presses into held controls. Terminals report
// presses, not holds, so a direction stays held for a short window.
func (g *Game) readControls(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.holdLeft = g.holdDuration
		g.holdRight = 0
	}
	if in.Has(core.ActionRight) {
		g.holdRight = g.holdDuration
		g.holdLeft = 0
	}

	g.controls = sim.Controls{
		Left:  g.holdLeft > 0,
		Right: g.holdRight > 0,
		Flap:  in.Has(core.ActionFlap),
	}

	if g.holdLeft > 0 {
		g.holdLeft--
	}
	if g.holdRight > 0 {
		g.holdRight--
	}
}

// tick runs one simulation tick: move every body, advance the lifecycles,
// resolve contacts, then apply removals and additions.
func (g *Game) tick() {
	env := &g.env

	if len(g.pending) > 0 {
		g.spawnCounter++
		if g.spawnCounter > g.spawnInterval {
			kind := g.pending[0]
			g.pending = g.pending[1:]
			g.adversaries = append(g.adversaries, g.spawnAdversary(kind, g.spawnPoint()))
			g.spawnCounter = 0
			logger.Debug("rider spawned", "kind", kind, "left", len(g.pending))
		}
	}

	g.character.Step(env, g.controls)
	chPos := g.character.Center()

	for _, a := range g.adversaries {
		a.Step(env, chPos)
	}

	var remounted []*sim.Adversary
	for _, l := range g.lifecycles {
		sig := l.Step(env, chPos)
		if sig.Kind == sim.SignalSpawnReady {
			remounted = append(remounted, g.spawnAdversary(sig.Type, sig.Position))
		}
	}

	g.hazard.Step()

	ev := g.resolver.Resolve(env, g.character, g.adversaries, g.lifecycles, g.hazard.Zone())

	// Post-pass: nothing above removed from the collections it iterated.
	g.adversaries = removeDead(g.adversaries)
	g.adversaries = append(g.adversaries, remounted...)
	g.lifecycles = removeDone(g.lifecycles)
	g.lifecycles = append(g.lifecycles, ev.Spawned...)

	g.applyEvents(ev)
	if g.state == StateGameOver {
		return
	}

	if len(g.pending) == 0 && len(g.adversaries) == 0 && len(g.lifecycles) == 0 {
		g.handleWaveClear()
	}
}

func removeDead(in []*sim.Adversary) []*sim.Adversary {
	out := in[:0]
	for _, a := range in {
		if a.IsAlive() {
			out = append(out, a)
		}
	}
	return out
}

func removeDone(in []*sim.Lifecycle) []*sim.Lifecycle {
	out := in[:0]
	for _, l := range in {
		if !l.Done() {
			out = append(out, l)
		}
	}
	return out
}

// applyEvents folds a resolver pass into the run state.
func (g *Game) applyEvents(ev sim.CombatEvents) {
	if ev.PointsAwarded > 0 {
		g.score += ev.PointsAwarded
		g.addPopup(ev.PointsAwarded)
	}
	g.kills += ev.Kills
	g.eggs += ev.EggsCollected

	if !ev.CharacterHit {
		return
	}
	g.livesLost++
	g.waveLivesLost++
	if g.lives == 0 {
		g.state = StateGameOver
		logger.Info("game over", "score", g.score, "wave", g.wave, "kills", g.kills, "eggs", g.eggs)
		return
	}
	g.lives--
	logger.Debug("character hit", "lives", g.lives)
}

func (g *Game) handleWaveClear() {
	if g.waveKind == WaveSurvival && g.waveLivesLost == 0 {
		g.score += g.cfg.Scoring.SurvivalBonus
	}
	logger.Info("wave clear", "wave", g.wave, "score", g.score)

	g.wave++
	g.waveIndex++
	if g.waveIndex >= len(g.cfg.Waves) {
		if g.mode == ModeCampaign {
			g.state = StateWin
			return
		}
		g.waveIndex = 0
		g.cycle++
	}
	g.startWave()
}

func (g *Game) addPopup(points int) {
	g.popups = append(g.popups, popup{
		pos:   g.character.Center(),
		text:  strconv.Itoa(points),
		ticks: g.runtime.TickRate * 3 / 2,
	})
}

func (g *Game) updatePopups() {
	out := g.popups[:0]
	for _, p := range g.popups {
		p.ticks--
		if p.ticks > 0 {
			out = append(out, p)
		}
	}
	g.popups = out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Lives:     g.lives,
		LivesLost: g.livesLost,
		Wave:      g.wave,
		GameOver:  g.state == StateGameOver || g.state == StateWin,
		Won:       g.state == StateWin,
		Paused:    g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("joust", func() registry.Game {
		return New()
	})
	registry.Register("joust_endless", func() registry.Game {
		return NewEndless()
	})
}
