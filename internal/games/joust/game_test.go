package joust

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-joust/internal/core"
	"github.com/vovakirdan/tui-joust/internal/games/joust/sim"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// skipBanner steps through the wave announcement.
func skipBanner(g *Game) {
	for g.state == StateBanner {
		g.Step(core.NewInputFrame())
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(12345)

	// Flap regularly and drift left and right
	inputSequence := make([]core.InputFrame, 900)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%12 == 0 {
			inputSequence[i].Set(core.ActionFlap)
		}
		if i%90 < 45 {
			inputSequence[i].Set(core.ActionRight)
		} else {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
			result := g.Step(in)
			if result.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", snap1.Tick, snap2.Tick)
	}
	if snap1.AdversaryCount != snap2.AdversaryCount {
		t.Errorf("Determinism failed: adversary counts differ. Run1=%d, Run2=%d", snap1.AdversaryCount, snap2.AdversaryCount)
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	snap := g.Snapshot()
	before := snap.Hash()
	snap.Score += 50
	if snap.Hash() == before {
		t.Error("Hash should change when the score changes")
	}
}

func TestSnapshotHashCoversCarrier(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	egg := sim.NewEgg(core.V(300, 480), core.V(0, 0), sim.Patrol, &g.env)
	egg.SetTimers(10_000, 1)
	l := sim.NewLifecycle(egg, &g.env)
	l.Step(&g.env, core.V(0, 0))
	if l.Carrier() == nil {
		t.Fatalf("lifecycle state = %s, expected a carrier", l.State())
	}
	g.lifecycles = append(g.lifecycles, l)

	snap := g.Snapshot()
	if len(snap.LifecycleData) != 8 {
		t.Fatalf("LifecycleData has %d values, expected 8", len(snap.LifecycleData))
	}
	before := snap.Hash()

	l.Carrier().Box.X += 5
	if g.StateHash() == before {
		t.Error("Hash should change when a carrier moves")
	}

	l.Carrier().Box.X -= 5
	l.Carrier().Vel.Y += 1
	if g.StateHash() == before {
		t.Error("Hash should change when a carrier's velocity changes")
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)

	g := New()
	g.Reset(cfg)
	for i := 0; i < 300; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionFlap)
		}
		g.Step(in)
	}

	// Reset should clear state
	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.state != StateBanner {
		t.Errorf("Reset should set state to banner, got %s", g.state)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.wave != 1 {
		t.Errorf("Reset should start at wave 1, got %d", g.wave)
	}
	if g.lives != 4 {
		t.Errorf("Reset lives = %d, expected 4", g.lives)
	}
	if len(g.adversaries) != 0 || len(g.lifecycles) != 0 {
		t.Errorf("Reset should clear riders, got %d adversaries, %d lifecycles", len(g.adversaries), len(g.lifecycles))
	}
	if len(g.pending) != 3 {
		t.Errorf("wave 1 pending = %d, expected 3", len(g.pending))
	}
}

func TestBannerThenPlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	for i := 0; i < 179; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.state != StateBanner {
		t.Fatalf("state after 179 ticks = %s, expected banner", g.state)
	}
	if len(g.adversaries) != 0 {
		t.Errorf("no rider may spawn during the banner, got %d", len(g.adversaries))
	}

	g.Step(core.NewInputFrame())
	if g.state != StatePlaying {
		t.Errorf("state after 180 ticks = %s, expected playing", g.state)
	}
}

func TestRidersSpawnOverTime(t *testing.T) {
	g := New()
	g.Reset(testRuntime(99))
	skipBanner(g)

	if g.spawnInterval != 180 {
		t.Errorf("spawnInterval = %d, expected 180", g.spawnInterval)
	}

	for i := 0; i < 130; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.pending) != 2 {
		t.Errorf("pending after first spawn = %d, expected 2", len(g.pending))
	}

	for i := 0; i < 400; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.pending) != 0 {
		t.Errorf("pending after all spawns = %d, expected 0", len(g.pending))
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	skipBanner(g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if g.state != StatePaused {
		t.Fatalf("state = %s, expected paused", g.state)
	}
	if !g.State().Paused {
		t.Error("State().Paused should be true")
	}

	tick := g.tickCount
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != tick {
		t.Errorf("paused game advanced from tick %d to %d", tick, g.tickCount)
	}

	g.Step(pause)
	if g.state != StatePlaying {
		t.Errorf("state = %s, expected playing after unpause", g.state)
	}
}

func TestHeldDirection(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.readControls(left)

	held := 1
	for i := 0; i < 20; i++ {
		g.readControls(core.NewInputFrame())
		if g.controls.Left {
			held++
		}
	}
	if held != g.holdDuration {
		t.Errorf("left held for %d ticks, expected %d", held, g.holdDuration)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.readControls(left)
	g.readControls(right)
	if g.controls.Left || !g.controls.Right {
		t.Errorf("pressing right should cancel left, got %+v", g.controls)
	}
}

func TestCharacterHitCostsLife(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))
	g.state = StatePlaying

	g.applyEvents(sim.CombatEvents{CharacterHit: true})
	if g.lives != 3 || g.livesLost != 1 {
		t.Errorf("after hit lives=%d lost=%d, expected 3 and 1", g.lives, g.livesLost)
	}
	if g.state != StatePlaying {
		t.Errorf("state = %s, expected playing", g.state)
	}

	g.lives = 0
	g.applyEvents(sim.CombatEvents{CharacterHit: true, PointsAwarded: 500})
	if g.state != StateGameOver {
		t.Errorf("state = %s, expected gameover", g.state)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
	if g.score != 500 {
		t.Errorf("score = %d, expected 500", g.score)
	}
	if len(g.popups) != 1 || g.popups[0].text != "500" {
		t.Errorf("popups = %+v, expected one for 500", g.popups)
	}
}

func TestGameOverRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime(13))
	g.state = StateGameOver
	g.score = 1234

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.state != StateBanner || g.score != 0 {
		t.Errorf("after restart state=%s score=%d, expected banner and 0", g.state, g.score)
	}
}

func TestWaveClearAdvances(t *testing.T) {
	g := New()
	g.Reset(testRuntime(17))
	skipBanner(g)

	g.pending = nil
	g.Step(core.NewInputFrame())

	if g.wave != 2 {
		t.Fatalf("wave = %d, expected 2", g.wave)
	}
	if g.state != StateBanner {
		t.Errorf("state = %s, expected banner", g.state)
	}
	if g.waveKind != WaveSurvival {
		t.Errorf("wave 2 kind = %v, expected survival", g.waveKind)
	}
	if len(g.pending) != 4 {
		t.Errorf("wave 2 pending = %d, expected 4", len(g.pending))
	}
}

func TestSurvivalBonus(t *testing.T) {
	tests := []struct {
		name     string
		lost     int
		expected int
	}{
		{"no life lost", 0, 3000},
		{"life lost", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Reset(testRuntime(19))
			g.wave, g.waveIndex = 2, 1
			g.startWave()
			g.waveLivesLost = tt.lost

			g.handleWaveClear()
			if g.score != tt.expected {
				t.Errorf("score = %d, expected %d", g.score, tt.expected)
			}
			if g.wave != 3 {
				t.Errorf("wave = %d, expected 3", g.wave)
			}
		})
	}
}

func TestCampaignWinAndEndlessWrap(t *testing.T) {
	g := New()
	g.Reset(testRuntime(23))
	g.wave, g.waveIndex = 10, 9
	g.handleWaveClear()
	if g.state != StateWin {
		t.Errorf("campaign state = %s, expected win", g.state)
	}
	if !g.State().GameOver {
		t.Error("a won campaign should report GameOver")
	}

	e := NewEndless()
	e.Reset(testRuntime(23))
	e.wave, e.waveIndex = 10, 9
	e.handleWaveClear()
	if e.state != StateBanner {
		t.Errorf("endless state = %s, expected banner", e.state)
	}
	if e.wave != 11 || e.waveIndex != 0 || e.cycle != 1 {
		t.Errorf("endless wave=%d index=%d cycle=%d, expected 11, 0, 1", e.wave, e.waveIndex, e.cycle)
	}
}

func TestEggWaveLaysClutch(t *testing.T) {
	g := New()
	g.Reset(testRuntime(29))
	g.wave, g.waveIndex = 5, 4
	g.startWave()

	if g.waveKind != WaveEgg {
		t.Fatalf("wave 5 kind = %v, expected egg", g.waveKind)
	}
	if len(g.pending) != 0 {
		t.Errorf("egg wave pending = %d, expected 0", len(g.pending))
	}
	if len(g.lifecycles) != 11 {
		t.Fatalf("eggs laid = %d, expected 11", len(g.lifecycles))
	}

	for i, a := range g.lifecycles {
		boxA, _ := a.EggBox()
		if boxA.Left() < 4 || boxA.Right() > 596 {
			t.Errorf("egg %d outside the field: %+v", i, boxA)
		}
		for _, b := range g.lifecycles[i+1:] {
			boxB, _ := b.EggBox()
			if boxA.Intersects(boxB) {
				t.Errorf("eggs overlap: %+v and %+v", boxA, boxB)
			}
		}
	}
}

func TestWaveKinds(t *testing.T) {
	tests := []struct {
		wave     int
		expected WaveKind
	}{
		{1, WaveGeneric},
		{2, WaveSurvival},
		{3, WaveGeneric},
		{5, WaveEgg},
		{7, WaveSurvival},
		{10, WaveEgg},
		{12, WaveSurvival},
	}

	for _, tt := range tests {
		if got := waveKindFor(tt.wave); got != tt.expected {
			t.Errorf("waveKindFor(%d) = %v, expected %v", tt.wave, got, tt.expected)
		}
	}
}

func TestRemoveHelpers(t *testing.T) {
	env := &sim.Env{
		Bounds: sim.Bounds{W: 600, H: 600},
		Params: sim.DefaultParams(60),
		Rand:   fixedRand{},
	}
	a := sim.NewAdversary(1, sim.Patrol, core.V(100, 100), env)
	b := sim.NewAdversary(2, sim.Pursuit, core.V(300, 100), env)
	egg := b.Kill(env)

	left := removeDead([]*sim.Adversary{a, b})
	if len(left) != 1 || left[0].ID != 1 {
		t.Errorf("removeDead kept %d riders", len(left))
	}

	l := sim.NewLifecycle(egg, env)
	if got := removeDone([]*sim.Lifecycle{l}); len(got) != 1 {
		t.Errorf("removeDone dropped a live lifecycle")
	}
	l.Destroy()
	if got := removeDone([]*sim.Lifecycle{l}); len(got) != 0 {
		t.Errorf("removeDone kept a destroyed lifecycle")
	}
}

// fixedRand always draws the lowest value.
type fixedRand struct{}

func (fixedRand) Intn(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0 }

func TestWaveHelpers(t *testing.T) {
	g := New()
	g.Reset(testRuntime(31))

	tests := []struct {
		wave int
		eggs int
		lava float64
	}{
		{1, 10, 40},
		{2, 10, 55},
		{3, 10, 75},
		{5, 11, 75},
		{10, 12, 75},
		{30, 12, 75},
	}
	for _, tt := range tests {
		if got := eggCount(g.cfg.EggWave, tt.wave); got != tt.eggs {
			t.Errorf("eggCount(%d) = %d, expected %d", tt.wave, got, tt.eggs)
		}
		if got := lavaCap(g.cfg.Lava, tt.wave); got != tt.lava {
			t.Errorf("lavaCap(%d) = %v, expected %v", tt.wave, got, tt.lava)
		}
	}

	active := activePlatforms(g.platforms, []int{3, 8, 42})
	if len(active) != 2 {
		t.Errorf("activePlatforms kept %d, expected 2", len(active))
	}
	if q := spawnQueue(g.cfg.Waves[7]); len(q) != 5 || q[4] != sim.Elite {
		t.Errorf("wave 8 queue = %v, expected four hunters and an elite", q)
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testRuntime(37))
	if g.lives != 3 {
		t.Errorf("hard lives = %d, expected 3", g.lives)
	}
	if g.spawnInterval >= 180 {
		t.Errorf("hard spawnInterval = %d, expected below 180", g.spawnInterval)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(41))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	out := screen.String()
	if !strings.Contains(out, "WAVE 1") || !strings.Contains(out, "PREPARE TO JOUST") {
		t.Error("banner should announce wave 1")
	}
	if !strings.ContainsRune(out, PlatformChar) {
		t.Error("platforms should be drawn")
	}

	skipBanner(g)
	g.Render(screen)
	if strings.Contains(screen.String(), "WAVE 1") {
		t.Error("banner should be gone while playing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	cfg := testRuntime(43)
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Reset(cfg)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}

	result := g.Step(core.NewInputFrame())
	if result.State.Wave != 1 || g.tickCount != 0 {
		t.Error("a too-small screen should not advance the game")
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "joust" || NewEndless().ID() != "joust_endless" {
		t.Error("unexpected game ids")
	}
	if NewEndless().Title() != "Joust (Endless)" {
		t.Errorf("Title = %q", NewEndless().Title())
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntime(47))
	skipBanner(g)
	g.score = 750

	g.Resize(20, 10)
	if !g.screenTooSmall {
		t.Error("20x10 should be too small")
	}
	g.Resize(120, 40)
	if g.screenTooSmall {
		t.Error("120x40 should fit")
	}
	if g.score != 750 || g.state != StatePlaying {
		t.Errorf("resize reset the run: score=%d state=%s", g.score, g.state)
	}
}
