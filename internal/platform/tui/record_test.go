package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-joust/internal/core"
	"github.com/vovakirdan/tui-joust/internal/storage"
)

// hashedGame is a minimal game whose state the test sets directly.
type hashedGame struct {
	state core.GameState
}

func (g *hashedGame) ID() string               { return "joust" }
func (g *hashedGame) Title() string            { return "Joust" }
func (g *hashedGame) Reset(core.RuntimeConfig) { g.state = core.GameState{Wave: 1, Lives: 4} }
func (g *hashedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "joust") }
func (g *hashedGame) State() core.GameState    { return g.state }
func (g *hashedGame) StateHash() uint64        { return 0xabc }
func (g *hashedGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRunRecorderSavesOnce(t *testing.T) {
	store := openTestStore(t)
	game := &hashedGame{}

	rec := newRunRecorder(99)
	for i := 0; i < 5; i++ {
		rec.observe()
	}

	state := core.GameState{Score: 4250, Wave: 3, LivesLost: 5, GameOver: true}
	if err := rec.finish(store, game, state, outcomeOf(state)); err != nil {
		t.Fatalf("finish() failed: %v", err)
	}
	if err := rec.finish(store, game, state, outcomeOf(state)); err != nil {
		t.Fatalf("second finish() failed: %v", err)
	}

	scores, _ := store.TopScores("joust", 10)
	if len(scores) != 1 || scores[0].Wave != 3 {
		t.Errorf("scores = %+v, expected one at wave 3", scores)
	}

	runs, err := store.RecentRuns("joust", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	run := runs[0]
	if run.Seed != 99 || run.Ticks != 5 || run.Hash != 0xabc || run.Outcome != "gameover" {
		t.Errorf("run = %+v", run)
	}
}

func TestRunRecorderSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)

	rec := newRunRecorder(1)
	state := core.GameState{GameOver: true}
	if err := rec.finish(store, &hashedGame{}, state, outcomeOf(state)); err != nil {
		t.Fatalf("finish() failed: %v", err)
	}
	if high, _ := store.HighScore("joust"); high != 0 {
		t.Errorf("HighScore = %d, expected nothing saved", high)
	}
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		state    core.GameState
		expected string
	}{
		{core.GameState{GameOver: true, Won: true}, "win"},
		{core.GameState{GameOver: true}, "gameover"},
		{core.GameState{}, "quit"},
	}
	for _, tt := range tests {
		if got := outcomeOf(tt.state); got != tt.expected {
			t.Errorf("outcomeOf(%+v) = %q, expected %q", tt.state, got, tt.expected)
		}
	}
}

func TestGameModelSavesOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := &hashedGame{}

	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	m.Init()

	model, _ := m.Update(TickMsg{})
	m = model.(GameModel)

	game.state = core.GameState{Score: 1500, Wave: 2, GameOver: true}
	model, _ = m.Update(TickMsg{})
	m = model.(GameModel)

	if high, _ := store.HighScore("joust"); high != 1500 {
		t.Errorf("HighScore = %d, expected 1500", high)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(GameModel)
	if !m.BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}

	if !strings.Contains(m.View(), "joust") {
		t.Error("View() should render the game")
	}
}
