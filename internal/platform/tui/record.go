package tui

import (
	"github.com/vovakirdan/tui-joust/internal/core"
	"github.com/vovakirdan/tui-joust/internal/registry"
	"github.com/vovakirdan/tui-joust/internal/storage"
)

// runRecorder follows one run from Reset to its end and writes the score and
// run record exactly once.
type runRecorder struct {
	seed  int64
	ticks int
	saved bool
}

func newRunRecorder(seed int64) runRecorder {
	return runRecorder{seed: seed}
}

// observe counts a stepped tick.
func (r *runRecorder) observe() {
	r.ticks++
}

// finish saves the run. Runs that scored nothing are not recorded.
func (r *runRecorder) finish(store *storage.Store, game registry.Game, state core.GameState, outcome string) error {
	if r.saved || state.Score <= 0 {
		return nil
	}
	r.saved = true
	if store == nil {
		return nil
	}

	if _, err := store.SaveScore(game.ID(), state.Score, state.Wave); err != nil {
		return err
	}

	run := storage.Run{
		GameID:    game.ID(),
		Score:     state.Score,
		Wave:      state.Wave,
		LivesLost: state.LivesLost,
		Seed:      r.seed,
		Ticks:     r.ticks,
		Outcome:   outcome,
	}
	if h, ok := game.(registry.Hasher); ok {
		run.Hash = h.StateHash()
	}
	_, err := store.SaveRun(run)
	return err
}

// outcomeOf names how a finished run ended.
func outcomeOf(state core.GameState) string {
	switch {
	case state.Won:
		return "win"
	case state.GameOver:
		return "gameover"
	default:
		return "quit"
	}
}
