package movegen

import (
	"testing"

	"github.com/arjunmenon/klondikesolve/internal/game"
)

func TestFilterABCRemovesFoldableMove(t *testing.T) {
	// A -> B (no flip), then B -> C with the same card count is redundant.
	history := []game.Move{
		game.NewNonTalon(game.Tableau0, game.Tableau1, 1, 1, false),
	}
	candidate := game.NewNonTalon(game.Tableau1, game.Tableau2, 1, 1, false)
	if !redundant(candidate, history) {
		t.Fatal("expected B->C to be redundant after A->B of equal size")
	}
}

func TestFilterABCKeepsReverseAfterFlip(t *testing.T) {
	// A -> B flips a card; B -> A (same size) is not redundant since the
	// flip was a genuine state change.
	history := []game.Move{
		game.NewNonTalon(game.Tableau0, game.Tableau1, 1, 1, true),
	}
	candidate := game.NewNonTalon(game.Tableau1, game.Tableau0, 1, 1, false)
	if redundant(candidate, history) {
		t.Fatal("expected reverse move after a flip to NOT be redundant")
	}
}

func TestFilterABCNeverFiltersTalonMoves(t *testing.T) {
	history := []game.Move{
		game.NewNonTalon(game.Tableau0, game.Waste, 1, 1, false),
	}
	candidate := game.NewTalon(game.Tableau0, 1, 1, false)
	if redundant(candidate, history) {
		t.Fatal("talon-origin moves must never be filtered")
	}
}

func TestFilterABCIgnoresUnrelatedHistory(t *testing.T) {
	history := []game.Move{
		game.NewNonTalon(game.Tableau3, game.Tableau4, 1, 1, false),
	}
	candidate := game.NewNonTalon(game.Tableau1, game.Tableau2, 1, 1, false)
	if redundant(candidate, history) {
		t.Fatal("unrelated history must not mark candidate redundant")
	}
}
