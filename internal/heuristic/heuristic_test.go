package heuristic

import (
	"testing"

	"github.com/arjunmenon/klondikesolve/internal/card"
	"github.com/arjunmenon/klondikesolve/internal/game"
)

func TestLowestNonNegative(t *testing.T) {
	deck := card.NumberedDeal(174985)
	g := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	if h := Lowest(g); h <= 0 {
		t.Errorf("Lowest() = %d on a freshly dealt game, want > 0", h)
	}
}

func TestLowestZeroWhenWon(t *testing.T) {
	deck := card.OrderedDeck()
	g := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	// Manually fill foundations to simulate a won game; heuristic must read
	// zero contribution from empty stock/waste/tableau in that state.
	for s := 0; s < 4; s++ {
		g.Foundation[s].Cards = nil
		for r := card.Ace; r <= card.King; r++ {
			g.Foundation[s].Cards = append(g.Foundation[s].Cards, card.New(card.Suit(s), r))
		}
	}
	g.Stock.Cards = nil
	g.Waste.Cards = nil
	for i := range g.Tableau {
		g.Tableau[i].Cards = nil
		g.Tableau[i].UpCount = 0
	}
	if h := Lowest(g); h != 0 {
		t.Errorf("Lowest() = %d on a won game, want 0", h)
	}
}

func TestMonotoneAcrossDraw(t *testing.T) {
	deck := card.NumberedDeal(7)
	g := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	before := Lowest(g)
	m := game.NewTalon(game.Waste, 1, 1, false)
	g.MakeMove(m)
	after := Lowest(g)
	if before-after > 1 {
		t.Errorf("heuristic dropped by %d (> 1) across a single move: before=%d after=%d", before-after, before, after)
	}
}

func TestLowestNonNegativeAtDrawOneAndThree(t *testing.T) {
	deck := card.NumberedDeal(3)
	g3 := game.NewGame(deck, 3, 24, game.NoRecycleLimit)
	g1 := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	// Both start with empty waste; this just exercises that the code path
	// for drawSetting==3 does not panic and produces a sane bound.
	if Lowest(g3) < 0 || Lowest(g1) < 0 {
		t.Fatal("Lowest must never be negative")
	}
}
