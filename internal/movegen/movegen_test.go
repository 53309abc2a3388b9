package movegen

import (
	"testing"

	"github.com/arjunmenon/klondikesolve/internal/card"
	"github.com/arjunmenon/klondikesolve/internal/game"
)

func TestGenerateNeverPanicsFreshDeal(t *testing.T) {
	deck := card.NumberedDeal(174985)
	g := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	moves := Generate(g, nil, DefaultOptions())
	if len(moves) == 0 {
		t.Fatal("expected at least one candidate move on a freshly dealt game")
	}
}

func TestGenerateEachMoveIsReversible(t *testing.T) {
	deck := card.NumberedDeal(42)
	g := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	moves := Generate(g, nil, DefaultOptions())
	for _, m := range moves {
		before := g.Copy()
		g.MakeMove(m)
		if err := g.CheckInvariants(); err != nil {
			t.Fatalf("move %+v produced an invalid state: %v", m, err)
		}
		g.UnMakeMove(m)
		if !statesEqual(g, before) {
			t.Fatalf("move %+v did not round-trip via UnMakeMove", m)
		}
	}
}

func TestDominantMoveIsAlone(t *testing.T) {
	// Hand-build a state where an Ace sits on top of a tableau pile: it
	// must always be the sole generated move regardless of anything else
	// on the board.
	deck := card.OrderedDeck()
	g := game.NewGame(deck, 1, 24, game.NoRecycleLimit)
	ace := card.New(card.Clubs, card.Ace)
	g.Tableau[0].Cards = append(g.Tableau[0].Cards, ace)
	g.Tableau[0].UpCount = 1
	moves := Generate(g, nil, DefaultOptions())
	if len(moves) != 1 {
		t.Fatalf("expected exactly one dominant move, got %d", len(moves))
	}
}

func TestDealSolitaireDrawThreeDoesNotPanic(t *testing.T) {
	deck := card.NumberedDeal(7)
	g := game.NewGame(deck, 3, 24, 2)
	for i := 0; i < 20; i++ {
		moves := Generate(g, nil, DefaultOptions())
		if len(moves) == 0 {
			break
		}
		g.MakeMove(moves[0])
	}
}

func statesEqual(a, b *game.Game) bool {
	if a.KingSpaces != b.KingSpaces || a.RecycleCount != b.RecycleCount {
		return false
	}
	pilesEq := func(x, y *game.Pile) bool {
		if len(x.Cards) != len(y.Cards) || x.UpCount != y.UpCount {
			return false
		}
		for i := range x.Cards {
			if x.Cards[i] != y.Cards[i] {
				return false
			}
		}
		return true
	}
	if !pilesEq(&a.Stock, &b.Stock) || !pilesEq(&a.Waste, &b.Waste) {
		return false
	}
	for i := range a.Tableau {
		if !pilesEq(&a.Tableau[i], &b.Tableau[i]) {
			return false
		}
	}
	for i := range a.Foundation {
		if !pilesEq(&a.Foundation[i], &b.Foundation[i]) {
			return false
		}
	}
	return true
}
