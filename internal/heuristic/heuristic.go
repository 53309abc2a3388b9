// Package heuristic computes an admissible, monotone lower bound on the
// number of moves remaining to win a Klondike game.
package heuristic

import (
	"github.com/arjunmenon/klondikesolve/internal/card"
	"github.com/arjunmenon/klondikesolve/internal/game"
)

// Lowest computes h(g): a lower bound on moves remaining from g, guaranteed
// admissible (never overestimates the true remaining move count) and
// monotone (decreases by at most one per single move). Precondition: the
// waste-misordering term is only sound and monotone when g.DrawSetting ==
// 1 — see the comment at misorderings below. The function adapts itself to
// g.DrawSetting rather than requiring the caller to gate the call, because
// every game instance knows its own setting.
func Lowest(g *game.Game) int {
	h := 0

	h += g.Stock.Size() + g.Waste.Size()
	h += ceilDiv(g.Stock.Size(), g.DrawSetting)

	if g.DrawSetting == 1 {
		h += misorderings(g.Waste.Cards)
	}

	for i := range g.Tableau {
		p := &g.Tableau[i]
		h += p.Size()
		downPlusOne := len(p.Cards) - p.UpCount + 1
		if downPlusOne > len(p.Cards) {
			downPlusOne = len(p.Cards)
		}
		if downPlusOne > 0 {
			h += misorderings(p.Cards[:downPlusOne])
		}
	}

	return h
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// misorderings counts pairs (i, j) with i < j, cards[i].Suit() ==
// cards[j].Suit(), and cards[j].Rank() < cards[i].Rank(): a later
// (sooner-to-be-exposed) card of the same suit ranks lower than an earlier
// (deeper, later-to-be-exposed) one, so the deeper card cannot reach its
// foundation before a detour frees the shallower one first. Each such pair
// forces at least one extra move.
//
// Only safe to add for drawSetting == 1: with a larger draw count, a single
// move can change the waste's misordering count by more than one, which
// would break monotonicity of g+h.
func misorderings(cards []card.Card) int {
	n := 0
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Suit() == cards[j].Suit() && cards[j].Rank() < cards[i].Rank() {
				n++
			}
		}
	}
	return n
}
