package movegen

import (
	"github.com/arjunmenon/klondikesolve/internal/card"
	"github.com/arjunmenon/klondikesolve/internal/game"
)

// talonMoves simulates the talon forward, step by step, over a private
// copy of stock/waste: each step draws one batch (up to DrawSetting cards)
// or, once, recycles waste back to stock. At every step it checks whether
// the new top of waste is playable and records the corresponding talon
// move. It returns early with dominant=true if a dominant foundation play
// surfaces during the walk.
func talonMoves(g *game.Game, minF, nonTalonCount int, opts Options) (moves []game.Move, dominant bool) {
	stock := append([]card.Card(nil), g.Stock.Cards...)
	waste := append([]card.Card(nil), g.Waste.Cards...)
	recycleUsed := false
	cardsDrawn := 0
	drawActions := 0

	unlimited := g.RecycleLimit == game.NoRecycleLimit
	canRecycleOnce := unlimited || g.RecycleCount < g.RecycleLimit

	for step := 0; step < safetyCap; step++ {
		if len(stock) == 0 {
			if recycleUsed || !canRecycleOnce || len(waste) == 0 {
				break
			}
			n := len(waste)
			newStock := make([]card.Card, n)
			for i := 0; i < n; i++ {
				newStock[i] = waste[n-1-i]
			}
			stock = newStock
			waste = nil
			recycleUsed = true
		}

		draw := g.DrawSetting
		if draw > len(stock) {
			draw = len(stock)
		}
		if draw == 0 {
			break
		}
		for i := 0; i < draw; i++ {
			c := stock[len(stock)-1]
			stock = stock[:len(stock)-1]
			waste = append(waste, c)
		}
		cardsDrawn += draw
		drawActions++

		top := waste[len(waste)-1]
		nMoves := drawActions + boolInt(recycleUsed) + 1

		if canGoToFoundation(g, top) {
			m := game.NewTalon(game.FoundationPile(top.Suit()), nMoves, cardsDrawn, recycleUsed)
			if int(top.Rank()) <= minF+1 {
				return []game.Move{m}, true
			}
			moves = append(moves, m)
		}

		for j := range g.Tableau {
			to := &g.Tableau[j]
			if to.Empty() {
				if top.Rank() == card.King {
					moves = append(moves, game.NewTalon(game.TableauPile(j), nMoves, cardsDrawn, recycleUsed))
					break
				}
				continue
			}
			toTop, ok := to.Top()
			if ok && card.Covers(top, toTop) {
				moves = append(moves, game.NewTalon(game.TableauPile(j), nMoves, cardsDrawn, recycleUsed))
			}
		}

		if drawActions > g.TalonLookAheadLimit && nonTalonCount >= opts.FastThreshold {
			break
		}
		if recycleUsed && len(waste) == len(g.Waste.Cards) && len(stock) == len(g.Stock.Cards) {
			break // completed a full, unproductive cycle
		}
	}
	return moves, false
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
