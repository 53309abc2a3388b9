// Package finisher implements deterministic post-solve completion: once a
// search path ends in a trivially-playable remainder, this drains the rest
// of the game to a win without further search. Grounded on the teacher's
// Prober interface/CachedProber wrapper, repurposed here for a
// single-game, single-shot completion rather than a position database
// lookup.
package finisher

import "github.com/arjunmenon/klondikesolve/internal/game"

// Complete plays g forward deterministically: any tableau top that can go
// to its foundation, then the waste top if it can, else one talon draw (or
// recycle-and-draw) to expose a new candidate. It stops when the game is
// won or no further forced/greedy move exists, mutating g in place and
// returning the moves it made plus whether g ended up won.
func Complete(g *game.Game) ([]game.Move, bool) {
	var moves []game.Move
	idle := 0 // talon advances since the last foundation play
	for !g.Won() {
		if m, ok := playableTableauTop(g); ok {
			g.MakeMove(m)
			moves = append(moves, m)
			idle = 0
			continue
		}
		if m, ok := playableWasteTop(g); ok {
			g.MakeMove(m)
			moves = append(moves, m)
			idle = 0
			continue
		}
		// Two full passes through the talon with no play in between have
		// exposed every talon card without any of them fitting: stuck.
		if idle > 2*(g.Stock.Size()+g.Waste.Size()) {
			break
		}
		m, ok := advanceTalon(g)
		if !ok {
			break
		}
		g.MakeMove(m)
		moves = append(moves, m)
		idle++
	}
	return moves, g.Won()
}

func playableTableauTop(g *game.Game) (game.Move, bool) {
	for i := range g.Tableau {
		p := &g.Tableau[i]
		if p.UpCount == 0 {
			continue
		}
		top, _ := p.Top()
		if int(top.Rank()) == g.Foundation[top.Suit()].Size() {
			flip := p.UpCount == 1 && p.Size() > 1
			return game.NewNonTalon(game.TableauPile(i), game.FoundationPile(top.Suit()), 1, p.UpCount, flip), true
		}
	}
	return game.Move(0), false
}

func playableWasteTop(g *game.Game) (game.Move, bool) {
	c, ok := g.Waste.Top()
	if !ok || int(c.Rank()) != g.Foundation[c.Suit()].Size() {
		return game.Move(0), false
	}
	return game.NewTalon(game.FoundationPile(c.Suit()), 1, 0, false), true
}

// advanceTalon draws a batch from stock (recycling first if the stock is
// empty and a recycle is still allowed), playing the newly drawn top back
// onto the waste itself — a deliberate no-op destination used purely to
// expose a new waste top for the next Complete iteration to examine. When
// a recycle is needed, the stock is empty (drawCount's pre-recycle batch is
// zero), so the full draw comes from the stock a recycle just refilled from
// waste — makeTalon must see that draw happen after the recycle, not before.
func advanceTalon(g *game.Game) (game.Move, bool) {
	if g.Stock.Empty() {
		if g.Waste.Empty() {
			return game.Move(0), false
		}
		if g.RecycleLimit != game.NoRecycleLimit && g.RecycleCount >= g.RecycleLimit {
			return game.Move(0), false
		}
		draw := g.DrawSetting
		if draw > g.Waste.Size() {
			draw = g.Waste.Size()
		}
		return game.NewTalon(game.Waste, 1, draw, true), true
	}
	draw := g.DrawSetting
	if draw > g.Stock.Size() {
		draw = g.Stock.Size()
	}
	return game.NewTalon(game.Waste, 1, draw, false), true
}
