// Package movegen enumerates the selective, non-exhaustive set of moves a
// minimum Klondike solution could plausibly use, and filters out moves
// that are provably redundant given recent history.
package movegen

import (
	"github.com/arjunmenon/klondikesolve/internal/card"
	"github.com/arjunmenon/klondikesolve/internal/game"
)

// Options tunes generator behavior. Zero value is not useful; use
// DefaultOptions.
type Options struct {
	// FastThreshold is how many non-talon alternatives must already exist
	// before the talon walk is allowed to stop early past
	// TalonLookAheadLimit. Spec treats this as a tunable parameter, not an
	// invariant.
	FastThreshold int
}

// DefaultOptions returns the generator defaults used by the driver.
func DefaultOptions() Options { return Options{FastThreshold: 2} }

// safetyCap bounds the talon lookahead walk so a pathological deal (no
// plays ever surface) cannot loop forever; two full passes through the
// talon is always enough to detect that nothing new appears.
const safetyCap = card.NumCards*2 + 8

// Generate returns the candidate moves available from g, given history (the
// sequence of moves made to reach g, used by the ABC filter). The result is
// selective, not exhaustive, per spec: it omits moves no minimum solution
// would need.
func Generate(g *game.Game, history []game.Move, opts Options) []game.Move {
	minF := minFoundationSize(g)

	if m, ok := dominantMove(g, minF); ok {
		return []game.Move{m}
	}

	var candidates []game.Move
	candidates = append(candidates, tableauMoves(g, minF)...)

	talon, dominant := talonMoves(g, minF, len(candidates), opts)
	if dominant {
		return talon
	}
	candidates = append(candidates, talon...)

	candidates = append(candidates, foundationToTableauMoves(g, minF)...)

	return filterABC(candidates, history)
}

func minFoundationSize(g *game.Game) int {
	minF := g.Foundation[0].Size()
	for i := 1; i < len(g.Foundation); i++ {
		if s := g.Foundation[i].Size(); s < minF {
			minF = s
		}
	}
	return minF
}

// canGoToFoundation reports whether c is exactly the next card its
// foundation needs.
func canGoToFoundation(g *game.Game, c card.Card) bool {
	return int(c.Rank()) == g.Foundation[c.Suit()].Size()
}

// dominantMove scans waste top, tableau tops, and (when drawSetting == 1)
// the stock top for a card that can go to foundation whose rank is within
// minF+1 of the shortest foundation. Playing it now can never cost a
// minimum solution a move, so when found it is the only move offered.
func dominantMove(g *game.Game, minF int) (game.Move, bool) {
	if c, ok := g.Waste.Top(); ok && canGoToFoundation(g, c) && int(c.Rank()) <= minF+1 {
		return game.NewTalon(game.FoundationPile(c.Suit()), 1, 0, false), true
	}
	for i := range g.Tableau {
		p := &g.Tableau[i]
		c, ok := p.Top()
		if !ok || p.UpCount == 0 {
			continue
		}
		if canGoToFoundation(g, c) && int(c.Rank()) <= minF+1 {
			flip := p.UpCount == 1 && p.Size() > 1
			return game.NewNonTalon(game.TableauPile(i), game.FoundationPile(c.Suit()), 1, p.UpCount, flip), true
		}
	}
	if g.DrawSetting == 1 {
		if c, ok := g.Stock.Top(); ok && canGoToFoundation(g, c) && int(c.Rank()) <= minF+1 {
			return game.NewTalon(game.FoundationPile(c.Suit()), 2, 1, false), true
		}
	}
	return game.Move(0), false
}

// kingNeedsSpace reports whether some tableau pile has a King buried under
// face-down cards, i.e. an empty column would let it eventually surface.
func kingNeedsSpace(g *game.Game) bool {
	for i := range g.Tableau {
		p := &g.Tableau[i]
		if p.UpCount == 0 || p.Size() == p.UpCount {
			continue
		}
		bottom, ok := p.BottomFaceUp()
		if ok && bottom.Rank() != card.King {
			return true
		}
	}
	return false
}

func tableauMoves(g *game.Game, minF int) []game.Move {
	var moves []game.Move
	for i := range g.Tableau {
		p := &g.Tableau[i]
		if p.UpCount == 0 {
			continue
		}
		top, _ := p.Top()
		if canGoToFoundation(g, top) {
			flip := p.UpCount == 1 && p.Size() > 1
			moves = append(moves, game.NewNonTalon(game.TableauPile(i), game.FoundationPile(top.Suit()), 1, p.UpCount, flip))
		}

		faceUp := p.FaceUp()
		emittedKingMove := false
		for j := range g.Tableau {
			if j == i {
				continue
			}
			to := &g.Tableau[j]
			if to.Empty() {
				if emittedKingMove {
					continue
				}
				bottom, ok := p.BottomFaceUp()
				if ok && bottom.Rank() == card.King && p.Size() > p.UpCount {
					nCards := p.UpCount
					moves = append(moves, game.NewNonTalon(game.TableauPile(i), game.TableauPile(j), nCards, p.UpCount, true))
					emittedKingMove = true
				}
				continue
			}
			toTop, ok := to.Top()
			if !ok {
				continue
			}
			idx := -1
			for k, c := range faceUp {
				if card.Covers(c, toTop) {
					idx = k
					break
				}
			}
			if idx < 0 {
				continue
			}
			nCards := len(faceUp) - idx
			flipsCard := idx == 0 && p.Size() > nCards
			emptiesFrom := nCards == len(faceUp) && p.Size() == nCards
			var unburies bool
			if idx > 0 {
				unburies = canGoToFoundation(g, faceUp[idx-1])
			}
			if flipsCard || (emptiesFrom && kingNeedsSpace(g)) || unburies {
				moves = append(moves, game.NewNonTalon(game.TableauPile(i), game.TableauPile(j), nCards, p.UpCount, flipsCard))
			}
		}
	}
	return moves
}

func foundationToTableauMoves(g *game.Game, minF int) []game.Move {
	var moves []game.Move
	for i := range g.Foundation {
		f := &g.Foundation[i]
		if f.Size() <= minF+1 || f.Empty() {
			continue
		}
		top, _ := f.Top()
		for j := range g.Tableau {
			to := &g.Tableau[j]
			toTop, ok := to.Top()
			if !ok {
				continue
			}
			if card.Covers(top, toTop) {
				moves = append(moves, game.NewNonTalon(game.FoundationPile(card.Suit(i)), game.TableauPile(j), 1, 0, false))
			}
		}
	}
	return moves
}
