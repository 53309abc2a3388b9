package movegen

import "github.com/arjunmenon/klondikesolve/internal/game"

// filterABC removes candidates that a prior move in history already made
// redundant: a move T: B->C is redundant when the most recent move
// touching B or C was M: A->B moving the same number of cards, since T
// could simply have been folded into M earlier. The single exception is
// A == C with M having caused a flip: then the flip was a genuine state
// change, and T is not redundant. Talon-origin moves are never filtered.
func filterABC(candidates []game.Move, history []game.Move) []game.Move {
	var kept []game.Move
	for _, m := range candidates {
		if !redundant(m, history) {
			kept = append(kept, m)
		}
	}
	return kept
}

func redundant(m game.Move, history []game.Move) bool {
	if m.IsTalon() {
		return false
	}
	b, c := m.From(), m.To()
	for i := len(history) - 1; i >= 0; i-- {
		h := history[i]
		touchesB := touches(h, b)
		touchesC := touches(h, c)
		if !touchesB && !touchesC {
			continue
		}
		if h.IsTalon() {
			return false
		}
		if h.To() != b || h.NCards() != m.NCards() {
			return false
		}
		if h.From() == c && h.Flip() {
			return false
		}
		return true
	}
	return false
}

func touches(h game.Move, p game.PileCode) bool {
	if h.IsTalon() {
		return h.To() == p
	}
	return h.From() == p || h.To() == p
}
