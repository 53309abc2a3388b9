package game

import (
	"fmt"

	"github.com/arjunmenon/klondikesolve/internal/card"
)

// CheckInvariants validates the structural invariants every reachable
// state must satisfy (spec testable-properties §8, items 1-5). Intended
// for use in tests and fuzzing, not the search hot path.
func (g *Game) CheckInvariants() error {
	seen := make(map[int]bool, 52)
	count := func(c int) error {
		if seen[c] {
			return fmt.Errorf("game: card %d appears more than once", c)
		}
		seen[c] = true
		return nil
	}
	for _, c := range g.Stock.Cards {
		if err := count(int(c)); err != nil {
			return err
		}
	}
	for _, c := range g.Waste.Cards {
		if err := count(int(c)); err != nil {
			return err
		}
	}
	for i := range g.Tableau {
		p := &g.Tableau[i]
		if p.UpCount < 0 || p.UpCount > len(p.Cards) {
			return fmt.Errorf("game: tableau %d upCount %d out of range for size %d", i, p.UpCount, len(p.Cards))
		}
		faceUp := p.FaceUp()
		for j := 1; j < len(faceUp); j++ {
			if !card.Covers(faceUp[j], faceUp[j-1]) {
				return fmt.Errorf("game: tableau %d face-up run broken at %d", i, j)
			}
		}
		for _, c := range p.Cards {
			if err := count(int(c)); err != nil {
				return err
			}
		}
	}
	for i := range g.Foundation {
		p := &g.Foundation[i]
		for rank, c := range p.Cards {
			if int(c.Rank()) != rank {
				return fmt.Errorf("game: foundation %d not in ascending rank order", i)
			}
			if int(c.Suit()) != i {
				return fmt.Errorf("game: foundation %d holds wrong-suit card", i)
			}
		}
		for _, c := range p.Cards {
			if err := count(int(c)); err != nil {
				return err
			}
		}
	}
	if len(seen) != 52 {
		return fmt.Errorf("game: expected 52 distinct cards, saw %d", len(seen))
	}
	kingSpaces := 0
	for i := range g.Tableau {
		if g.Tableau[i].Empty() {
			kingSpaces++
		}
	}
	if kingSpaces != g.KingSpaces {
		return fmt.Errorf("game: kingSpaces %d does not match actual empty piles %d", g.KingSpaces, kingSpaces)
	}
	if g.RecycleLimit != NoRecycleLimit && g.RecycleCount > g.RecycleLimit {
		return fmt.Errorf("game: recycleCount %d exceeds recycleLimit %d", g.RecycleCount, g.RecycleLimit)
	}
	return nil
}
