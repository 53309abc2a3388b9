// Package game implements the pile/game-state model (make/unmake) and the
// packed Move representation.
package game

import "github.com/arjunmenon/klondikesolve/internal/card"

// PileCode identifies one of the thirteen piles a Game owns, used as the
// indexing scheme everywhere outside Game itself — no pointers into pile
// interiors ever cross the Game's lifetime boundary.
type PileCode uint8

const (
	Waste PileCode = iota
	Stock
	Tableau0
	Tableau1
	Tableau2
	Tableau3
	Tableau4
	Tableau5
	Tableau6
	Foundation0 // suit order: Clubs
	Foundation1 // Diamonds
	Foundation2 // Spades
	Foundation3 // Hearts
	numPiles
)

// TableauPile returns the pile code for tableau index i (0..6).
func TableauPile(i int) PileCode { return Tableau0 + PileCode(i) }

// IsTableau reports whether p is one of the seven tableau piles.
func (p PileCode) IsTableau() bool { return p >= Tableau0 && p <= Tableau6 }

// TableauIndex returns 0..6 for a tableau pile code; only valid when
// IsTableau() is true.
func (p PileCode) TableauIndex() int { return int(p - Tableau0) }

// IsFoundation reports whether p is one of the four foundation piles.
func (p PileCode) IsFoundation() bool { return p >= Foundation0 && p <= Foundation3 }

// FoundationSuit returns the suit a foundation pile is built for; only
// valid when IsFoundation() is true.
func (p PileCode) FoundationSuit() card.Suit { return card.Suit(p - Foundation0) }

// FoundationPile returns the pile code of the foundation for suit s.
func FoundationPile(s card.Suit) PileCode { return Foundation0 + PileCode(s) }

var pileNames = [...]string{
	Waste: "waste", Stock: "stock",
	Tableau0: "t0", Tableau1: "t1", Tableau2: "t2", Tableau3: "t3",
	Tableau4: "t4", Tableau5: "t5", Tableau6: "t6",
	Foundation0: "fC", Foundation1: "fD", Foundation2: "fS", Foundation3: "fH",
}

// String renders a pile code in the short form used by replay output.
func (p PileCode) String() string {
	if int(p) < len(pileNames) {
		return pileNames[p]
	}
	return "?"
}

// Pile is an ordered run of cards, tail = top. UpCount is meaningful only
// for tableau piles: the number of face-up cards counted from the top.
type Pile struct {
	Code    PileCode
	Cards   []card.Card
	UpCount int
}

// Size returns the number of cards in the pile.
func (p *Pile) Size() int { return len(p.Cards) }

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool { return len(p.Cards) == 0 }

// Top returns the top (last) card and true, or the zero Card and false if
// empty.
func (p *Pile) Top() (card.Card, bool) {
	if len(p.Cards) == 0 {
		return 0, false
	}
	return p.Cards[len(p.Cards)-1], true
}

// FaceUp returns the face-up portion of the pile, top-most card last. Only
// meaningful for tableau piles.
func (p *Pile) FaceUp() []card.Card {
	if p.UpCount == 0 {
		return nil
	}
	return p.Cards[len(p.Cards)-p.UpCount:]
}

// BottomFaceUp returns the deepest face-up card (the one a face-down card
// sits directly under), i.e. the card a King-move check or fingerprint
// descriptor anchors on.
func (p *Pile) BottomFaceUp() (card.Card, bool) {
	if p.UpCount == 0 {
		return 0, false
	}
	return p.Cards[len(p.Cards)-p.UpCount], true
}

func (p *Pile) push(c card.Card) {
	p.Cards = append(p.Cards, c)
}

func (p *Pile) pop() card.Card {
	n := len(p.Cards) - 1
	c := p.Cards[n]
	p.Cards = p.Cards[:n]
	return c
}

// clone returns a deep copy suitable for a worker's independent scratch
// game (see game.Copy).
func (p Pile) clone() Pile {
	cp := p
	cp.Cards = append([]card.Card(nil), p.Cards...)
	return cp
}
