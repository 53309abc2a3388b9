package game

import "github.com/arjunmenon/klondikesolve/internal/card"

// NoRecycleLimit marks an unbounded recycleLimit.
const NoRecycleLimit = -1

// Game is the full Klondike state: seven tableau piles, four foundation
// piles, stock, waste, and the settings that shape legal play.
//
// Lifecycle is linear: deal, then any number of MakeMove/UnMakeMove calls,
// with no other observable intermediate states.
type Game struct {
	Tableau [7]Pile
	Foundation [4]Pile
	Stock   Pile
	Waste   Pile

	DrawSetting         int
	TalonLookAheadLimit int
	RecycleLimit        int // NoRecycleLimit for unbounded
	RecycleCount        int
	KingSpaces          int
}

// NewGame deals deck into a fresh Game: pile i of the tableau receives i+1
// cards (top card face up), the remaining 24 go to stock.
func NewGame(deck card.Deck, drawSetting, talonLookAheadLimit, recycleLimit int) *Game {
	g := &Game{
		DrawSetting:         drawSetting,
		TalonLookAheadLimit: talonLookAheadLimit,
		RecycleLimit:        recycleLimit,
	}
	g.Waste.Code = Waste
	g.Stock.Code = Stock
	for i := range g.Tableau {
		g.Tableau[i].Code = TableauPile(i)
	}
	for s := card.Suit(0); s < 4; s++ {
		g.Foundation[s].Code = FoundationPile(s)
	}

	idx := 0
	for i := 0; i < 7; i++ {
		for k := 0; k <= i; k++ {
			g.Tableau[i].Cards = append(g.Tableau[i].Cards, deck[idx])
			idx++
		}
		g.Tableau[i].UpCount = 1
		if len(g.Tableau[i].Cards) == 0 {
			g.KingSpaces++
		}
	}
	g.Stock.Cards = append(g.Stock.Cards, deck[idx:]...)
	return g
}

// Pile returns a pointer to the pile identified by code.
func (g *Game) Pile(code PileCode) *Pile {
	switch {
	case code == Waste:
		return &g.Waste
	case code == Stock:
		return &g.Stock
	case code.IsTableau():
		return &g.Tableau[code.TableauIndex()]
	case code.IsFoundation():
		return &g.Foundation[code.FoundationSuit()]
	default:
		panic("game: invalid pile code")
	}
}

// Copy returns a deep, independent copy suitable for a worker's own scratch
// game (replay happens on a private Game per worker, per spec §5).
func (g *Game) Copy() *Game {
	cp := *g
	for i := range g.Tableau {
		cp.Tableau[i] = g.Tableau[i].clone()
	}
	for i := range g.Foundation {
		cp.Foundation[i] = g.Foundation[i].clone()
	}
	cp.Stock = g.Stock.clone()
	cp.Waste = g.Waste.clone()
	return &cp
}

// Won reports whether all four foundations are complete (13 cards each).
func (g *Game) Won() bool {
	for i := range g.Foundation {
		if len(g.Foundation[i].Cards) != 13 {
			return false
		}
	}
	return true
}

// MakeMove mutates g according to m. See UnMakeMove for the exact inverse.
func (g *Game) MakeMove(m Move) {
	if m.IsTalon() {
		g.makeTalon(m)
	} else {
		g.makeNonTalon(m)
	}
}

// UnMakeMove exactly reverses MakeMove(m), including restoring upCount
// before any auto-flip it caused.
func (g *Game) UnMakeMove(m Move) {
	if m.IsTalon() {
		g.unmakeTalon(m)
	} else {
		g.unmakeNonTalon(m)
	}
}

func (g *Game) makeNonTalon(m Move) {
	from := g.Pile(m.From())
	to := g.Pile(m.To())
	n := m.NCards()

	moved := from.Cards[len(from.Cards)-n:]
	to.Cards = append(to.Cards, moved...)
	from.Cards = from.Cards[:len(from.Cards)-n]

	if from.Code.IsTableau() {
		from.UpCount -= n
		if len(from.Cards) == 0 {
			g.KingSpaces++
		} else if from.UpCount == 0 {
			from.UpCount = 1 // auto-flip
		}
	}
	if to.Code.IsTableau() {
		to.UpCount += n
	}
}

func (g *Game) unmakeNonTalon(m Move) {
	from := g.Pile(m.From())
	to := g.Pile(m.To())
	n := m.NCards()

	emptyBefore := len(from.Cards) == 0

	moved := to.Cards[len(to.Cards)-n:]
	from.Cards = append(from.Cards, moved...)
	to.Cards = to.Cards[:len(to.Cards)-n]

	if to.Code.IsTableau() {
		to.UpCount -= n
	}
	if from.Code.IsTableau() {
		if emptyBefore {
			g.KingSpaces--
		}
		from.UpCount = m.FromUpCount()
	}
}

// makeTalon applies drawCount draws, an optional recycle, and plays the new
// top of waste onto `to`. drawCount is the *total* number of cards drawn
// over the move, matching movegen/talon.go's walk: when recycle is set, the
// walk always drew the entirety of the original stock first (that's what
// triggers the recycle), then continued drawing from the freshly recycled
// stock. So the pre-recycle batch is exactly the stock size at the start of
// this move, and the remainder comes after recycleWasteToStock.
func (g *Game) makeTalon(m Move) {
	dc := m.DrawCount()
	if dc < 0 {
		for i := 0; i < -dc; i++ {
			g.Stock.push(g.Waste.pop())
		}
	} else {
		preDraw := dc
		if m.Recycle() {
			preDraw = g.Stock.Size()
		}
		for i := 0; i < preDraw; i++ {
			g.Waste.push(g.Stock.pop())
		}
		if m.Recycle() {
			g.recycleWasteToStock()
			for i := 0; i < dc-preDraw; i++ {
				g.Waste.push(g.Stock.pop())
			}
		}
	}
	played := g.Waste.pop()
	to := g.Pile(m.To())
	to.push(played)
	if to.Code.IsTableau() {
		to.UpCount++
	}
}

// unmakeTalon is the exact inverse of makeTalon, undoing in reverse order:
// the play, then the post-recycle draws, then the recycle, then the
// pre-recycle draws.
func (g *Game) unmakeTalon(m Move) {
	to := g.Pile(m.To())
	if to.Code.IsTableau() {
		to.UpCount--
	}
	played := to.pop()
	g.Waste.push(played)

	dc := m.DrawCount()
	if dc < 0 {
		for i := 0; i < -dc; i++ {
			g.Waste.push(g.Stock.pop())
		}
		return
	}

	preDraw := dc
	if m.Recycle() {
		// Waste currently holds exactly the cards drawn after the recycle
		// (the play was just restored to its top), so its size is postDraw.
		postDraw := g.Waste.Size()
		preDraw = dc - postDraw
		for i := 0; i < postDraw; i++ {
			g.Stock.push(g.Waste.pop())
		}
		g.recycleStockToWaste()
	}
	for i := 0; i < preDraw; i++ {
		g.Stock.push(g.Waste.pop())
	}
}

// recycleWasteToStock moves all of waste back onto stock, reversed so that
// re-drawing reproduces the original stock order.
func (g *Game) recycleWasteToStock() {
	n := len(g.Waste.Cards)
	for i := 0; i < n; i++ {
		g.Stock.push(g.Waste.Cards[n-1-i])
	}
	g.Waste.Cards = g.Waste.Cards[:0]
	g.RecycleCount++
}

// recycleStockToWaste is the exact inverse of recycleWasteToStock.
func (g *Game) recycleStockToWaste() {
	n := len(g.Stock.Cards)
	for i := 0; i < n; i++ {
		g.Waste.push(g.Stock.Cards[n-1-i])
	}
	g.Stock.Cards = g.Stock.Cards[:0]
	g.RecycleCount--
}
