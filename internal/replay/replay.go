// Package replay expands a solved game's compact move list into the
// atomic, human-narratable steps a front end would print: every talon
// move becomes its individual draws, an optional recycle, and the final
// play, each carrying a running step number. Grounded on the teacher's
// board/san.go move-to-notation walk: replay a move list against a
// scratch position, maintaining running state, emitting one output
// record per semantic step.
package replay

import "github.com/arjunmenon/klondikesolve/internal/game"

// StepKind names the atomic action an XMove represents.
type StepKind int

const (
	Draw StepKind = iota
	Recycle
	Play
)

func (k StepKind) String() string {
	switch k {
	case Draw:
		return "draw"
	case Recycle:
		return "recycle"
	case Play:
		return "play"
	default:
		return "?"
	}
}

// XMove is one atomic, printable step of an expanded solution.
type XMove struct {
	Number int
	Kind   StepKind
	From   game.PileCode
	To     game.PileCode
	NCards int
	Flip   bool
}

// Expand replays moves against a scratch copy of start and returns the
// atomic step sequence a front end can print one line at a time. start is
// not mutated.
func Expand(start *game.Game, moves []game.Move) []XMove {
	scratch := start.Copy()
	var steps []XMove
	n := 0

	for _, m := range moves {
		if !m.IsTalon() {
			n++
			steps = append(steps, XMove{
				Number: n,
				Kind:   Play,
				From:   m.From(),
				To:     m.To(),
				NCards: m.NCards(),
				Flip:   m.Flip(),
			})
			scratch.MakeMove(m)
			continue
		}

		draws := m.DrawCount()
		if draws < 0 {
			// An "un-draw": the talon walk backed up through a recycle.
			// The atomic narration still only has forward steps, so a
			// negative drawCount collapses to a single recycle-and-redraw
			// step rather than literal negative draws.
			n++
			steps = append(steps, XMove{Number: n, Kind: Recycle, From: game.Waste, To: game.Stock})
		} else {
			// A recycling move first draws the whole remaining stock, then
			// recycles, then draws the rest of drawCount (as makeTalon does).
			preDraw := draws
			if m.Recycle() {
				preDraw = scratch.Stock.Size()
			}
			for i := 0; i < preDraw; i++ {
				n++
				steps = append(steps, XMove{Number: n, Kind: Draw, From: game.Stock, To: game.Waste})
			}
			if m.Recycle() {
				n++
				steps = append(steps, XMove{Number: n, Kind: Recycle, From: game.Waste, To: game.Stock})
			}
			for i := preDraw; i < draws; i++ {
				n++
				steps = append(steps, XMove{Number: n, Kind: Draw, From: game.Stock, To: game.Waste})
			}
		}
		n++
		steps = append(steps, XMove{Number: n, Kind: Play, From: game.Waste, To: m.To(), NCards: 1})

		scratch.MakeMove(m)
	}

	return steps
}
