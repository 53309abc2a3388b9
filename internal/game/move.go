package game

// Move is a packed move record, at most 32 bits, in one of two flavors:
//
//   - Non-talon: move nCards cards from one non-stock pile to another.
//     fromUpCount records from's face-up count before the move, the only
//     way to undo an auto-flip exactly.
//   - Talon: nMoves-1 draws/recycles of the talon followed by playing one
//     card from the new top of waste onto `to`. drawCount may be negative,
//     meaning the move "un-drew" past the start of this lookahead by
//     drawing backwards through a recycle.
//
// Bit layout mirrors the teacher's packed board.Move: a tag bit selects the
// variant, and each variant packs its fields into disjoint low bit ranges.
type Move uint32

const (
	kindBit = 31 // 0 = non-talon, 1 = talon

	ntFromShift = 0
	ntFromBits  = 4
	ntToShift   = 4
	ntToBits    = 4
	ntNCardShift = 8
	ntNCardBits  = 6
	ntUpShift    = 14
	ntUpBits     = 6
	ntFlipBit    = 20 // set when this move auto-flips from's new top card

	tToShift    = 0
	tToBits     = 4
	tMovesShift = 4
	tMovesBits  = 8
	tDrawShift  = 12
	tDrawBits   = 9 // signed, two's complement within these bits
	tRecycleBit = 21
)

func mask(bits uint) uint32 { return (uint32(1) << bits) - 1 }

// NewNonTalon builds a non-talon move. flip records whether this move
// auto-flips a face-down card on `from` (i.e. from.UpCount == nCards but
// from is not left entirely empty) — this is metadata for the ABC filter,
// which must stay a pure function of move history rather than needing to
// replay pile sizes.
func NewNonTalon(from, to PileCode, nCards, fromUpCount int, flip bool) Move {
	var m uint32
	m |= (uint32(from) & mask(ntFromBits)) << ntFromShift
	m |= (uint32(to) & mask(ntToBits)) << ntToShift
	m |= (uint32(nCards) & mask(ntNCardBits)) << ntNCardShift
	m |= (uint32(fromUpCount) & mask(ntUpBits)) << ntUpShift
	if flip {
		m |= 1 << ntFlipBit
	}
	return Move(m)
}

// Flip reports whether a non-talon move auto-flips a face-down card.
func (m Move) Flip() bool { return m&(1<<ntFlipBit) != 0 }

// NewTalon builds a talon move. drawCount may be negative.
func NewTalon(to PileCode, nMoves, drawCount int, recycle bool) Move {
	var m uint32
	m |= uint32(1) << kindBit
	m |= (uint32(to) & mask(tToBits)) << tToShift
	m |= (uint32(nMoves) & mask(tMovesBits)) << tMovesShift
	m |= (uint32(drawCount) & mask(tDrawBits)) << tDrawShift
	if recycle {
		m |= 1 << tRecycleBit
	}
	return Move(m)
}

// IsTalon reports whether m is a talon move.
func (m Move) IsTalon() bool { return m&(1<<kindBit) != 0 }

func field(m Move, shift, bits uint) uint32 {
	return (uint32(m) >> shift) & mask(bits)
}

// From returns the source pile of a non-talon move.
func (m Move) From() PileCode { return PileCode(field(m, ntFromShift, ntFromBits)) }

// To returns the destination pile (both variants).
func (m Move) To() PileCode {
	if m.IsTalon() {
		return PileCode(field(m, tToShift, tToBits))
	}
	return PileCode(field(m, ntToShift, ntToBits))
}

// NCards returns the number of cards a non-talon move relocates.
func (m Move) NCards() int { return int(field(m, ntNCardShift, ntNCardBits)) }

// FromUpCount returns from's pre-move face-up count for a non-talon move.
func (m Move) FromUpCount() int { return int(field(m, ntUpShift, ntUpBits)) }

// NMoves returns the external move count a talon move represents
// (nMoves-1 draws/recycles plus one play), or 1 for a non-talon move.
func (m Move) NMoves() int {
	if !m.IsTalon() {
		return 1
	}
	return int(field(m, tMovesShift, tMovesBits))
}

// DrawCount returns the signed number of stock->waste draws a talon move
// performs before playing; negative means the move un-draws instead.
func (m Move) DrawCount() int {
	raw := field(m, tDrawShift, tDrawBits)
	const signBit = uint32(1) << (tDrawBits - 1)
	if raw&signBit != 0 {
		return int(raw) - (1 << tDrawBits)
	}
	return int(raw)
}

// Recycle reports whether a talon move performs a waste->stock recycle.
func (m Move) Recycle() bool { return m&(1<<tRecycleBit) != 0 }

// MoveList is a small fixed-capacity move container sized for the largest
// plausible per-state candidate set, avoiding per-call allocation in the
// generator's hot path.
type MoveList struct {
	moves [64]Move
	n     int
}

// Add appends a move; it is the caller's responsibility not to exceed
// capacity (64 is generous for any reachable Klondike state).
func (l *MoveList) Add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// Get returns the move at index i.
func (l *MoveList) Get(i int) Move { return l.moves[i] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }

// Slice returns the stored moves as a plain slice (for APIs that need one;
// callers on the hot path should prefer Get/Len).
func (l *MoveList) Slice() []Move { return append([]Move(nil), l.moves[:l.n]...) }
