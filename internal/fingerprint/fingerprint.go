// Package fingerprint computes the 192-bit canonical game-state key used
// by the closed list: equal fingerprints mean equal states up to
// permutation of the seven tableau piles.
package fingerprint

import (
	"sort"

	"github.com/arjunmenon/klondikesolve/internal/game"
)

// Key is a 192-bit packed fingerprint, three 64-bit words.
type Key [3]uint64

const descBits = 22 // 6 bits suit|rank + 12 bits major-bitmap + 4 bits upCount

// Compute derives g's fingerprint: for each tableau pile, a descriptor
// (zero if empty of face-up cards); the seven descriptors sorted to
// collapse pile-order equivalence; then stock size and the four foundation
// sizes.
func Compute(g *game.Game) Key {
	var descs [7]uint32
	for i := range g.Tableau {
		descs[i] = descriptor(&g.Tableau[i])
	}
	sort.Slice(descs[:], func(i, j int) bool { return descs[i] < descs[j] })

	var words [3]uint64
	pos := 0
	for _, d := range descs {
		writeBits(&words, &pos, uint64(d), descBits)
	}
	writeBits(&words, &pos, uint64(g.Stock.Size()), 5)
	for i := range g.Foundation {
		writeBits(&words, &pos, uint64(g.Foundation[i].Size()), 4)
	}
	return Key(words)
}

// descriptor encodes a single tableau pile's face-up shape: the bottom
// face-up (anchor) card's suit and rank, a bitmap of the "major" bit
// (Suit.Major) of each other face-up card from deepest to shallowest, and
// the pile's upCount. The alternating-color rank ladder means this,
// together with the anchor, uniquely determines every face-up card's
// identity.
func descriptor(p *game.Pile) uint32 {
	if p.UpCount == 0 {
		return 0
	}
	anchor, _ := p.BottomFaceUp()
	suitRank := uint32(anchor.Suit())<<4 | uint32(anchor.Rank())

	faceUp := p.FaceUp()
	var bitmap uint32
	for k, c := range faceUp[1:] {
		if c.Suit().Major() {
			bitmap |= 1 << uint(k)
		}
	}
	return suitRank<<16 | bitmap<<4 | uint32(p.UpCount)
}

// writeBits writes the low nbits of value into words at bit offset *pos
// (0-indexed from the start of word 0), advancing *pos by nbits. Handles
// values that straddle a 64-bit word boundary.
func writeBits(words *[3]uint64, pos *int, value uint64, nbits int) {
	value &= (uint64(1) << uint(nbits)) - 1
	wordIdx := *pos / 64
	bitOff := uint(*pos % 64)
	words[wordIdx] |= value << bitOff
	if bitOff+uint(nbits) > 64 {
		overflow := bitOff + uint(nbits) - 64
		words[wordIdx+1] |= value >> (uint(nbits) - overflow)
	}
	*pos += nbits
}
