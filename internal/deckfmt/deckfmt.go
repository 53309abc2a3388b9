// Package deckfmt implements the three interchangeable deck text encodings
// a conforming front end may use to hand a deal to the core, plus the
// seeded numeric deal used for reproducible random games. Grounded on the
// teacher's board.ParseFEN tokenizer shape: split on a small fixed
// delimiter set, validate each token, build a typed result.
package deckfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arjunmenon/klondikesolve/internal/card"
)

// ParseHuman parses the human-readable form: 52 whitespace-separated
// two/three-character card tokens in card.FromString's format, e.g.
// "ca c8 da d6 ...". This is the same grammar card.ParseDeck already
// accepts; ParseHuman is the named front-end entry point for it.
func ParseHuman(s string) (card.Deck, error) {
	return card.ParseDeck(s)
}

// ParsePySol parses PySol's dotted/indexed deal notation: 52
// comma-or-whitespace-separated tokens of the form "<rank><suit>" where
// rank is one of A,2-9,T,J,Q,K and suit one of C,D,H,S, identical in
// content to the human form but conventionally comma-separated and
// upper-cased. Accepted as an alias since the two grammars overlap
// entirely once delimiters are normalized.
func ParsePySol(s string) (card.Deck, error) {
	normalized := strings.Map(func(r rune) rune {
		if r == ',' || r == ';' {
			return ' '
		}
		return r
	}, s)
	return card.ParseDeck(normalized)
}

// ParseNumeric parses a deck given as 52 whitespace-separated integers in
// 0..51, each the packed card.Card value (Suit*13 + Rank).
func ParseNumeric(s string) (card.Deck, error) {
	var d card.Deck
	fields := strings.Fields(s)
	if len(fields) != card.NumCards {
		return d, fmt.Errorf("deckfmt: expected %d numeric cards, got %d", card.NumCards, len(fields))
	}
	seen := make(map[card.Card]bool, card.NumCards)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n >= card.NumCards {
			return d, fmt.Errorf("deckfmt: invalid numeric card %q", f)
		}
		c := card.Card(n)
		if seen[c] {
			return d, fmt.Errorf("deckfmt: duplicate card %d", n)
		}
		seen[c] = true
		d[i] = c
	}
	return d, nil
}

// Seeded returns the deterministic shuffled deck for seed, delegating to
// card.NumberedDeal.
func Seeded(seed uint64) card.Deck {
	return card.NumberedDeal(seed)
}

// Format identifies which of the three text encodings to use.
type Format int

const (
	Human Format = iota
	PySol
	Numeric
)

// Parse dispatches to the format-specific parser.
func Parse(format Format, s string) (card.Deck, error) {
	switch format {
	case Human:
		return ParseHuman(s)
	case PySol:
		return ParsePySol(s)
	case Numeric:
		return ParseNumeric(s)
	default:
		return card.Deck{}, fmt.Errorf("deckfmt: unknown format %d", format)
	}
}
