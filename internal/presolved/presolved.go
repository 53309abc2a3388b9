// Package presolved implements a fixed-record binary cache mapping a
// fingerprint to one or more previously-found good moves, with a
// weighted-random probe that verifies its pick against the currently
// legal moves before returning it. Grounded on the teacher's
// internal/book/book.go Polyglot reader almost directly: same
// {key, move, weight} record shape, same "collect candidates for this
// key, weighted-random select, verify against what's actually legal"
// probe algorithm — widened here from an 8-byte Zobrist key to the
// 24-byte fingerprint.Key this domain uses.
package presolved

import (
	"encoding/binary"
	"io"
	"math/rand"
	"os"

	"github.com/arjunmenon/klondikesolve/internal/fingerprint"
	"github.com/arjunmenon/klondikesolve/internal/game"
	"github.com/arjunmenon/klondikesolve/internal/movegen"
)

// Entry is one recommended move for a fingerprint, with a relative
// preference weight.
type Entry struct {
	Move   game.Move
	Weight uint16
}

// Book holds known-good moves for previously-seen states.
type Book struct {
	entries map[fingerprint.Key][]Entry
}

// New returns an empty book.
func New() *Book {
	return &Book{entries: make(map[fingerprint.Key][]Entry)}
}

const recordSize = 8*3 + 4 + 2 // three key words + packed move + weight

// Load reads a book file: a flat sequence of fixed-size records, each
// {24-byte key (three big-endian uint64 words), 4-byte big-endian packed
// move, 2-byte big-endian weight}.
func Load(filename string) (*Book, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads a book from an arbitrary reader, the same record
// format Load uses.
func LoadReader(r io.Reader) (*Book, error) {
	b := New()
	var rec [recordSize]byte
	for {
		_, err := io.ReadFull(r, rec[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		var key fingerprint.Key
		key[0] = binary.BigEndian.Uint64(rec[0:8])
		key[1] = binary.BigEndian.Uint64(rec[8:16])
		key[2] = binary.BigEndian.Uint64(rec[16:24])
		move := game.Move(binary.BigEndian.Uint32(rec[24:28]))
		weight := binary.BigEndian.Uint16(rec[28:30])
		b.entries[key] = append(b.entries[key], Entry{Move: move, Weight: weight})
	}
	return b, nil
}

// Add registers a known-good move for key, for callers building a book in
// memory (e.g. after a successful solve) rather than loading one from
// disk.
func (b *Book) Add(key fingerprint.Key, move game.Move, weight uint16) {
	b.entries[key] = append(b.entries[key], Entry{Move: move, Weight: weight})
}

// WriteTo serializes the book in the same fixed-record format LoadReader
// reads.
func (b *Book) WriteTo(w io.Writer) error {
	var rec [recordSize]byte
	for key, entries := range b.entries {
		binary.BigEndian.PutUint64(rec[0:8], key[0])
		binary.BigEndian.PutUint64(rec[8:16], key[1])
		binary.BigEndian.PutUint64(rec[16:24], key[2])
		for _, e := range entries {
			binary.BigEndian.PutUint32(rec[24:28], uint32(e.Move))
			binary.BigEndian.PutUint16(rec[28:30], e.Weight)
			if _, err := w.Write(rec[:]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Probe looks up g's current fingerprint and, if any candidate moves are
// known, picks one by weighted random selection and verifies it against
// the moves movegen would currently offer; a pick that fails verification
// is dropped and the weighted pick repeats over the remaining candidates
// until one verifies or the list is exhausted.
func (b *Book) Probe(g *game.Game, history []game.Move) (game.Move, bool) {
	if b == nil {
		return 0, false
	}
	key := fingerprint.Compute(g)
	entries, ok := b.entries[key]
	if !ok || len(entries) == 0 {
		return 0, false
	}

	legal := movegen.Generate(g, history, movegen.DefaultOptions())
	candidates := append([]Entry(nil), entries...)

	for len(candidates) > 0 {
		total := uint32(0)
		for _, e := range candidates {
			total += uint32(e.Weight) + 1 // +1 so a zero-weight entry can still be picked
		}
		r := rand.Uint32() % total
		var cumulative uint32
		pick := 0
		for i, e := range candidates {
			cumulative += uint32(e.Weight) + 1
			if r < cumulative {
				pick = i
				break
			}
		}

		m := candidates[pick].Move
		if isLegal(m, legal) {
			return m, true
		}
		candidates = append(candidates[:pick], candidates[pick+1:]...)
	}
	return 0, false
}

func isLegal(m game.Move, legal []game.Move) bool {
	for _, l := range legal {
		if l == m {
			return true
		}
	}
	return false
}
