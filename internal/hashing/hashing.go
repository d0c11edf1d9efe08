// Package hashing provides position fingerprints and repeated-position
// detection for FreeCell boards.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/cards"
)

// noParent stands for the table beneath the bottom card of a cascade.
const noParent = cards.DeckSize

var (
	// cascadeKeys[card][parent] is the key for card lying on parent.
	cascadeKeys [cards.DeckSize][cards.DeckSize + 1]uint64
	freeKeys    [cards.DeckSize]uint64
	// homeKeys[suit][height] is the key for a foundation of that height.
	homeKeys [cards.NumSuits][cards.NumRanks + 1]uint64
)

func init() {
	r := rand.New(rand.NewPCG(0x46726565, 0x43656c6c))
	for c := range cascadeKeys {
		for p := range cascadeKeys[c] {
			cascadeKeys[c][p] = r.Uint64()
		}
		freeKeys[c] = r.Uint64()
	}
	for s := range homeKeys {
		for h := range homeKeys[s] {
			homeKeys[s][h] = r.Uint64()
		}
	}
}

// Fingerprint returns a Zobrist hash of the card placement. Each cascade
// card is keyed by the card beneath it, so boards that differ only in
// the order of whole cascades, or of free cells, hash the same. Move
// counter and history are ignored.
func Fingerprint(b *board.Board) uint64 {
	var h uint64
	for _, c := range b.Cascades {
		parent := noParent
		for _, card := range c.Cards {
			h ^= cascadeKeys[card][parent]
			parent = card.Number()
		}
	}
	for _, c := range b.FreeCells {
		for _, card := range c.Cards {
			h ^= freeKeys[card]
		}
	}
	for _, f := range b.Foundations {
		h ^= homeKeys[f.Suit][f.Len()]
	}
	return h
}

// WeakHash packs the foundation heights and the number of cards in free
// cells. Equal fingerprints with different weak hashes are collisions.
func WeakHash(b *board.Board) uint32 {
	var h uint32
	for _, f := range b.Foundations {
		h = h<<4 | uint32(f.Len())
	}
	return h<<4 | uint32(b.FreeCells.CardCount())
}

// Signature identifies a position seen during a game.
type Signature struct {
	Hash uint64
	Weak uint32
	// MoveCounter when the position was first reached.
	MoveCounter int
}

// RepetitionDetector remembers every position of a game so a player
// going round in circles can be told.
type RepetitionDetector struct {
	seen        map[uint64][]Signature
	repeatCount int
}

// NewRepetitionDetector creates an empty detector.
func NewRepetitionDetector() *RepetitionDetector {
	return &RepetitionDetector{seen: make(map[uint64][]Signature)}
}

// CheckAndAdd records the current position. If it was seen before, it
// returns the move counter of the first visit and true.
func (d *RepetitionDetector) CheckAndAdd(b *board.Board) (firstSeen int, repeated bool) {
	sig := Signature{Hash: Fingerprint(b), Weak: WeakHash(b), MoveCounter: b.MoveCounter}
	for _, existing := range d.seen[sig.Hash] {
		if existing.Weak == sig.Weak {
			d.repeatCount++
			return existing.MoveCounter, true
		}
	}
	d.seen[sig.Hash] = append(d.seen[sig.Hash], sig)
	return 0, false
}

// RepeatCount returns the number of repeated positions detected.
func (d *RepetitionDetector) RepeatCount() int {
	return d.repeatCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *RepetitionDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.seen {
		count += len(sigs)
	}
	return count
}

// Reset clears the detector.
func (d *RepetitionDetector) Reset() {
	d.seen = make(map[uint64][]Signature)
	d.repeatCount = 0
}
