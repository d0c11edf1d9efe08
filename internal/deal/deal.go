// Package deal reproduces the Microsoft FreeCell deals.
//
// The generator is the linear congruential generator of the Microsoft C
// runtime: state = state*214013 + 2531011 mod 2^31, output state >> 16.
package deal

import "github.com/lgbarn/freecell-go/internal/cards"

const (
	multiplier = 214013
	increment  = 2531011
	modulus    = 1 << 31
)

// Generator is a Microsoft C runtime compatible rand().
type Generator struct {
	state uint32
}

// NewGenerator returns a generator seeded with seed (srand).
func NewGenerator(seed int) *Generator {
	return &Generator{state: uint32(seed) % modulus}
}

// Rand returns the next value in 0..32767.
func (g *Generator) Rand() int {
	g.state = (g.state*multiplier + increment) % modulus
	return int(g.state >> 16)
}

// Shuffle returns the 52 cards in the order they are dealt for game seed.
// Each draw picks rand() % remaining from the pool and fills the hole with
// the last card of the pool.
func Shuffle(seed int) []cards.Card {
	g := NewGenerator(seed)
	pool := cards.Deck()
	dealt := make([]cards.Card, 0, len(pool))
	for left := len(pool); left > 0; left-- {
		idx := g.Rand() % left
		dealt = append(dealt, pool[idx])
		pool[idx] = pool[left-1]
	}
	return dealt
}

// Columns deals game seed round-robin into n columns, returning each
// column bottom to top.
func Columns(seed, n int) [][]cards.Card {
	if n < 1 {
		n = 1
	}
	cols := make([][]cards.Card, n)
	for i, c := range Shuffle(seed) {
		cols[i%n] = append(cols[i%n], c)
	}
	return cols
}
