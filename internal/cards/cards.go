// Package cards provides the playing card value type used by the freecell engine.
package cards

import (
	"fmt"

	"github.com/lgbarn/freecell-go/internal/errors"
)

// Colour represents the colour of a card.
type Colour int

const (
	Black Colour = iota
	Red
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == Red {
		return Black
	}
	return Red
}

// Suit represents a card suit, in Microsoft deal order.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NumSuits
)

var (
	suitNames   = []string{"Clubs", "Diamonds", "Hearts", "Spades"}
	suitLetters = []byte{'C', 'D', 'H', 'S'}
	suitGlyphs  = []string{"♣", "♦", "♥", "♠"}
)

// String returns the string representation of a suit.
func (s Suit) String() string {
	if s >= 0 && s < NumSuits {
		return suitNames[s]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a suit (uppercase).
func (s Suit) Letter() byte {
	if s >= 0 && s < NumSuits {
		return suitLetters[s]
	}
	return '?'
}

// Glyph returns the unicode suit symbol.
func (s Suit) Glyph() string {
	if s >= 0 && s < NumSuits {
		return suitGlyphs[s]
	}
	return "?"
}

// Colour returns Red for diamonds and hearts, Black otherwise.
func (s Suit) Colour() Colour {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Rank represents a card rank, Ace=0 through King=12.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	NumRanks
)

var (
	rankNames   = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}
	rankLetters = []byte("A23456789TJQK")
)

// String returns the string representation of a rank.
func (r Rank) String() string {
	if r >= 0 && r < NumRanks {
		return rankNames[r]
	}
	return "Unknown"
}

// Letter returns the single character used in short card names.
func (r Rank) Letter() byte {
	if r >= 0 && r < NumRanks {
		return rankLetters[r]
	}
	return '?'
}

// DeckSize is the number of cards in a deck.
const DeckSize = int(NumRanks) * int(NumSuits)

// Card is a playing card identified by its number rank*4 + suit.
// The numbering matches the Microsoft deal generator so no mapping
// layer is needed between dealing and play.
type Card uint8

// New returns the card with the given number (0-51).
func New(number int) (Card, error) {
	if number < 0 || number >= DeckSize {
		return 0, fmt.Errorf("card number %d: %w", number, errors.ErrInvalidCard)
	}
	return Card(number), nil
}

// MustNew is like New but panics on an out of range number.
// An out of range card is a programming error, never user input.
func MustNew(number int) Card {
	c, err := New(number)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRankSuit builds a card from its rank and suit.
func FromRankSuit(rank Rank, suit Suit) (Card, error) {
	if rank < Ace || rank >= NumRanks || suit < Clubs || suit >= NumSuits {
		return 0, fmt.Errorf("rank %d suit %d: %w", rank, suit, errors.ErrInvalidCard)
	}
	return Card(int(rank)*int(NumSuits) + int(suit)), nil
}

// Number returns the card number (0-51).
func (c Card) Number() int {
	return int(c)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(int(c) / int(NumSuits))
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(int(c) % int(NumSuits))
}

// Colour returns the card's colour.
func (c Card) Colour() Colour {
	return c.Suit().Colour()
}

// IsRed returns true for diamonds and hearts.
func (c Card) IsRed() bool {
	return c.Colour() == Red
}

// CanStackOn returns true if c may be placed directly on other in a cascade:
// opposite colour and rank exactly one less.
func (c Card) CanStackOn(other Card) bool {
	return c.Colour() != other.Colour() && c.Rank()+1 == other.Rank()
}

// CanFollowInFoundation returns true if c may be placed on other in a
// foundation: same suit and rank exactly one more.
func (c Card) CanFollowInFoundation(other Card) bool {
	return c.Suit() == other.Suit() && c.Rank() == other.Rank()+1
}

// String returns the two character name, e.g. "TH".
func (c Card) String() string {
	return string([]byte{c.Rank().Letter(), c.Suit().Letter()})
}

// Glyph returns the name with a suit symbol, e.g. "T♥".
func (c Card) Glyph() string {
	return string(c.Rank().Letter()) + c.Suit().Glyph()
}

// LongName returns e.g. "Ten of Hearts".
func (c Card) LongName() string {
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}

// Parse converts a two character name such as "TH" or "as" back to a card.
func Parse(name string) (Card, error) {
	if len(name) != 2 {
		return 0, fmt.Errorf("card name %q: %w", name, errors.ErrInvalidCard)
	}
	rank := Rank(-1)
	r := upper(name[0])
	for i, l := range rankLetters {
		if l == r {
			rank = Rank(i)
			break
		}
	}
	suit := Suit(-1)
	s := upper(name[1])
	for i, l := range suitLetters {
		if l == s {
			suit = Suit(i)
			break
		}
	}
	if rank < 0 || suit < 0 {
		return 0, fmt.Errorf("card name %q: %w", name, errors.ErrInvalidCard)
	}
	return FromRankSuit(rank, suit)
}

// MustParse is like Parse but panics on a bad name. Intended for tests
// and fixed layouts.
func MustParse(name string) Card {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Deck returns all 52 cards in number order.
func Deck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}
	return deck
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
