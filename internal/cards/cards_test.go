package cards

import (
	"errors"
	"testing"

	fcerrors "github.com/lgbarn/freecell-go/internal/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		number   int
		wantName string
		wantErr  bool
	}{
		{"lowest card", 0, "AC", false},
		{"ace of diamonds", 1, "AD", false},
		{"two of clubs", 4, "2C", false},
		{"queen of hearts", 46, "QH", false},
		{"highest card", 51, "KS", false},
		{"negative", -1, "", true},
		{"past end of deck", 52, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.number)
			if tt.wantErr {
				if !errors.Is(err, fcerrors.ErrInvalidCard) {
					t.Fatalf("New(%d) error = %v, want ErrInvalidCard", tt.number, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d) unexpected error: %v", tt.number, err)
			}
			if c.String() != tt.wantName {
				t.Errorf("New(%d) = %s, want %s", tt.number, c, tt.wantName)
			}
			if c.Number() != tt.number {
				t.Errorf("Number() = %d, want %d", c.Number(), tt.number)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNew(52) did not panic")
		}
	}()
	MustNew(52)
}

func TestRankSuitColour(t *testing.T) {
	tests := []struct {
		card       string
		wantRank   Rank
		wantSuit   Suit
		wantColour Colour
	}{
		{"AC", Ace, Clubs, Black},
		{"2D", Two, Diamonds, Red},
		{"TH", Ten, Hearts, Red},
		{"KS", King, Spades, Black},
		{"JD", Jack, Diamonds, Red},
	}

	for _, tt := range tests {
		t.Run(tt.card, func(t *testing.T) {
			c := MustParse(tt.card)
			if c.Rank() != tt.wantRank {
				t.Errorf("Rank() = %v, want %v", c.Rank(), tt.wantRank)
			}
			if c.Suit() != tt.wantSuit {
				t.Errorf("Suit() = %v, want %v", c.Suit(), tt.wantSuit)
			}
			if c.Colour() != tt.wantColour {
				t.Errorf("Colour() = %v, want %v", c.Colour(), tt.wantColour)
			}
			if c.IsRed() != (tt.wantColour == Red) {
				t.Errorf("IsRed() = %v", c.IsRed())
			}
		})
	}
}

func TestCardNumbering(t *testing.T) {
	for n := 0; n < DeckSize; n++ {
		c := MustNew(n)
		if got := int(c.Rank())*4 + int(c.Suit()); got != n {
			t.Errorf("card %d: rank*4+suit = %d", n, got)
		}
		back, err := FromRankSuit(c.Rank(), c.Suit())
		if err != nil || back != c {
			t.Errorf("FromRankSuit(%v, %v) = %v, %v; want %v", c.Rank(), c.Suit(), back, err, c)
		}
		parsed, err := Parse(c.String())
		if err != nil || parsed != c {
			t.Errorf("Parse(%q) = %v, %v; want %v", c.String(), parsed, err, c)
		}
	}
}

func TestCanStackOn(t *testing.T) {
	tests := []struct {
		card  string
		other string
		want  bool
	}{
		{"9H", "TS", true},
		{"9D", "TC", true},
		{"9S", "TH", true},
		{"9H", "TD", false}, // same colour
		{"9C", "TS", false}, // same colour
		{"8H", "TS", false}, // rank gap
		{"TH", "9S", false}, // wrong direction
		{"QD", "KC", true},
		{"AS", "2H", true},
		{"KS", "AH", false},
	}

	for _, tt := range tests {
		t.Run(tt.card+"_on_"+tt.other, func(t *testing.T) {
			got := MustParse(tt.card).CanStackOn(MustParse(tt.other))
			if got != tt.want {
				t.Errorf("%s.CanStackOn(%s) = %v, want %v", tt.card, tt.other, got, tt.want)
			}
		})
	}
}

func TestCanFollowInFoundation(t *testing.T) {
	tests := []struct {
		card  string
		other string
		want  bool
	}{
		{"2H", "AH", true},
		{"KS", "QS", true},
		{"2D", "AH", false},
		{"3H", "AH", false},
		{"AH", "2H", false},
	}

	for _, tt := range tests {
		t.Run(tt.card+"_on_"+tt.other, func(t *testing.T) {
			got := MustParse(tt.card).CanFollowInFoundation(MustParse(tt.other))
			if got != tt.want {
				t.Errorf("%s.CanFollowInFoundation(%s) = %v, want %v", tt.card, tt.other, got, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	c := MustParse("th")
	if c.String() != "TH" {
		t.Errorf("String() = %q", c.String())
	}
	if c.Glyph() != "T♥" {
		t.Errorf("Glyph() = %q", c.Glyph())
	}
	if c.LongName() != "Ten of Hearts" {
		t.Errorf("LongName() = %q", c.LongName())
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, name := range []string{"", "A", "1H", "AX", "10H", "ZZ"} {
		if _, err := Parse(name); !errors.Is(err, fcerrors.ErrInvalidCard) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidCard", name, err)
		}
	}
}

func TestDeck(t *testing.T) {
	deck := Deck()
	if len(deck) != 52 {
		t.Fatalf("len(Deck()) = %d, want 52", len(deck))
	}
	seen := make(map[Card]bool)
	for i, c := range deck {
		if int(c) != i {
			t.Errorf("deck[%d] = %d", i, c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("deck has %d distinct cards, want 52", len(seen))
	}
}

func TestColourOpposite(t *testing.T) {
	if Red.Opposite() != Black || Black.Opposite() != Red {
		t.Error("Opposite() is not symmetric")
	}
	if Red.String() != "Red" || Black.String() != "Black" {
		t.Error("unexpected colour names")
	}
}
