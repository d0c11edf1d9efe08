package board

import (
	"github.com/lgbarn/freecell-go/internal/cards"
)

// Kind selects the acceptance rule of a column.
type Kind int

const (
	Cascade Kind = iota
	FreeCell
	Foundation
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Cascade", "FreeCell", "Foundation"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Column is an ordered stack of cards, bottom first. Only the top
// (last) card can be removed or covered.
type Column struct {
	Kind     Kind
	Location byte
	Suit     cards.Suit // Foundations only
	Cards    []cards.Card
}

// NewColumn creates an empty column.
func NewColumn(kind Kind, location byte) *Column {
	return &Column{Kind: kind, Location: location}
}

// NewFoundation creates an empty foundation for suit.
func NewFoundation(suit cards.Suit) *Column {
	return &Column{Kind: Foundation, Location: suit.Letter(), Suit: suit}
}

// Len returns the number of cards in the column.
func (c *Column) Len() int {
	return len(c.Cards)
}

// IsEmpty returns true if the column holds no cards.
func (c *Column) IsEmpty() bool {
	return len(c.Cards) == 0
}

// Top returns the top card. ok is false for an empty column.
func (c *Column) Top() (card cards.Card, ok bool) {
	if len(c.Cards) == 0 {
		return 0, false
	}
	return c.Cards[len(c.Cards)-1], true
}

// CardAt returns the card at row (0 = bottom). ok is false past the top.
func (c *Column) CardAt(row int) (card cards.Card, ok bool) {
	if row < 0 || row >= len(c.Cards) {
		return 0, false
	}
	return c.Cards[row], true
}

// capacity returns how many more cards a single move may place here.
func (c *Column) capacity() int {
	switch c.Kind {
	case FreeCell:
		return 1 - len(c.Cards)
	case Foundation:
		// Foundations are built one card at a time.
		return 1
	default:
		return cards.DeckSize
	}
}

// CanAcceptCard reports whether card may be placed on this column.
func (c *Column) CanAcceptCard(card cards.Card) bool {
	top, ok := c.Top()
	switch c.Kind {
	case FreeCell:
		return !ok
	case Foundation:
		if !ok {
			return card.Rank() == cards.Ace && card.Suit() == c.Suit
		}
		return card.CanFollowInFoundation(top)
	default:
		if !ok {
			return true
		}
		return card.CanStackOn(top)
	}
}

// MovableRunLength returns the length of the maximal ordered suffix:
// descending rank with alternating colours, scanned from the top down.
// Foundations never expose a run.
func (c *Column) MovableRunLength() int {
	if c.Kind == Foundation || len(c.Cards) == 0 {
		return 0
	}
	n := 1
	for i := len(c.Cards) - 1; i > 0; i-- {
		if !c.Cards[i].CanStackOn(c.Cards[i-1]) {
			break
		}
		n++
	}
	return n
}

// MovableRun returns the movable suffix, bottom first. The slice aliases
// the column and must not be modified.
func (c *Column) MovableRun() []cards.Card {
	n := c.MovableRunLength()
	return c.Cards[len(c.Cards)-n:]
}

// TransferableRunLength returns the largest k, limited by the source's
// movable run, budget and this column's capacity, such that the card k
// positions from the top of src can land here. Larger runs are tried
// first: an empty cascade accepts a run starting at any card. Returns 0
// when nothing fits.
func (c *Column) TransferableRunLength(src *Column, budget int) int {
	if src == c {
		return 0
	}
	k := min(src.MovableRunLength(), budget, c.capacity())
	for ; k > 0; k-- {
		if c.CanAcceptCard(src.Cards[len(src.Cards)-k]) {
			return k
		}
	}
	return 0
}

// TransferFrom moves the top count cards of src onto this column,
// keeping their order. The caller validates count first.
func (c *Column) TransferFrom(src *Column, count int) {
	n := len(src.Cards)
	c.Cards = append(c.Cards, src.Cards[n-count:]...)
	src.Cards = src.Cards[:n-count]
}

// clone returns a deep copy of the column.
func (c *Column) clone() *Column {
	cp := *c
	cp.Cards = append([]cards.Card(nil), c.Cards...)
	return &cp
}

// ColumnGroup is an ordered set of columns of one kind.
type ColumnGroup []*Column

// Get returns the column at location, or nil.
func (g ColumnGroup) Get(location byte) *Column {
	for _, c := range g {
		if c.Location == location {
			return c
		}
	}
	return nil
}

// FindForCard returns the first column that accepts card, or nil.
func (g ColumnGroup) FindForCard(card cards.Card) *Column {
	for _, c := range g {
		if c.CanAcceptCard(card) {
			return c
		}
	}
	return nil
}

// EmptyCount returns the number of empty columns, not counting exclude.
func (g ColumnGroup) EmptyCount(exclude *Column) int {
	n := 0
	for _, c := range g {
		if c != exclude && c.IsEmpty() {
			n++
		}
	}
	return n
}

// RowCount returns the length of the longest column.
func (g ColumnGroup) RowCount() int {
	longest := 0
	for _, c := range g {
		longest = max(longest, c.Len())
	}
	return longest
}

// CardCount returns the total number of cards in the group.
func (g ColumnGroup) CardCount() int {
	n := 0
	for _, c := range g {
		n += c.Len()
	}
	return n
}

// Locations returns the location tokens in order.
func (g ColumnGroup) Locations() string {
	locs := make([]byte, len(g))
	for i, c := range g {
		locs[i] = c.Location
	}
	return string(locs)
}

func (g ColumnGroup) clone() ColumnGroup {
	cp := make(ColumnGroup, len(g))
	for i, c := range g {
		cp[i] = c.clone()
	}
	return cp
}
