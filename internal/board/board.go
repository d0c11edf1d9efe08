// Package board provides the FreeCell board: cascades, free cells and
// foundations, plus the move history the engine keeps on it.
package board

import (
	"fmt"
	"strings"

	"github.com/lgbarn/freecell-go/internal/cards"
	"github.com/lgbarn/freecell-go/internal/deal"
	"github.com/lgbarn/freecell-go/internal/errors"
)

// Location names. 'h' and '#' are reserved as move destinations.
const (
	CascadeNames  = "123456789"
	FreeCellNames = "abcdefg"

	DefaultCascades  = 8
	DefaultFreeCells = 4
)

// Policy controls the auto-mover's safety check.
type Policy struct {
	// IgnoreDependencies homes any eligible card without checking whether
	// another card on the board still needs it.
	IgnoreDependencies bool

	// ExemptTwos treats twos like aces: always safe to home. Solutions
	// written for Microsoft FreeCell assume this.
	ExemptTwos bool
}

// MoveRecord captures one applied move so it can be undone and redone.
type MoveRecord struct {
	Source        byte
	Destination   byte
	Count         int
	Checkpoint    bool // User-issued move; undo and redo stop here
	CounterBefore int
	CounterAfter  int
}

// Board holds all state for one game.
type Board struct {
	Cascades    ColumnGroup
	FreeCells   ColumnGroup
	Foundations ColumnGroup

	// Number of moves applied, auto-moves included.
	MoveCounter int

	UndoStack []MoveRecord
	RedoStack []MoveRecord

	Policy Policy

	// Deal number, 0 for a hand-built board.
	Seed int
}

type settings struct {
	cascades  int
	freeCells int
	policy    Policy
}

// Option configures a Board.
type Option func(*settings)

// WithCascades sets the number of cascades (1-9).
func WithCascades(n int) Option {
	return func(s *settings) {
		if n >= 1 && n <= len(CascadeNames) {
			s.cascades = n
		}
	}
}

// WithFreeCells sets the number of free cells (0-7).
func WithFreeCells(n int) Option {
	return func(s *settings) {
		if n >= 0 && n <= len(FreeCellNames) {
			s.freeCells = n
		}
	}
}

// WithIgnoreDependencies makes the auto-mover skip the safety check.
func WithIgnoreDependencies(ignore bool) Option {
	return func(s *settings) {
		s.policy.IgnoreDependencies = ignore
	}
}

// WithExemptTwos makes the auto-mover treat twos as always safe.
func WithExemptTwos(exempt bool) Option {
	return func(s *settings) {
		s.policy.ExemptTwos = exempt
	}
}

// NewEmpty creates a board with no cards dealt.
func NewEmpty(opts ...Option) *Board {
	s := settings{cascades: DefaultCascades, freeCells: DefaultFreeCells}
	for _, opt := range opts {
		opt(&s)
	}

	b := &Board{Policy: s.policy}
	for i := 0; i < s.cascades; i++ {
		b.Cascades = append(b.Cascades, NewColumn(Cascade, CascadeNames[i]))
	}
	for i := 0; i < s.freeCells; i++ {
		b.FreeCells = append(b.FreeCells, NewColumn(FreeCell, FreeCellNames[i]))
	}
	for suit := cards.Clubs; suit < cards.NumSuits; suit++ {
		b.Foundations = append(b.Foundations, NewFoundation(suit))
	}
	return b
}

// New creates a board and deals game seed into the cascades.
func New(seed int, opts ...Option) *Board {
	b := NewEmpty(opts...)
	b.Seed = seed
	for i, col := range deal.Columns(seed, len(b.Cascades)) {
		b.Cascades[i].Cards = col
	}
	return b
}

// Column returns the column named location in any group, or nil.
func (b *Board) Column(location byte) *Column {
	for _, g := range []ColumnGroup{b.Cascades, b.FreeCells, b.Foundations} {
		if c := g.Get(location); c != nil {
			return c
		}
	}
	return nil
}

// SourceColumn returns the cascade or free cell named location, or nil.
func (b *Board) SourceColumn(location byte) *Column {
	if c := b.Cascades.Get(location); c != nil {
		return c
	}
	return b.FreeCells.Get(location)
}

// FoundationFor returns the foundation of the card's suit.
func (b *Board) FoundationFor(card cards.Card) *Column {
	for _, c := range b.Foundations {
		if c.Suit == card.Suit() {
			return c
		}
	}
	return nil
}

// Playable returns the cascades followed by the free cells.
func (b *Board) Playable() ColumnGroup {
	all := make(ColumnGroup, 0, len(b.Cascades)+len(b.FreeCells))
	all = append(all, b.Cascades...)
	return append(all, b.FreeCells...)
}

// IsEmpty returns true when every card is on a foundation.
func (b *Board) IsEmpty() bool {
	return b.Cascades.CardCount() == 0 && b.FreeCells.CardCount() == 0
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	cp := *b
	cp.Cascades = b.Cascades.clone()
	cp.FreeCells = b.FreeCells.clone()
	cp.Foundations = b.Foundations.clone()
	cp.UndoStack = append([]MoveRecord(nil), b.UndoStack...)
	cp.RedoStack = append([]MoveRecord(nil), b.RedoStack...)
	return &cp
}

// State captures the card placement and move counter.
type State struct {
	Cascades    [][]cards.Card
	FreeCells   [][]cards.Card
	Foundations [][]cards.Card
	MoveCounter int
}

func groupCards(g ColumnGroup) [][]cards.Card {
	out := make([][]cards.Card, len(g))
	for i, c := range g {
		out[i] = append([]cards.Card{}, c.Cards...)
	}
	return out
}

func restoreGroup(g ColumnGroup, saved [][]cards.Card) {
	for i, c := range g {
		c.Cards = append(c.Cards[:0:0], saved[i]...)
	}
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() State {
	return State{
		Cascades:    groupCards(b.Cascades),
		FreeCells:   groupCards(b.FreeCells),
		Foundations: groupCards(b.Foundations),
		MoveCounter: b.MoveCounter,
	}
}

// RestoreState restores the board to a previously saved state. History
// is left alone.
func (b *Board) RestoreState(s State) {
	restoreGroup(b.Cascades, s.Cascades)
	restoreGroup(b.FreeCells, s.FreeCells)
	restoreGroup(b.Foundations, s.Foundations)
	b.MoveCounter = s.MoveCounter
}

// Validate checks the structural invariants: free cells hold at most one
// card, foundations are gapless same-suit runs from the ace, and no card
// appears twice.
func (b *Board) Validate() error {
	seen := make(map[cards.Card]byte)
	for _, g := range []ColumnGroup{b.Cascades, b.FreeCells, b.Foundations} {
		for _, c := range g {
			for i, card := range c.Cards {
				if loc, dup := seen[card]; dup {
					return fmt.Errorf("%s in %c and %c: %w", card, loc, c.Location, errors.ErrParseFailure)
				}
				seen[card] = c.Location
				if c.Kind == Foundation && (card.Suit() != c.Suit || int(card.Rank()) != i) {
					return fmt.Errorf("foundation %c holds %s at %d: %w", c.Location, card, i, errors.ErrParseFailure)
				}
			}
			if c.Kind == FreeCell && c.Len() > 1 {
				return fmt.Errorf("free cell %c holds %d cards: %w", c.Location, c.Len(), errors.ErrParseFailure)
			}
		}
	}
	return nil
}

// String returns a plain text picture of the board: free cells and
// foundation tops on the first line, then the cascades row by row.
func (b *Board) String() string {
	var sb strings.Builder
	top := func(c *Column) string {
		if card, ok := c.Top(); ok {
			return card.String()
		}
		return "--"
	}
	var head []string
	for _, c := range b.FreeCells {
		head = append(head, top(c))
	}
	head = append(head, "|")
	for _, c := range b.Foundations {
		head = append(head, top(c))
	}
	sb.WriteString(strings.Join(head, " "))
	sb.WriteByte('\n')

	for row := 0; row < b.Cascades.RowCount(); row++ {
		line := make([]string, len(b.Cascades))
		for i, c := range b.Cascades {
			if card, ok := c.CardAt(row); ok {
				line[i] = card.String()
			} else {
				line[i] = "  "
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
