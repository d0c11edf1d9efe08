// Package engine implements FreeCell move rules on a board.Board: move
// notation, validation and application, supermove sizing, auto-moves,
// legal-move enumeration and undo/redo.
package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/errors"
)

// Reserved destination tokens.
const (
	// FoundationToken sends the source card to its suit's foundation.
	FoundationToken = 'h'

	// AnyFreeCellToken picks the first free cell able to take a card.
	AnyFreeCellToken = '#'
)

// Move is a move in standard notation: a source and a destination token.
type Move struct {
	Source      byte
	Destination byte
}

// String returns the two character notation.
func (m Move) String() string {
	return string([]byte{m.Source, m.Destination})
}

// ParseMove splits a move string into its two location tokens. Both
// must be ASCII.
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%q is not two characters: %w", s, errors.ErrMalformedMove)
	}
	if s[0] >= utf8.RuneSelf || s[1] >= utf8.RuneSelf {
		return Move{}, fmt.Errorf("%q is not ASCII: %w", s, errors.ErrMalformedMove)
	}
	return Move{Source: s[0], Destination: s[1]}, nil
}

// resolve maps a move's tokens to columns on b. It checks the source
// before the destination since 'h' depends on the source's top card.
func resolve(b *board.Board, m Move) (src, dst *board.Column, err error) {
	src = b.SourceColumn(m.Source)
	if src == nil {
		return nil, nil, fmt.Errorf("no cascade or free cell %q: %w", m.Source, errors.ErrUnknownSource)
	}
	card, ok := src.Top()
	if !ok {
		return nil, nil, fmt.Errorf("%c: %w", m.Source, errors.ErrEmptySource)
	}

	switch m.Destination {
	case FoundationToken:
		dst = b.FoundationFor(card)
	case AnyFreeCellToken:
		dst = b.FreeCells.FindForCard(card)
	default:
		dst = b.SourceColumn(m.Destination)
	}
	if dst == nil {
		return nil, nil, fmt.Errorf("no column for %q: %w", m.Destination, errors.ErrUnknownDestination)
	}
	return src, dst, nil
}
