package board

import (
	"bufio"
	"strings"

	"github.com/lgbarn/freecell-go/internal/cards"
	"github.com/lgbarn/freecell-go/internal/errors"
)

// ParseLayout builds a board from a text layout. Each non-blank line is
// "<location>: <cards bottom to top>", for example
//
//	1: KS QH JC
//	a: 9D
//	H: AH 2H
//
// Locations are cascade digits, free cell letters or foundation suit
// letters. Lines starting with '#' are comments. The resulting board is
// validated before it is returned.
func ParseLayout(text string, opts ...Option) (*Board, error) {
	b := NewEmpty(opts...)
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		loc, rest, ok := strings.Cut(line, ":")
		loc = strings.TrimSpace(loc)
		if !ok || len(loc) != 1 {
			return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: lineNum, Expected: "<location>:", Got: line}
		}
		col := b.Column(loc[0])
		if col == nil {
			return nil, &errors.ParseError{Err: errors.ErrUnknownSource, Line: lineNum, Got: loc}
		}
		for _, name := range strings.Fields(rest) {
			card, err := cards.Parse(name)
			if err != nil {
				return nil, &errors.ParseError{Err: err, Line: lineNum, Expected: "card", Got: name}
			}
			col.Cards = append(col.Cards, card)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading layout")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// MustParseLayout is like ParseLayout but panics on error. For tests.
func MustParseLayout(text string, opts ...Option) *Board {
	b, err := ParseLayout(text, opts...)
	if err != nil {
		panic(err)
	}
	return b
}
