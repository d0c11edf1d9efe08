package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/cards"
)

func cardOf(name string) cards.Card {
	return cards.MustParse(name)
}

func names(cs []cards.Card) string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return strings.Join(out, " ")
}

// play applies each move as a user move followed by its auto-moves. It
// stops at the first failure and returns the error.
func play(t *testing.T, b *board.Board, moves []string) error {
	t.Helper()
	for _, m := range moves {
		if err := ApplyMove(b, m, true); err != nil {
			return err
		}
		ApplyAutomaticMoves(b)
		if err := b.Validate(); err != nil {
			t.Fatalf("after %s: %v", m, err)
		}
	}
	return nil
}
