package engine

import (
	"iter"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/cards"
)

// IsNeeded reports whether any card in the cascades or free cells could
// be stacked on card. Such a card should stay in play.
func IsNeeded(b *board.Board, card cards.Card) bool {
	for _, c := range b.Playable() {
		for _, other := range c.Cards {
			if other.CanStackOn(card) {
				return true
			}
		}
	}
	return false
}

// isSafe reports whether card may be homed without the player's say.
func isSafe(b *board.Board, card cards.Card) bool {
	switch {
	case card.Rank() == cards.Ace:
		return true
	case card.Rank() == cards.Two && b.Policy.ExemptTwos:
		return true
	case b.Policy.IgnoreDependencies:
		return true
	}
	return !IsNeeded(b, card)
}

// NextAutomaticMove returns the first safe foundation move, scanning the
// cascades then the free cells. ok is false when there is none.
func NextAutomaticMove(b *board.Board) (move string, ok bool) {
	for _, c := range b.Playable() {
		card, exposed := c.Top()
		if !exposed {
			continue
		}
		if !b.FoundationFor(card).CanAcceptCard(card) {
			continue
		}
		if isSafe(b, card) {
			return Move{Source: c.Location, Destination: FoundationToken}.String(), true
		}
	}
	return "", false
}

// AutomaticMoves yields safe foundation moves one at a time. The caller
// applies each yielded move before asking for the next; the board is
// rescanned every time. The sequence ends when no safe move is left or
// the caller did not apply the last one.
func AutomaticMoves(b *board.Board) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			move, ok := NextAutomaticMove(b)
			if !ok {
				return
			}
			before := b.MoveCounter
			if !yield(move) {
				return
			}
			if b.MoveCounter == before {
				return
			}
		}
	}
}

// ApplyAutomaticMoves applies every safe foundation move without
// checkpoints and returns them in order.
func ApplyAutomaticMoves(b *board.Board) []string {
	var applied []string
	for move := range AutomaticMoves(b) {
		if err := ApplyMove(b, move, false); err != nil {
			break
		}
		applied = append(applied, move)
	}
	return applied
}
