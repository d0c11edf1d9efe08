package engine

import "github.com/lgbarn/freecell-go/internal/board"

// PossibleMoves lists every legal move on b. Sources are the cascades
// then the free cells; for each, destinations are tried in the same order
// followed by the foundation, written 'h'. Every free cell is listed by
// name rather than as '#'.
func PossibleMoves(b *board.Board) []string {
	var moves []string
	playable := b.Playable()
	for _, src := range playable {
		card, ok := src.Top()
		if !ok {
			continue
		}
		for _, dst := range playable {
			if dst == src {
				continue
			}
			if dst.TransferableRunLength(src, Capacity(b, dst)) > 0 {
				moves = append(moves, Move{Source: src.Location, Destination: dst.Location}.String())
			}
		}
		if b.FoundationFor(card).TransferableRunLength(src, 1) > 0 {
			moves = append(moves, Move{Source: src.Location, Destination: FoundationToken}.String())
		}
	}
	return moves
}

// HasLegalMoves returns true if at least one move is possible.
func HasLegalMoves(b *board.Board) bool {
	return len(PossibleMoves(b)) > 0
}
