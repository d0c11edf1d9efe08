package engine

import (
	"fmt"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/errors"
)

// Capacity returns how many cards may move as one unit onto dst:
// (1 + empty free cells) * 2^(empty cascades). An empty destination
// cascade does not count, since the move fills it.
func Capacity(b *board.Board, dst *board.Column) int {
	emptyFree := b.FreeCells.EmptyCount(nil)
	emptyCascades := b.Cascades.EmptyCount(dst)
	return (1 + emptyFree) << emptyCascades
}

// ApplyMove validates and applies a move in standard notation. A
// checkpointed move is a user move: undo and redo stop at it.
//
// On failure the board is unchanged and the error is a *errors.MoveError
// wrapping ErrMalformedMove, ErrUnknownSource, ErrEmptySource,
// ErrUnknownDestination or ErrIllegalMove.
func ApplyMove(b *board.Board, move string, checkpoint bool) error {
	m, err := ParseMove(move)
	if err != nil {
		return moveError(b, move, err)
	}
	if _, err := apply(b, m, checkpoint); err != nil {
		return moveError(b, move, err)
	}
	return nil
}

// apply moves the largest run dst accepts and returns its length.
func apply(b *board.Board, m Move, checkpoint bool) (int, error) {
	src, dst, err := resolve(b, m)
	if err != nil {
		return 0, err
	}

	count := dst.TransferableRunLength(src, Capacity(b, dst))
	if count == 0 {
		return 0, fmt.Errorf("%c to %c: %w", src.Location, dst.Location, errors.ErrIllegalMove)
	}

	dst.TransferFrom(src, count)
	b.MoveCounter++
	b.UndoStack = append(b.UndoStack, board.MoveRecord{
		Source:        src.Location,
		Destination:   dst.Location,
		Count:         count,
		Checkpoint:    checkpoint,
		CounterBefore: b.MoveCounter - 1,
		CounterAfter:  b.MoveCounter,
	})
	b.RedoStack = b.RedoStack[:0]
	return count, nil
}

func moveError(b *board.Board, move string, err error) error {
	return &errors.MoveError{
		Err:      err,
		Seed:     b.Seed,
		MoveNum:  b.MoveCounter,
		MoveText: move,
	}
}
