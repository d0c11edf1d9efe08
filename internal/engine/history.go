package engine

import "github.com/lgbarn/freecell-go/internal/board"

// CanUndo returns true if there is a move to undo.
func CanUndo(b *board.Board) bool {
	return len(b.UndoStack) > 0
}

// CanRedo returns true if there is an undone move to replay.
func CanRedo(b *board.Board) bool {
	return len(b.RedoStack) > 0
}

// LastMove returns the most recently applied move record.
func LastMove(b *board.Board) (board.MoveRecord, bool) {
	if len(b.UndoStack) == 0 {
		return board.MoveRecord{}, false
	}
	return b.UndoStack[len(b.UndoStack)-1], true
}

// Undo reverses moves until a checkpointed move has been reversed, so one
// call takes back a user move together with the auto-moves that followed
// it. Returns false if there is nothing to undo.
func Undo(b *board.Board) bool {
	if !CanUndo(b) {
		return false
	}
	for len(b.UndoStack) > 0 {
		rec := b.UndoStack[len(b.UndoStack)-1]
		b.UndoStack = b.UndoStack[:len(b.UndoStack)-1]

		b.Column(rec.Source).TransferFrom(b.Column(rec.Destination), rec.Count)
		b.MoveCounter = rec.CounterBefore
		b.RedoStack = append(b.RedoStack, rec)

		if rec.Checkpoint {
			break
		}
	}
	return true
}

// Redo replays undone moves up to, but not including, the next
// checkpointed move. Returns false if there is nothing to redo.
func Redo(b *board.Board) bool {
	if !CanRedo(b) {
		return false
	}
	for {
		rec := b.RedoStack[len(b.RedoStack)-1]
		b.RedoStack = b.RedoStack[:len(b.RedoStack)-1]

		b.Column(rec.Destination).TransferFrom(b.Column(rec.Source), rec.Count)
		b.MoveCounter = rec.CounterAfter
		b.UndoStack = append(b.UndoStack, rec)

		if len(b.RedoStack) == 0 || b.RedoStack[len(b.RedoStack)-1].Checkpoint {
			break
		}
	}
	return true
}
