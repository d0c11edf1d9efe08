package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/freecell-go/internal/board"
	fcerrors "github.com/lgbarn/freecell-go/internal/errors"
)

var (
	game10913 = strings.Fields("26 76 72 72 5a 27 57 67 1b 61 41 4h 4h 41 45 34 3c 6d 5b")

	game26693 = strings.Fields(`
		8a 81 2b 26 72 4c 45 74 78 76
		71 51 71 15 27 26 27 21 12 1d
		17 12 17 18 3h 13 d3 b1 81 68
		6b 5h 6h 68 2h ch 21 32 3c 3d
		38 43 52 85 86`)
)

func TestScenario(t *testing.T) {
	tests := []struct {
		name        string
		seed        int
		moves       []string
		wantCounter int
	}{
		{"game 10913", 10913, game10913, 69},
		{"game 26693", 26693, game26693, 92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.New(tt.seed, board.WithExemptTwos(true))
			require.NoError(t, play(t, b, tt.moves))
			assert.True(t, b.IsEmpty(), "board should be cleared:\n%s", b)
			assert.Equal(t, tt.wantCounter, b.MoveCounter)
			assert.False(t, HasLegalMoves(b))
		})
	}
}

// Published solutions assume twos go home automatically. Holding them
// back changes the position enough for the solution to break.
func TestScenario_AcesOnlyPolicy(t *testing.T) {
	tests := []struct {
		name     string
		seed     int
		moves    []string
		wantMove string
	}{
		{"game 10913", 10913, game10913, "72"},
		{"game 26693", 26693, game26693, "3h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board.New(tt.seed)
			err := play(t, b, tt.moves)
			require.ErrorIs(t, err, fcerrors.ErrIllegalMove)

			var merr *fcerrors.MoveError
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tt.wantMove, merr.MoveText)
			assert.Equal(t, tt.seed, merr.Seed)
		})
	}
}

func TestScenario_FirstMoves(t *testing.T) {
	b := board.New(10913, board.WithExemptTwos(true))

	require.NoError(t, ApplyMove(b, "26", true))
	assert.Equal(t, []string{"4h", "8h"}, ApplyAutomaticMoves(b))
	assert.Equal(t, 3, b.MoveCounter)

	require.NoError(t, play(t, b, []string{"76", "72", "72", "5a"}))
	require.NoError(t, ApplyMove(b, "27", true))
	rec, _ := LastMove(b)
	assert.Equal(t, 4, rec.Count, "27 is a four card supermove")
}

// Undoing a full game one user move at a time returns to the deal.
func TestScenario_UndoToDeal(t *testing.T) {
	b := board.New(10913, board.WithExemptTwos(true))
	dealt := b.SaveState()
	require.NoError(t, play(t, b, game10913))
	won := b.SaveState()

	undos := 0
	for Undo(b) {
		undos++
	}
	assert.Equal(t, len(game10913), undos)
	assert.Equal(t, dealt, b.SaveState())
	assert.Equal(t, 0, b.MoveCounter)
	assert.False(t, CanUndo(b))

	for Redo(b) {
	}
	assert.Equal(t, won, b.SaveState())
	assert.True(t, b.IsEmpty())
}
