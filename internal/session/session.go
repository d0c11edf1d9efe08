// Package session plays one FreeCell game: supplied moves first, then
// moves read from the player, with undo, redo and the auto-mover.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/config"
	"github.com/lgbarn/freecell-go/internal/engine"
	"github.com/lgbarn/freecell-go/internal/errors"
	"github.com/lgbarn/freecell-go/internal/hashing"
	"github.com/lgbarn/freecell-go/internal/output"
)

// Player commands.
const (
	UndoCommand = "u"
	RedoCommand = "r"
)

// Result summarises a played game.
type Result struct {
	Seed      int
	Completed bool
	MoveCount int
}

// Session holds the streams and settings for playing games.
type Session struct {
	ID string

	cfg     *config.Config
	out     io.Writer
	in      *bufio.Scanner
	moveLog io.Writer
	style   output.Style
	log     zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithMoveLog records every move and command to w.
func WithMoveLog(w io.Writer) Option {
	return func(s *Session) {
		s.moveLog = w
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// New creates a session writing to cfg.OutputFile and reading player
// moves from cfg.InputFrom.
func New(cfg *config.Config, opts ...Option) *Session {
	s := &Session{
		ID:    uuid.NewV4().String(),
		cfg:   cfg,
		out:   cfg.OutputFile,
		style: output.StyleFor(cfg.Output),
		log:   zerolog.Nop(),
	}
	if cfg.InputFrom != nil {
		s.in = bufio.NewScanner(cfg.InputFrom)
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("session_id", s.ID).Logger()
	return s
}

// game is the state of one Play call.
type game struct {
	*Session
	seed    int
	board   *board.Board
	printer output.Printer
	repeats *hashing.RepetitionDetector
	log     zerolog.Logger
}

// Play deals game seed and plays it. moves are applied first, then moves
// are read from the input until the game is won. A supplied move that
// fails ends the game with ErrGameFailed; a failed player move is
// reported and the prompt repeats.
func (s *Session) Play(seed int, moves []string) (Result, error) {
	g := &game{
		Session: s,
		seed:    seed,
		board:   board.New(seed, s.cfg.Rules.BoardOptions()...),
		printer: output.New(s.out, s.cfg.Output),
		repeats: hashing.NewRepetitionDetector(),
		log:     s.log.With().Int("game", seed).Logger(),
	}
	g.log.Info().Int("supplied_moves", len(moves)).Msg("game started")

	fmt.Fprintf(s.out, "\n*** Game #%d ***\n\n", seed)
	g.printer.PrintBoard(g.board)
	g.repeats.CheckAndAdd(g.board)

	err := g.run(moves)
	if flushErr := g.printer.Flush(); err == nil {
		err = flushErr
	}
	result := Result{Seed: seed, Completed: err == nil, MoveCount: g.board.MoveCounter}
	if err != nil {
		g.log.Warn().Err(err).Int("moves", result.MoveCount).Msg("game failed")
		return result, err
	}

	fmt.Fprintf(s.out, "\n*** Completed Game #%d ***\n\n", seed)
	g.log.Info().Int("moves", result.MoveCount).Msg("game completed")
	return result, nil
}

func (g *game) run(moves []string) error {
	for !g.board.IsEmpty() {
		var move string
		supplied := false
		for len(moves) > 0 && !supplied {
			move = strings.TrimSpace(moves[0])
			moves = moves[1:]
			supplied = move != ""
		}

		if !supplied {
			var err error
			if move, err = g.prompt(); err != nil {
				return err
			}
		}
		g.record(move)

		switch move {
		case UndoCommand:
			if !engine.Undo(g.board) {
				fmt.Fprintln(g.out, "Nothing to undo")
				continue
			}
			g.printer.PrintBoard(g.board)
			continue
		case RedoCommand:
			if !engine.Redo(g.board) {
				fmt.Fprintln(g.out, "Nothing to redo")
				continue
			}
			g.printer.PrintBoard(g.board)
			continue
		}

		kind, colour := "manual", output.FgGreen
		if supplied {
			kind, colour = "supplied", output.FgYellow
		}
		g.printer.PrintHeader(g.style.Paint(colour, fmt.Sprintf("# %d. %s-move: %s", g.board.MoveCounter, kind, move)))

		if err := engine.ApplyMove(g.board, move, true); err != nil {
			g.log.Warn().Err(err).Str("move", move).Bool("supplied", supplied).Msg("move rejected")
			if supplied {
				g.printer.Flush()
				fmt.Fprintf(g.out, "*** Failed Game #%d ***\n", g.seed)
				return fmt.Errorf("%w: %w", errors.ErrGameFailed, err)
			}
			// No auto-moves after an error, so a bad first move cannot
			// start the game.
			fmt.Fprintf(g.out, "*** %v ***\n", err)
			continue
		}
		g.printer.PrintBoard(g.board)

		if !g.cfg.Rules.NoAutoMoves {
			g.autoMoves()
		}
		if first, repeated := g.repeats.CheckAndAdd(g.board); repeated {
			g.log.Debug().Int("move", g.board.MoveCounter).Int("first_seen", first).Msg("position repeated")
		}
	}
	return nil
}

func (g *game) autoMoves() {
	for move := range engine.AutomaticMoves(g.board) {
		g.printer.PrintHeader(g.style.Paint(output.FgRed, fmt.Sprintf("# %d. auto-move: %s", g.board.MoveCounter, move)))
		if err := engine.ApplyMove(g.board, move, false); err != nil {
			// The auto-mover only proposes legal moves.
			g.log.Error().Err(err).Str("move", move).Msg("auto-move rejected")
			return
		}
		g.log.Debug().Str("move", move).Msg("auto-move")
		g.printer.PrintBoard(g.board)
	}
}

// prompt flushes the boards and reads the next non-blank line of input.
func (g *game) prompt() (string, error) {
	for {
		g.printer.Flush()
		if !engine.HasLegalMoves(g.board) {
			fmt.Fprintln(g.out, "*** No moves available ***")
		}
		if g.cfg.Output.ShowPossibleMoves {
			fmt.Fprintf(g.out, "Available moves: %s\n", strings.Join(engine.PossibleMoves(g.board), " "))
		}
		fmt.Fprint(g.out, "Your move? ")

		if g.in == nil || !g.in.Scan() {
			fmt.Fprintln(g.out)
			fmt.Fprintf(g.out, "*** Failed Game #%d ***\n", g.seed)
			if g.in != nil && g.in.Err() != nil {
				return "", errors.Wrapf(g.in.Err(), "game %d: reading moves", g.seed)
			}
			return "", fmt.Errorf("game %d: input ended: %w", g.seed, errors.ErrGameFailed)
		}
		if move := strings.TrimSpace(g.in.Text()); move != "" {
			return move, nil
		}
	}
}

func (g *game) record(move string) {
	if g.moveLog == nil {
		return
	}
	if _, err := fmt.Fprintln(g.moveLog, move); err != nil {
		g.log.Warn().Err(err).Msg("writing move log")
	}
}
