// freecell deals Microsoft compatible FreeCell games and plays them, from
// the keyboard, a move file or a library of solved games.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/freecell-go/internal/config"
	"github.com/lgbarn/freecell-go/internal/errors"
	"github.com/lgbarn/freecell-go/internal/library"
	"github.com/lgbarn/freecell-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program; it returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.help {
		usage(stdout, fs, library.Builtin())
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "freecell-go version %s\n", programVersion)
		return 0
	}

	cfg, err := buildConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(stderr, "*** %v ***\n", err)
		return 1
	}
	cfg.SetOutput(stdout)
	cfg.SetInput(stdin)

	logger, closeLog, err := setupLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "*** %v ***\n", err)
		return 1
	}
	defer closeLog()

	lib, err := loadLibrary(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "*** %v ***\n", err)
		return 1
	}

	if cfg.PlayAll {
		sum, err := playAll(ctx, cfg, lib, logger)
		fmt.Fprintf(stderr, "Number that completed %d\n", sum.completed)
		fmt.Fprintf(stderr, "Number that failed to complete %d\n", sum.failed)
		if err != nil {
			fmt.Fprintf(stderr, "*** %v ***\n", err)
			return 1
		}
		if sum.failed > 0 {
			return 1
		}
		return 0
	}

	if err := playOne(cfg, lib, logger); err != nil {
		if !stderrors.Is(err, errors.ErrGameFailed) {
			fmt.Fprintf(stderr, "*** %v ***\n", err)
		}
		return 1
	}
	return 0
}

// setupLogger builds the structured logger shared by the play-all
// workers. Logs go to stderr unless cfg.LogFile names a file, which is
// appended to.
func setupLogger(cfg *config.Config, stderr io.Writer) (zerolog.Logger, func(), error) {
	out, closeLog := stderr, func() {}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // user-chosen log file
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
		}
		out, closeLog = file, func() { file.Close() }
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(out), NoColor: cfg.LogFile != ""}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
	return log.Logger, closeLog, nil
}

// loadLibrary loads cfg.MovesFile, or the built-in library.
func loadLibrary(cfg *config.Config) (*library.Library, error) {
	if cfg.MovesFile == "" {
		return library.Builtin(), nil
	}
	return library.LoadFile(cfg.MovesFile)
}

// playOne plays a single game: from the library, from an input file or
// from the keyboard.
func playOne(cfg *config.Config, lib *library.Library, logger zerolog.Logger) error {
	seed := cfg.Game
	if seed == 0 {
		first, ok := lib.First()
		if !ok {
			return fmt.Errorf("no game given and the moves file is empty: %w", errors.ErrUnknownGame)
		}
		seed = first
	}

	var moves []string
	switch {
	case cfg.PlayBack:
		m, err := lib.Moves(seed)
		if err != nil {
			return fmt.Errorf("game \"%d\" not available for playback: %w", seed, err)
		}
		moves = m
	case cfg.InputFile != "":
		data, err := os.ReadFile(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("reading moves: %w", err)
		}
		moves = strings.Split(string(data), "\n")
	}

	opts := []session.Option{session.WithLogger(logger)}
	if cfg.MoveLog != "" {
		file, err := os.Create(cfg.MoveLog)
		if err != nil {
			return fmt.Errorf("creating move log: %w", err)
		}
		defer file.Close()
		opts = append(opts, session.WithMoveLog(file))
	}

	_, err := session.New(cfg, opts...).Play(seed, moves)
	return err
}

func usage(w io.Writer, fs *flag.FlagSet, lib *library.Library) {
	seeds := lib.Seeds()
	if len(seeds) > 20 {
		seeds = seeds[:20]
	}
	examples := make([]string, len(seeds))
	for i, s := range seeds {
		examples[i] = fmt.Sprint(s)
	}

	fmt.Fprintf(w, `
usage: freecell [options]

Generate MS compatible FreeCell deals and play them.
Games in the built-in library: %s

Options:
`, strings.Join(examples, ", "))
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprint(w, `
Moves are two characters, <source><destination>: sources are cascades
"1"-"9" and free cells "a"-"g"; destinations add "h" for the foundations
and "#" for the first free cell that is empty. "u" undoes a move and "r"
redoes one. Every line of input is logged to the move log, which can be
played back with -F.
`)
}
