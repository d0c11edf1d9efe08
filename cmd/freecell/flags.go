// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/freecell-go/internal/config"
)

// intList is a comma separated list of game numbers, e.g. "--skip 3,17".
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, field := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("%q is not a game number", field)
		}
		*l = append(*l, n)
	}
	return nil
}

// options holds the parsed command line.
type options struct {
	freeCells          int
	cascades           int
	playBack           int
	playAll            bool
	game               int
	inputFile          string
	ignoreDependencies bool
	exemptTwos         bool
	possibleMoves      bool
	movesFile          string
	tty                bool
	noAutoMoves        bool
	skips              intList
	jump               int
	glyphs             bool
	noColour           bool
	width              int
	moveLog            string
	workers            int
	configFile         string
	logLevel           string
	logFile            string
	help               bool
	version            bool
}

// newFlagSet registers every flag. Most have a short and a long name.
func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	o := &options{}
	defaults := config.NewConfig()
	fs := flag.NewFlagSet("freecell", flag.ContinueOnError)
	fs.SetOutput(stderr)

	intVar := func(p *int, short, long string, value int, usage string) {
		if short != "" {
			fs.IntVar(p, short, value, usage)
		}
		fs.IntVar(p, long, value, usage)
	}
	boolVar := func(p *bool, short, long string, usage string) {
		if short != "" {
			fs.BoolVar(p, short, false, usage)
		}
		fs.BoolVar(p, long, false, usage)
	}
	stringVar := func(p *string, short, long, value, usage string) {
		if short != "" {
			fs.StringVar(p, short, value, usage)
		}
		fs.StringVar(p, long, value, usage)
	}

	// Rules
	intVar(&o.freeCells, "f", "freecells", defaults.Rules.FreeCells, "Number of free cells (0-7)")
	intVar(&o.cascades, "c", "cascades", defaults.Rules.Cascades, "Number of cascades (1-9)")
	boolVar(&o.ignoreDependencies, "i", "ignore-dependencies", "Auto-mover ignores other cards that depend on a card")
	boolVar(&o.exemptTwos, "", "exempt-twos", "Auto-mover always homes twos, as Microsoft FreeCell does (on by default for -p and -P)")
	boolVar(&o.noAutoMoves, "", "no-automoves", "Turn off the auto-mover")

	// Game selection
	intVar(&o.game, "g", "game", 0, "Game to play (default: first game in the moves file)")
	intVar(&o.playBack, "p", "play-back", 0, "Play back game `n` from the moves file")
	boolVar(&o.playAll, "P", "play-all", "Play back every game in the moves file")
	fs.Var(&o.skips, "skip", "Comma separated games to leave out of -P")
	intVar(&o.jump, "", "jump", 0, "Leave out games up to and including `n` in -P")
	stringVar(&o.inputFile, "F", "file", "", "Take moves from `file`, e.g. a move log")
	stringVar(&o.movesFile, "M", "moves-file", "", "Solved games `file` (default: built-in)")

	// Output
	boolVar(&o.tty, "t", "tty", "Use the tty printer (default: line printer)")
	boolVar(&o.possibleMoves, "A", "available-moves", "Show possible moves before each prompt")
	boolVar(&o.glyphs, "", "glyphs", "Draw suits as symbols")
	boolVar(&o.noColour, "", "no-colour", "Turn off ANSI colours")
	intVar(&o.width, "w", "width", defaults.Output.Width, "Terminal width for the line printer")
	stringVar(&o.moveLog, "", "move-log", defaults.MoveLog, "Record moves to `file` (empty: off)")

	// Program
	intVar(&o.workers, "j", "workers", defaults.Workers, "Games played in parallel by -P")
	stringVar(&o.configFile, "", "config", "", "YAML configuration `file`")
	stringVar(&o.logLevel, "", "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	stringVar(&o.logFile, "", "log-file", "", "Write logs to `file` (default: stderr)")
	boolVar(&o.help, "h", "help", "Show help")
	boolVar(&o.version, "", "version", "Show version")

	return fs, o
}

// buildConfig layers the configuration: defaults, then the YAML file,
// then FREECELL_* variables, then flags given on the command line.
// Library playback homes twos unless one of those layers said otherwise.
func buildConfig(fs *flag.FlagSet, o *options) (*config.Config, error) {
	cfg := config.NewConfig()
	if o.configFile != "" {
		var err error
		if cfg, err = config.LoadFile(o.configFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		applyFlag(cfg, o, f.Name)
	})
	cfg.ApplyLibraryPolicy()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlag copies one explicitly set flag into cfg.
func applyFlag(cfg *config.Config, o *options, name string) {
	switch name {
	case "f", "freecells":
		cfg.Rules.FreeCells = o.freeCells
	case "c", "cascades":
		cfg.Rules.Cascades = o.cascades
	case "i", "ignore-dependencies":
		cfg.Rules.IgnoreDependencies = o.ignoreDependencies
	case "exempt-twos":
		cfg.SetExemptTwos(o.exemptTwos)
	case "no-automoves":
		cfg.Rules.NoAutoMoves = o.noAutoMoves
	case "g", "game":
		cfg.Game = o.game
	case "p", "play-back":
		cfg.Game = o.playBack
		cfg.PlayBack = true
	case "P", "play-all":
		cfg.PlayAll = o.playAll
	case "skip":
		cfg.Skips = o.skips
	case "jump":
		cfg.Jump = o.jump
	case "F", "file":
		cfg.InputFile = o.inputFile
	case "M", "moves-file":
		cfg.MovesFile = o.movesFile
	case "t", "tty":
		if o.tty {
			cfg.Output.Printer = config.TTYPrinter
		}
	case "A", "available-moves":
		cfg.Output.ShowPossibleMoves = o.possibleMoves
	case "glyphs":
		cfg.Output.Glyphs = o.glyphs
	case "no-colour":
		cfg.Output.Colour = !o.noColour
	case "w", "width":
		cfg.Output.Width = o.width
	case "move-log":
		cfg.MoveLog = o.moveLog
	case "j", "workers":
		cfg.Workers = o.workers
	case "log-level":
		cfg.LogLevel = o.logLevel
	case "log-file":
		cfg.LogFile = o.logFile
	}
}
