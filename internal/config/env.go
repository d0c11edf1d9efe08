package config

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"

	"github.com/lgbarn/freecell-go/internal/errors"
)

// environment lists the settings that can come from FREECELL_* variables.
type environment struct {
	FreeCells          int    `env:"FREECELL_FREECELLS,strict"`
	Cascades           int    `env:"FREECELL_CASCADES,strict"`
	IgnoreDependencies bool   `env:"FREECELL_IGNORE_DEPENDENCIES,strict"`
	ExemptTwos         bool   `env:"FREECELL_EXEMPT_TWOS,strict"`
	NoAutoMoves        bool   `env:"FREECELL_NO_AUTOMOVES,strict"`
	Printer            string `env:"FREECELL_PRINTER"`
	Glyphs             bool   `env:"FREECELL_GLYPHS,strict"`
	Colour             bool   `env:"FREECELL_COLOUR,strict"`
	Width              int    `env:"FREECELL_WIDTH,strict"`
	MovesFile          string `env:"FREECELL_MOVES_FILE"`
	MoveLog            string `env:"FREECELL_MOVE_LOG"`
	Workers            int    `env:"FREECELL_WORKERS,strict"`
	LogLevel           string `env:"FREECELL_LOG_LEVEL"`
	LogFile            string `env:"FREECELL_LOG_FILE"`
}

// ApplyEnv overlays FREECELL_* environment variables onto c. Variables
// that are not set leave the current value alone; a number or switch
// that does not parse is an error and leaves c unchanged.
func (c *Config) ApplyEnv() error {
	env := environment{
		FreeCells:          c.Rules.FreeCells,
		Cascades:           c.Rules.Cascades,
		IgnoreDependencies: c.Rules.IgnoreDependencies,
		ExemptTwos:         c.Rules.ExemptTwos,
		NoAutoMoves:        c.Rules.NoAutoMoves,
		Printer:            c.Output.Printer,
		Glyphs:             c.Output.Glyphs,
		Colour:             c.Output.Colour,
		Width:              c.Output.Width,
		MovesFile:          c.MovesFile,
		MoveLog:            c.MoveLog,
		Workers:            c.Workers,
		LogLevel:           c.LogLevel,
		LogFile:            c.LogFile,
	}
	if err := envdecode.Decode(&env); err != nil {
		if stderrors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("environment: %v: %w", err, errors.ErrInvalidConfig)
	}

	c.Rules.FreeCells = env.FreeCells
	c.Rules.Cascades = env.Cascades
	c.Rules.IgnoreDependencies = env.IgnoreDependencies
	c.Rules.ExemptTwos = env.ExemptTwos
	if os.Getenv("FREECELL_EXEMPT_TWOS") != "" {
		c.exemptTwosSet = true
	}
	c.Rules.NoAutoMoves = env.NoAutoMoves
	c.Output.Printer = env.Printer
	c.Output.Glyphs = env.Glyphs
	c.Output.Colour = env.Colour
	c.Output.Width = env.Width
	c.MovesFile = env.MovesFile
	c.MoveLog = env.MoveLog
	c.Workers = env.Workers
	c.LogLevel = env.LogLevel
	c.LogFile = env.LogFile
	return nil
}
