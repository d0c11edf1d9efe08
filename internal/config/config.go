// Package config provides configuration for the freecell program.
package config

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/lgbarn/freecell-go/internal/errors"
)

// Defaults for the driver settings.
const (
	DefaultMoveLog  = "moves.log"
	DefaultLogLevel = "warn"
)

// Config holds all program configuration.
type Config struct {
	Rules  RulesConfig  `yaml:"rules"`
	Output OutputConfig `yaml:"output"`

	// Game to deal. 0 selects the first game in the library.
	Game int `yaml:"game"`

	// PlayBack replays Game from the library instead of asking for moves.
	PlayBack bool `yaml:"play_back"`

	// PlayAll replays every library game above Jump, minus Skips.
	PlayAll bool  `yaml:"play_all"`
	Skips   []int `yaml:"skips"`
	Jump    int   `yaml:"jump"`

	// InputFile supplies moves one per line, e.g. a saved move log.
	InputFile string `yaml:"input_file"`

	// MovesFile is the solved games library. Empty means the built-in one.
	MovesFile string `yaml:"moves_file"`

	// MoveLog records every line of input. Empty disables it.
	MoveLog string `yaml:"move_log"`

	// Workers used by PlayAll.
	Workers int `yaml:"workers"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // Empty means stderr

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	InputFrom  io.Reader `yaml:"-"`

	// exemptTwosSet is true once the file, the environment or a flag
	// chose the twos policy.
	exemptTwosSet bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      *NewRulesConfig(),
		Output:     *NewOutputConfig(),
		MoveLog:    DefaultMoveLog,
		Workers:    1,
		LogLevel:   DefaultLogLevel,
		OutputFile: os.Stdout,
		InputFrom:  os.Stdin,
	}
}

// SetOutput sets the stream boards and messages are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetInput sets the stream interactive moves are read from.
func (c *Config) SetInput(r io.Reader) {
	c.InputFrom = r
}

// Skipped reports whether PlayAll passes over game seed.
func (c *Config) Skipped(seed int) bool {
	return seed <= c.Jump || slices.Contains(c.Skips, seed)
}

// SetExemptTwos chooses the twos policy explicitly.
func (c *Config) SetExemptTwos(exempt bool) {
	c.Rules.ExemptTwos = exempt
	c.exemptTwosSet = true
}

// ExemptTwosSet reports whether the twos policy was chosen explicitly.
func (c *Config) ExemptTwosSet() bool {
	return c.exemptTwosSet
}

// ApplyLibraryPolicy turns on ExemptTwos for library playback unless the
// twos policy was chosen explicitly. Library solutions are recorded
// against Microsoft FreeCell, which always homes twos.
func (c *Config) ApplyLibraryPolicy() {
	if (c.PlayBack || c.PlayAll) && !c.exemptTwosSet {
		c.Rules.ExemptTwos = true
	}
}

// Level returns the parsed log level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Game < 0 {
		return fmt.Errorf("game %d is negative: %w", c.Game, errors.ErrInvalidConfig)
	}
	if c.Jump < 0 {
		return fmt.Errorf("jump %d is negative: %w", c.Jump, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d, need at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.InputFile != "" && (c.PlayBack || c.PlayAll) {
		return fmt.Errorf("an input file cannot be combined with playback: %w", errors.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return nil
}
