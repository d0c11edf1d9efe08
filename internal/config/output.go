package config

import (
	"fmt"

	"github.com/lgbarn/freecell-go/internal/errors"
)

// Printer names.
const (
	LinePrinter = "line"
	TTYPrinter  = "tty"
)

// MinWidth is the narrowest terminal the line printer will tile into.
const MinWidth = 20

// OutputConfig holds settings related to board output.
type OutputConfig struct {
	// Printer is LinePrinter (boards tiled side by side) or TTYPrinter
	// (boards scroll).
	Printer string `yaml:"printer"`

	// Glyphs draws suits as ♣♦♥♠ instead of letters.
	Glyphs bool `yaml:"glyphs"`

	// Colour draws red cards and move headers with ANSI colours.
	Colour bool `yaml:"colour"`

	// Width is the terminal width used for tiling.
	Width int `yaml:"width"`

	// ShowPossibleMoves lists legal moves before each prompt.
	ShowPossibleMoves bool `yaml:"show_possible_moves"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Printer: LinePrinter,
		Colour:  true,
		Width:   120,
	}
}

// Validate checks the printer name and width.
func (o *OutputConfig) Validate() error {
	if o.Printer != LinePrinter && o.Printer != TTYPrinter {
		return fmt.Errorf("printer %q, want %q or %q: %w", o.Printer, LinePrinter, TTYPrinter, errors.ErrInvalidConfig)
	}
	if o.Width < MinWidth {
		return fmt.Errorf("width %d below %d: %w", o.Width, MinWidth, errors.ErrInvalidConfig)
	}
	return nil
}
