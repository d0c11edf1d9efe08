package config

import (
	"fmt"

	"github.com/lgbarn/freecell-go/internal/board"
	"github.com/lgbarn/freecell-go/internal/errors"
)

// RulesConfig holds the board layout and auto-move policy.
type RulesConfig struct {
	FreeCells int `yaml:"freecells"`
	Cascades  int `yaml:"cascades"`

	// IgnoreDependencies homes cards without checking whether they are
	// still needed on the board.
	IgnoreDependencies bool `yaml:"ignore_dependencies"`

	// ExemptTwos always homes twos, as Microsoft FreeCell does.
	ExemptTwos bool `yaml:"exempt_twos"`

	// NoAutoMoves turns the auto-mover off.
	NoAutoMoves bool `yaml:"no_automoves"`
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		FreeCells: board.DefaultFreeCells,
		Cascades:  board.DefaultCascades,
	}
}

// Validate checks the column counts.
func (r *RulesConfig) Validate() error {
	if r.FreeCells < 0 || r.FreeCells > len(board.FreeCellNames) {
		return fmt.Errorf("freecells %d outside 0-%d: %w", r.FreeCells, len(board.FreeCellNames), errors.ErrInvalidConfig)
	}
	if r.Cascades < 1 || r.Cascades > len(board.CascadeNames) {
		return fmt.Errorf("cascades %d outside 1-%d: %w", r.Cascades, len(board.CascadeNames), errors.ErrInvalidConfig)
	}
	return nil
}

// BoardOptions returns the options that build a board with these rules.
func (r *RulesConfig) BoardOptions() []board.Option {
	return []board.Option{
		board.WithFreeCells(r.FreeCells),
		board.WithCascades(r.Cascades),
		board.WithIgnoreDependencies(r.IgnoreDependencies),
		board.WithExemptTwos(r.ExemptTwos),
	}
}
