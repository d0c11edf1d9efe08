// Package errors provides sentinel errors and error types for the freecell engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedMove indicates a move that is not exactly two location tokens.
	ErrMalformedMove = errors.New("malformed move")

	// ErrUnknownSource indicates a source token that names no cascade or free cell.
	ErrUnknownSource = errors.New("unknown source")

	// ErrUnknownDestination indicates a destination token that resolves to no column.
	ErrUnknownDestination = errors.New("unknown destination")

	// ErrEmptySource indicates there is no card at the named source.
	ErrEmptySource = errors.New("empty source")

	// ErrIllegalMove indicates the destination cannot accept any part of the source run.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidCard indicates a card number outside the deck.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseFailure indicates a malformed games library or board layout.
	ErrParseFailure = errors.New("parse failure")

	// ErrUnknownGame indicates a game number missing from the solved games library.
	ErrUnknownGame = errors.New("unknown game")

	// ErrGameFailed indicates a supplied move list did not complete its game.
	ErrGameFailed = errors.New("game failed")
)

// MoveError wraps errors with game context, including the deal seed,
// the move counter and the move text. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Seed     int    // Deal number (0 if not known)
	MoveNum  int    // Move counter when the move was attempted
	MoveText string // The move text that caused the error
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Seed > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.Seed))
	}
	parts = append(parts, fmt.Sprintf("move %d", e.MoveNum))
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("%q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for games library and board layout parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
