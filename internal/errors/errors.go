// Package errors provides sentinel errors and error types for the chess engine.
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
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptyUndoLog indicates an undo was requested with no moves played.
	ErrEmptyUndoLog = errors.New("no move to undo")

	// ErrOutOfBounds indicates a square outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInconsistentKingState indicates a side without exactly one king,
	// or a king cache that disagrees with the board.
	ErrInconsistentKingState = errors.New("inconsistent king state")

	// ErrNoLegalMoves indicates a search was started in a finished position.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the squares involved, the
// ply at which the move was attempted and whether the search produced it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square in algebraic form (if known)
	To   string // Destination square in algebraic form (if known)
	Ply  int    // 1-based ply number of the attempted move (0 if not applicable)
	AI   bool   // The move came from the search rather than a human
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.AI {
		parts = append(parts, "ai move")
	} else {
		parts = append(parts, "move")
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, " ")

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

// FENError represents a FEN parsing error with the offending field.
type FENError struct {
	Err   error  // The underlying error
	FEN   string // The full FEN string
	Field string // Which field failed (placement, side, castling, en passant)
	Got   string // The offending text
}

// Error returns a formatted error message with field context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
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
	return "fen error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches, so errors.Is works on the sentinel
// aliases exported by this package as well as the standard library's.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As re-exported so callers importing this package under the
// name errors do not also need the standard library package.
func As(err error, target any) bool {
	return errors.As(err, target)
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
