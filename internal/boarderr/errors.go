// Package boarderr provides sentinel errors and error types for the board
// algebra engine. It defines the error kinds the core must distinguish and
// structured wrapper types that preserve position context while allowing
// inspection with errors.Is() and errors.As().
package boarderr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error kinds the engine must distinguish.
// Use these with errors.Is() to check for a specific kind.
var (
	// ErrPatternShape indicates an empty pattern, or a pattern made up
	// only of negated classes, was passed to Find.
	ErrPatternShape = errors.New("pattern shape error")

	// ErrMalformedRuleText indicates the rule tokenizer or parser
	// failed: an unexpected token, or end-of-input mid-rule.
	ErrMalformedRuleText = errors.New("malformed rule text")

	// ErrMalformedBoardText indicates a board fragment failed to parse:
	// an unclosed '[', an unknown movement prefix, or an ill-formed
	// movement exponent.
	ErrMalformedBoardText = errors.New("malformed board text")

	// ErrRepeatBounds indicates at_most < at_least on a Repeat rule.
	ErrRepeatBounds = errors.New("invalid repeat bounds")

	// ErrTypeMismatch indicates a symmetry action was applied to a
	// value kind it does not support, or a PieceOfInterest was given the
	// free variable '%' as its piece.
	ErrTypeMismatch = errors.New("symmetry type mismatch")

	// ErrRuntimeLimit indicates a Repeat's visited set exceeded an
	// implementation-defined bound before reaching a fixed point.
	ErrRuntimeLimit = errors.New("runtime limit exceeded")
)

// SyntaxError carries source-offset context for a malformed board or rule
// text, wrapping one of ErrMalformedBoardText / ErrMalformedRuleText.
type SyntaxError struct {
	Err      error  // ErrMalformedBoardText or ErrMalformedRuleText
	Input    string // the full text being parsed
	Pos      int    // byte offset into Input where the error was detected
	Expected string // what was expected (may be empty)
	Got      string // the offending token or character (may be empty)
}

// Error returns a formatted message including position and context.
func (e *SyntaxError) Error() string {
	loc := fmt.Sprintf("offset %d", e.Pos)
	switch {
	case e.Expected != "" && e.Got != "":
		return fmt.Sprintf("%s: expected %s, got %q: %v", loc, e.Expected, e.Got, e.Err)
	case e.Expected != "":
		return fmt.Sprintf("%s: expected %s: %v", loc, e.Expected, e.Err)
	case e.Got != "":
		return fmt.Sprintf("%s: unexpected %q: %v", loc, e.Got, e.Err)
	default:
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
}

// Unwrap returns the wrapped sentinel error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving it for errors.Is/As.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving it for
// errors.Is/As.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
