package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes carried by Error so callers can test with errors.Is.
var (
	// ErrMalformedAmount marks bracket contents that tokenize but violate
	// amount semantics (lone '/', unit with no quantity, bare name).
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrEmptyTimerAmount marks a timer bracket with no amount.
	ErrEmptyTimerAmount = errors.New("timer requires an amount")
)

// Error is a positioned grammar failure. Expected, when set, names the
// tokens that would have been accepted at Pos.
type Error struct {
	Pos      Pos
	Msg      string
	Expected []string
	cause    error
}

func (e *Error) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("line %d, column %d: %s (expected %s)",
			e.Pos.Line, e.Pos.Col, e.Msg, strings.Join(e.Expected, " or "))
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Unwrap exposes the sentinel cause, if any.
func (e *Error) Unwrap() error { return e.cause }

func errAt(pos Pos, cause error, msg string, expected ...string) *Error {
	return &Error{Pos: pos, Msg: msg, Expected: expected, cause: cause}
}

// LineError records a quarantined line failure during lenient parsing.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return e.Err.Error() }

func (e LineError) Unwrap() error { return e.Err }
