package cooklang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hammamikhairi/cooklang/internal/grammar"
)

// Sentinel errors, re-exported from the grammar engine so callers can
// test a SyntaxError's cause with errors.Is.
var (
	// ErrMalformedAmount marks bracket contents that tokenize but violate
	// amount semantics (lone '/', unit with no quantity, bare name inside
	// a token bracket).
	ErrMalformedAmount = grammar.ErrMalformedAmount
	// ErrEmptyTimerAmount marks a "~{}" timer bracket. Timers always
	// require an amount.
	ErrEmptyTimerAmount = grammar.ErrEmptyTimerAmount
	// ErrInconsistentAmount marks an ingredient whose occurrences cannot
	// be summed: mixed units, scaling flags or alternative counts.
	ErrInconsistentAmount = errors.New("inconsistent ingredient amounts")
)

// SyntaxError reports input that does not match the grammar. Offset is a
// byte position in the original text; Line and Column are 1-based.
// Expected, when set, names the tokens that would have been accepted at
// the failing position.
type SyntaxError struct {
	Offset   int
	Line     int
	Column   int
	Msg      string
	Expected []string
	cause    error
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("cooklang: line %d, column %d: %s (expected %s)",
			e.Line, e.Column, e.Msg, strings.Join(e.Expected, " or "))
	}
	return fmt.Sprintf("cooklang: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap exposes the sentinel cause, if any.
func (e *SyntaxError) Unwrap() error { return e.cause }

// LineError pairs a quarantined line with its failure during lenient
// parsing.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return e.Err.Error() }

func (e LineError) Unwrap() error { return e.Err }

// convertError maps a grammar error into the public SyntaxError,
// shifting positions past any stripped front matter block.
func convertError(err error, lineOff, byteOff int) error {
	var ge *grammar.Error
	if !errors.As(err, &ge) {
		return err
	}
	return &SyntaxError{
		Offset:   ge.Pos.Offset + byteOff,
		Line:     ge.Pos.Line + lineOff,
		Column:   ge.Pos.Col,
		Msg:      ge.Msg,
		Expected: append([]string(nil), ge.Expected...),
		cause:    ge.Unwrap(),
	}
}
