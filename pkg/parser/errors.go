package parser

import (
	"errors"
	"fmt"
)

// Grammar errors returned by ParseLine. Callers should match them with
// errors.Is; ParseLine wraps them in a *SyntaxError.
var (
	ErrNoInput                  = errors.New("no command given")
	ErrMissingEntryTime         = errors.New("no entry time given")
	ErrMissingClosingBracket    = errors.New("missing ] character at entry time")
	ErrMissingCommandIdentifier = errors.New("missing command identifier")
)

// SyntaxError describes a line that does not follow the external command
// grammar.
type SyntaxError struct {
	// Line is the normalized input line.
	Line string

	// Err is one of the grammar sentinel errors.
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Line == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Line)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
