// Package reporter contains the error model for formula parsing. Errors are
// reported through an ErrorWithPos, which pairs an underlying error (such as
// a *parser.LexError or *parser.ParseError) with the location in the input
// that caused it.
package reporter

import (
	"errors"
	"fmt"

	"github.com/temporalkit/ltlf/ast"
)

// ErrInvalidFormula is a sentinel error that is returned by parse calls in
// the event that a lex or syntax error is encountered but the configured
// ErrorReporter returns nil.
var ErrInvalidFormula = errors.New("parse failed: invalid formula")

// ErrorWithPos is an error about a formula that includes information about
// the location in the input that caused the error.
//
// The value of Error() will contain both the SourcePos and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos ast.SourcePos, format string, args ...interface{}) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// the input that caused the error.
func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
