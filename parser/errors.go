package parser

import (
	"fmt"
	"strings"
)

// LexError is the underlying error for an input that contains a character
// sequence matching no token pattern. The position of the error is carried
// by the reporter.ErrorWithPos that wraps it; use errors.As to recover the
// *LexError itself.
type LexError struct {
	// Offset is the byte offset of the first offending character.
	Offset int
	// Fragment is the offending run of input text.
	Fragment string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid input text %q", e.Fragment)
}

// ParseError is the underlying error for a token sequence that violates the
// grammar: an unexpected token, an unmatched parenthesis, trailing tokens
// after a complete formula, or premature end of input. The position of the
// error is carried by the reporter.ErrorWithPos that wraps it.
type ParseError struct {
	// Expected describes the token classes that would have been accepted.
	Expected []string
	// Found describes the token actually found.
	Found string
	// Offset is the byte offset of the found token.
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error: unexpected %s, expecting %s", e.Found, strings.Join(e.Expected, " or "))
}
