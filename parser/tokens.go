package parser

import (
	"fmt"

	"github.com/temporalkit/ltlf/ast"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota

	// Shared propositional-logic tokens, used by both grammars.
	tokenSymbol
	tokenTrue
	tokenFalse
	tokenNot
	tokenAnd
	tokenOr
	tokenImply
	tokenEquivalence
	tokenLParen
	tokenRParen

	// Temporal extension tokens.
	tokenNext
	tokenWeakNext
	tokenAlways
	tokenEventually
	tokenUntil
	tokenRelease
	tokenSince
	tokenTrigger
	tokenOnce
	tokenHistorically
	tokenBefore
	tokenWeakBefore
	tokenLast
	tokenInit
)

// tokenNames maps each token kind to the name shown in error messages.
var tokenNames = map[tokenKind]string{
	tokenEOF:          "end of input",
	tokenSymbol:       "symbol",
	tokenTrue:         `"true"`,
	tokenFalse:        `"false"`,
	tokenNot:          `"!"`,
	tokenAnd:          `"&"`,
	tokenOr:           `"|"`,
	tokenImply:        `"->"`,
	tokenEquivalence:  `"<->"`,
	tokenLParen:       `"("`,
	tokenRParen:       `")"`,
	tokenNext:         `"X"`,
	tokenWeakNext:     `"WX"`,
	tokenAlways:       `"G"`,
	tokenEventually:   `"F"`,
	tokenUntil:        `"U"`,
	tokenRelease:      `"R"`,
	tokenSince:        `"S"`,
	tokenTrigger:      `"T"`,
	tokenOnce:         `"O"`,
	tokenHistorically: `"H"`,
	tokenBefore:       `"Y"`,
	tokenWeakBefore:   `"WY"`,
	tokenLast:         `"last"`,
	tokenInit:         `"init"`,
}

func (k tokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("tokenKind(%d)", int(k))
}

// keywords maps the case-insensitive keyword spellings, lowercased, to their
// token kind.
var keywords = map[string]tokenKind{
	"true":  tokenTrue,
	"false": tokenFalse,
	"last":  tokenLast,
	"init":  tokenInit,
}

// operators maps the uppercase temporal operator spellings to their token
// kind. An operator only lexes as such when the character that follows is
// not a lowercase letter; see lexWord.
var operators = map[string]tokenKind{
	"U":  tokenUntil,
	"R":  tokenRelease,
	"G":  tokenAlways,
	"F":  tokenEventually,
	"X":  tokenNext,
	"WX": tokenWeakNext,
	"S":  tokenSince,
	"T":  tokenTrigger,
	"H":  tokenHistorically,
	"O":  tokenOnce,
	"Y":  tokenBefore,
	"WY": tokenWeakBefore,
}

// unaryOps maps unary-operator tokens to their AST operator. Historically is
// included: the upstream grammar declared its token without ever wiring the
// production, which was a defect, not intent.
var unaryOps = map[tokenKind]ast.UnaryOperator{
	tokenNot:          ast.OpNot,
	tokenNext:         ast.OpNext,
	tokenWeakNext:     ast.OpWeakNext,
	tokenAlways:       ast.OpAlways,
	tokenEventually:   ast.OpEventually,
	tokenOnce:         ast.OpOnce,
	tokenHistorically: ast.OpHistorically,
	tokenBefore:       ast.OpBefore,
	tokenWeakBefore:   ast.OpWeakBefore,
}

// token is a single lexed token: its kind, the exact text matched, the
// ast.Token recorded in the FileInfo, and the byte offset where it begins.
// Tokens are produced once, in order, and never re-tagged.
type token struct {
	kind   tokenKind
	text   string
	tok    ast.Token
	offset int
}

// describe renders the token for the "found" half of a syntax error.
func (t token) describe() string {
	switch t.kind {
	case tokenEOF:
		return "end of input"
	case tokenSymbol:
		return fmt.Sprintf("symbol %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}
