package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/temporalkit/ltlf/ast"
	"github.com/temporalkit/ltlf/reporter"
)

type runeReader struct {
	data []byte
	pos  int
	err  error
	mark int
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.err != nil {
		return 0, 0, rr.err
	}
	if rr.pos == len(rr.data) {
		rr.err = io.EOF
		return 0, 0, rr.err
	}
	r, sz := utf8.DecodeRune(rr.data[rr.pos:])
	if r == utf8.RuneError {
		rr.err = fmt.Errorf("invalid UTF8 at offset %d: %x", rr.pos, rr.data[rr.pos])
		return 0, 0, rr.err
	}
	rr.pos = rr.pos + sz
	return r, sz, nil
}

func (rr *runeReader) offset() int {
	return rr.pos
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

// skip advances past n bytes without decoding them.
func (rr *runeReader) skip(n int) {
	rr.pos += n
}

// rest returns the unconsumed input.
func (rr *runeReader) rest() []byte {
	return rr.data[rr.pos:]
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return string(rr.data[rr.mark:rr.pos])
}

type formulaLex struct {
	input   *runeReader
	info    *ast.FileInfo
	handler *reporter.Handler
}

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

func newLexer(in io.Reader, filename string, handler *reporter.Handler) (*formulaLex, error) {
	br := bufio.NewReader(in)

	// if input has UTF8 byte order marker preface, consume it
	marker, err := br.Peek(3)
	if err == nil && bytes.Equal(marker, utf8Bom) {
		_, _ = br.Discard(3)
	}

	contents, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	return &formulaLex{
		input:   &runeReader{data: contents},
		info:    ast.NewFileInfo(filename, contents),
		handler: handler,
	}, nil
}

// lex tokenizes the entire input. The returned sequence always ends with an
// EOF token, so it is never empty. The first unrecognized character sequence
// aborts lexing with the reported error.
func (l *formulaLex) lex() ([]token, error) {
	var tokens []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
		if t.kind == tokenEOF {
			return tokens, nil
		}
	}
}

func (l *formulaLex) next() (token, error) {
	for {
		l.input.setMark()
		offset := l.input.offset()
		c, sz, err := l.input.readRune()
		if err == io.EOF {
			return token{kind: tokenEOF, tok: l.info.AddToken(offset, 0), offset: offset}, nil
		} else if err != nil {
			// invalid UTF8
			return token{}, l.lexError(offset, string(l.input.data[offset:offset+1]))
		}

		if strings.ContainsRune(" \n\r\t\f\v", c) {
			// skip whitespace
			if c == '\n' {
				l.info.AddLine(l.input.offset())
			}
			continue
		}

		switch c {
		case '(':
			return l.newToken(tokenLParen), nil
		case ')':
			return l.newToken(tokenRParen), nil
		case '!', '~':
			return l.newToken(tokenNot), nil
		case '&':
			// "&" or "&&"
			l.maybeRune('&')
			return l.newToken(tokenAnd), nil
		case '|':
			// "|" or "||"
			l.maybeRune('|')
			return l.newToken(tokenOr), nil
		case '-', '=':
			// "->" or "=>"
			if !l.maybeRune('>') {
				return token{}, l.lexError(offset, l.fragment(offset))
			}
			return l.newToken(tokenImply), nil
		case '<':
			// "<->" or "<=>"
			if (l.maybeRune('-') || l.maybeRune('=')) && l.maybeRune('>') {
				return l.newToken(tokenEquivalence), nil
			}
			return token{}, l.lexError(offset, l.fragment(offset))
		}

		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			l.input.unreadRune(sz)
			return l.lexWord(offset)
		}

		return token{}, l.lexError(offset, l.fragment(offset))
	}
}

// lexWord disambiguates the three token classes that begin with a letter:
// case-insensitive keywords, lowercase symbol names, and uppercase temporal
// operators. The longest match wins; on a tie the keyword wins, so "last" is
// a keyword while "lastx" is a symbol. A word no class matches, like "Ux",
// is a lex error.
func (l *formulaLex) lexWord(offset int) (token, error) {
	rest := l.input.rest()

	kwLen, kwKind := matchKeyword(rest)
	symLen := matchSymbol(rest)
	opLen, opKind := matchOperator(rest)

	var kind tokenKind
	var length int
	switch {
	case kwLen > 0 && kwLen >= symLen && kwLen >= opLen:
		kind, length = kwKind, kwLen
	case symLen > 0 && symLen >= opLen:
		kind, length = tokenSymbol, symLen
	case opLen > 0:
		kind, length = opKind, opLen
	default:
		return token{}, l.lexError(offset, l.fragment(offset))
	}
	l.input.skip(length)
	return l.newToken(kind), nil
}

// matchKeyword reports the case-insensitive keyword match at the start of
// rest, if any.
func matchKeyword(rest []byte) (int, tokenKind) {
	for kw, kind := range keywords {
		if len(rest) >= len(kw) && strings.EqualFold(string(rest[:len(kw)]), kw) {
			return len(kw), kind
		}
	}
	return 0, tokenEOF
}

// matchSymbol reports the length of the symbol-name match at the start of
// rest. Symbol names match [a-z][a-z0-9_]* exactly; the lowercase-only rule
// is what keeps the uppercase operator letters unambiguous.
func matchSymbol(rest []byte) int {
	if len(rest) == 0 || rest[0] < 'a' || rest[0] > 'z' {
		return 0
	}
	n := 1
	for n < len(rest) && isSymbolChar(rest[n]) {
		n++
	}
	return n
}

func isSymbolChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// matchOperator reports the temporal operator match at the start of rest, if
// any. The match only commits when the character immediately following the
// operator letters is not a lowercase letter (or is end of input): without
// that boundary check, "U" would match at the head of a word like "Ux" and
// leave a malformed remainder.
func matchOperator(rest []byte) (int, tokenKind) {
	if len(rest) == 0 {
		return 0, tokenEOF
	}
	n := 1
	if rest[0] == 'W' && len(rest) > 1 && (rest[1] == 'X' || rest[1] == 'Y') {
		n = 2
	}
	kind, ok := operators[string(rest[:n])]
	if !ok {
		return 0, tokenEOF
	}
	if len(rest) > n && rest[n] >= 'a' && rest[n] <= 'z' {
		return 0, tokenEOF
	}
	return n, kind
}

// maybeRune consumes the next rune if it equals want.
func (l *formulaLex) maybeRune(want rune) bool {
	c, sz, err := l.input.readRune()
	if err != nil {
		return false
	}
	if c != want {
		l.input.unreadRune(sz)
		return false
	}
	return true
}

// newToken emits a token for the marked span.
func (l *formulaLex) newToken(kind tokenKind) token {
	offset := l.input.mark
	length := l.input.pos - l.input.mark
	return token{
		kind:   kind,
		text:   l.input.getMark(),
		tok:    l.info.AddToken(offset, length),
		offset: offset,
	}
}

// fragment returns the offending input text starting at offset: everything
// consumed so far plus any immediately following word characters, so that an
// error about "Ux" or "<=" names the whole misleading run.
func (l *formulaLex) fragment(offset int) string {
	end := l.input.pos
	for end < len(l.input.data) && isWordChar(l.input.data[end]) {
		end++
	}
	if end == offset {
		end = offset + 1
	}
	return string(l.input.data[offset:end])
}

func isWordChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// lexError reports an unrecognized character sequence through the handler
// and returns the error the parse aborts with.
func (l *formulaLex) lexError(offset int, fragment string) error {
	err := reporter.Error(l.info.SourcePos(offset), &LexError{Offset: offset, Fragment: fragment})
	_ = l.handler.HandleError(err)
	return l.handler.Error()
}
