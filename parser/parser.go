package parser

import (
	"io"

	"github.com/temporalkit/ltlf/ast"
	"github.com/temporalkit/ltlf/reporter"
)

// Parse parses the contents of the given reader as a linear temporal logic
// formula over finite traces, with both future and past operators. The
// given filename is used only in error messages and in the positions of the
// returned file's nodes.
//
// Lex and syntax errors are reported through the given handler before Parse
// returns; the returned error is the handler's disposition of the first one.
// On success the returned file's root covers the entire input.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.File, error) {
	return parse(filename, r, handler, true)
}

// ParsePL is like Parse but accepts only the propositional fragment of the
// grammar: symbols, boolean constants, and the connectives !, &, |, ->, and
// <->. Temporal operators and the "last" and "init" constants are syntax
// errors, not lex errors, since the lexer is shared between the grammars.
func ParsePL(filename string, r io.Reader, handler *reporter.Handler) (*ast.File, error) {
	return parse(filename, r, handler, false)
}

func parse(filename string, r io.Reader, handler *reporter.Handler, temporal bool) (*ast.File, error) {
	lexer, err := newLexer(r, filename, handler)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.lex()
	if err != nil {
		return nil, err
	}
	p := &formulaParser{
		info:     lexer.info,
		tokens:   tokens,
		handler:  handler,
		temporal: temporal,
	}
	root, err := p.parseEquivalence()
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.kind != tokenEOF {
		// a complete formula followed by trailing tokens
		return nil, p.errUnexpected(t, tokenNames[tokenEOF])
	}
	return ast.NewFile(p.info, root), nil
}

// formulaParser is a recursive-descent parser over the lexed token
// sequence. Each binary precedence tier is one method, from loosest binding
// to tightest; each method parses the next-tighter tier as its operands and
// folds repeated occurrences of its own operator into a single n-ary node.
// The temporal flag selects the full grammar or its propositional fragment.
type formulaParser struct {
	info     *ast.FileInfo
	tokens   []token
	pos      int
	handler  *reporter.Handler
	temporal bool
}

// cur returns the current token without consuming it. The token sequence
// ends with EOF, so cur is always valid.
func (p *formulaParser) cur() token {
	return p.tokens[p.pos]
}

func (p *formulaParser) advance() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *formulaParser) parseEquivalence() (ast.Formula, error) {
	return p.parseBinary(tokenEquivalence, ast.OpEquivalence, p.parseImplication)
}

func (p *formulaParser) parseImplication() (ast.Formula, error) {
	return p.parseBinary(tokenImply, ast.OpImplies, p.parseOr)
}

func (p *formulaParser) parseOr() (ast.Formula, error) {
	return p.parseBinary(tokenOr, ast.OpOr, p.parseAnd)
}

func (p *formulaParser) parseAnd() (ast.Formula, error) {
	if !p.temporal {
		return p.parseBinary(tokenAnd, ast.OpAnd, p.parseUnary)
	}
	return p.parseBinary(tokenAnd, ast.OpAnd, p.parseUntil)
}

func (p *formulaParser) parseUntil() (ast.Formula, error) {
	return p.parseBinary(tokenUntil, ast.OpUntil, p.parseRelease)
}

func (p *formulaParser) parseRelease() (ast.Formula, error) {
	return p.parseBinary(tokenRelease, ast.OpRelease, p.parseTrigger)
}

func (p *formulaParser) parseTrigger() (ast.Formula, error) {
	return p.parseBinary(tokenTrigger, ast.OpTrigger, p.parseSince)
}

func (p *formulaParser) parseSince() (ast.Formula, error) {
	return p.parseBinary(tokenSince, ast.OpSince, p.parseUnary)
}

// parseBinary parses one left-associative binary tier: a sequence of
// next-tier operands separated by the given token kind. Two or more
// operands fold into a single n-ary node; a lone operand passes through
// unwrapped.
func (p *formulaParser) parseBinary(kind tokenKind, op ast.BinaryOperator, next func() (ast.Formula, error)) (ast.Formula, error) {
	first, err := next()
	if err != nil {
		return nil, err
	}
	operands := []ast.Formula{first}
	for p.cur().kind == kind {
		p.advance()
		operand, err := next()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return ast.NewBinaryNode(op, operands), nil
}

// parseUnary parses a chain of prefix operators applied to an atom. Unary
// operators bind tighter than every binary operator, so "G F a & b" is
// "(G(F(a)) & b)". In the propositional fragment only negation is a prefix
// operator; a temporal prefix there falls through to the atom error.
func (p *formulaParser) parseUnary() (ast.Formula, error) {
	t := p.cur()
	op, ok := unaryOps[t.kind]
	if ok && (p.temporal || t.kind == tokenNot) {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryNode(op, t.tok, operand), nil
	}
	return p.parseAtom()
}

func (p *formulaParser) parseAtom() (ast.Formula, error) {
	t := p.cur()
	switch t.kind {
	case tokenSymbol:
		p.advance()
		return ast.NewSymbolNode(t.text, t.tok), nil
	case tokenTrue:
		p.advance()
		return ast.NewTrueNode(t.tok), nil
	case tokenFalse:
		p.advance()
		return ast.NewFalseNode(t.tok), nil
	case tokenLast:
		if p.temporal {
			p.advance()
			return ast.NewLastNode(t.tok), nil
		}
	case tokenInit:
		if p.temporal {
			p.advance()
			return ast.NewInitNode(t.tok), nil
		}
	case tokenLParen:
		p.advance()
		f, err := p.parseEquivalence()
		if err != nil {
			return nil, err
		}
		if closer := p.cur(); closer.kind != tokenRParen {
			return nil, p.errUnexpected(closer, tokenNames[tokenRParen])
		}
		p.advance()
		return f, nil
	}
	return nil, p.errUnexpected(t, p.atomExpected()...)
}

// atomExpected lists the token classes accepted at the start of a formula,
// for the "expecting" half of a syntax error.
func (p *formulaParser) atomExpected() []string {
	exp := []string{
		tokenNames[tokenSymbol],
		tokenNames[tokenTrue],
		tokenNames[tokenFalse],
	}
	if p.temporal {
		exp = append(exp, tokenNames[tokenLast], tokenNames[tokenInit])
	}
	exp = append(exp, tokenNames[tokenNot], tokenNames[tokenLParen])
	return exp
}

// errUnexpected reports a syntax error at the given token through the
// handler and returns the error the parse aborts with.
func (p *formulaParser) errUnexpected(t token, expected ...string) error {
	parseErr := &ParseError{
		Expected: expected,
		Found:    t.describe(),
		Offset:   t.offset,
	}
	err := reporter.Error(p.info.SourcePos(t.offset), parseErr)
	_ = p.handler.HandleError(err)
	return p.handler.Error()
}
