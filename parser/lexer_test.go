package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalkit/ltlf/reporter"
)

func lexString(t *testing.T, input string) ([]token, error) {
	t.Helper()
	handler := reporter.NewHandler(nil)
	l, err := newLexer(strings.NewReader(input), "test.ltlf", handler)
	require.NoError(t, err)
	return l.lex()
}

func kinds(tokens []token) []tokenKind {
	result := make([]tokenKind, len(tokens))
	for i, t := range tokens {
		result[i] = t.kind
	}
	return result
}

func TestLexer(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		expected []tokenKind
	}{
		{"", []tokenKind{tokenEOF}},
		{"   \t\n ", []tokenKind{tokenEOF}},
		{"a", []tokenKind{tokenSymbol, tokenEOF}},
		{"a U b", []tokenKind{tokenSymbol, tokenUntil, tokenSymbol, tokenEOF}},
		{"a R b", []tokenKind{tokenSymbol, tokenRelease, tokenSymbol, tokenEOF}},
		{"a S b", []tokenKind{tokenSymbol, tokenSince, tokenSymbol, tokenEOF}},
		{"a T b", []tokenKind{tokenSymbol, tokenTrigger, tokenSymbol, tokenEOF}},
		{"G a", []tokenKind{tokenAlways, tokenSymbol, tokenEOF}},
		{"F a", []tokenKind{tokenEventually, tokenSymbol, tokenEOF}},
		{"X a", []tokenKind{tokenNext, tokenSymbol, tokenEOF}},
		{"WX a", []tokenKind{tokenWeakNext, tokenSymbol, tokenEOF}},
		{"Y a", []tokenKind{tokenBefore, tokenSymbol, tokenEOF}},
		{"WY a", []tokenKind{tokenWeakBefore, tokenSymbol, tokenEOF}},
		{"O a", []tokenKind{tokenOnce, tokenSymbol, tokenEOF}},
		{"H a", []tokenKind{tokenHistorically, tokenSymbol, tokenEOF}},
		{"true", []tokenKind{tokenTrue, tokenEOF}},
		{"false", []tokenKind{tokenFalse, tokenEOF}},
		{"last", []tokenKind{tokenLast, tokenEOF}},
		{"init", []tokenKind{tokenInit, tokenEOF}},
		// Keywords are case-insensitive.
		{"TRUE", []tokenKind{tokenTrue, tokenEOF}},
		{"tRue", []tokenKind{tokenTrue, tokenEOF}},
		{"False", []tokenKind{tokenFalse, tokenEOF}},
		{"LAST", []tokenKind{tokenLast, tokenEOF}},
		{"Init", []tokenKind{tokenInit, tokenEOF}},
		// A longer symbol match beats the keyword prefix.
		{"truex", []tokenKind{tokenSymbol, tokenEOF}},
		{"lasting", []tokenKind{tokenSymbol, tokenEOF}},
		{"initial", []tokenKind{tokenSymbol, tokenEOF}},
		// Lowercase words are symbols even when they spell an operator.
		{"until", []tokenKind{tokenSymbol, tokenEOF}},
		{"x", []tokenKind{tokenSymbol, tokenEOF}},
		{"a_1", []tokenKind{tokenSymbol, tokenEOF}},
		{"req_0 U grant_0", []tokenKind{tokenSymbol, tokenUntil, tokenSymbol, tokenEOF}},
		{"a0_", []tokenKind{tokenSymbol, tokenEOF}},
		{"!", []tokenKind{tokenNot, tokenEOF}},
		{"~", []tokenKind{tokenNot, tokenEOF}},
		{"&", []tokenKind{tokenAnd, tokenEOF}},
		{"&&", []tokenKind{tokenAnd, tokenEOF}},
		{"|", []tokenKind{tokenOr, tokenEOF}},
		{"||", []tokenKind{tokenOr, tokenEOF}},
		{"->", []tokenKind{tokenImply, tokenEOF}},
		{"=>", []tokenKind{tokenImply, tokenEOF}},
		{"<->", []tokenKind{tokenEquivalence, tokenEOF}},
		{"<=>", []tokenKind{tokenEquivalence, tokenEOF}},
		{"(a)", []tokenKind{tokenLParen, tokenSymbol, tokenRParen, tokenEOF}},
		{"G(a&b)", []tokenKind{tokenAlways, tokenLParen, tokenSymbol, tokenAnd, tokenSymbol, tokenRParen, tokenEOF}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			tokens, err := lexString(t, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kinds(tokens))
		})
	}
}

func TestLexerKeywordText(t *testing.T) {
	t.Parallel()
	tokens, err := lexString(t, "tRue")
	require.NoError(t, err)
	require.Equal(t, tokenTrue, tokens[0].kind)
	// The token records the text as written, not the canonical spelling.
	assert.Equal(t, "tRue", tokens[0].text)
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		fragment string
	}{
		// An operator letter running into lowercase is no token at all.
		{"Ux", "Ux"},
		{"Ga", "Ga"},
		{"Gfa", "Gfa"},
		{"aUb", "Ub"},
		{"Wx", "Wx"},
		{"WXy", "WXy"},
		// Uppercase letters that are not operators.
		{"A", "A"},
		{"Q", "Q"},
		{"aU Bc", "Bc"},
		// Incomplete punctuation.
		{"a - b", "-"},
		{"a = b", "="},
		{"a <- b", "<-"},
		{"a <= b", "<="},
		{"a < b", "<"},
		// Characters outside the grammar.
		{"a @ b", "@"},
		{"a; b", ";"},
		{"[a]", "["},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			_, err := lexString(t, tc.input)
			require.Error(t, err)
			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "expected *LexError, got %v", err)
			assert.Equal(t, tc.fragment, lexErr.Fragment)
		})
	}
}

func TestLexerErrorPosition(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	l, err := newLexer(strings.NewReader("a &\n  ? b"), "test.ltlf", handler)
	require.NoError(t, err)
	_, err = l.lex()
	require.Error(t, err)
	var errWithPos reporter.ErrorWithPos
	require.True(t, errors.As(err, &errWithPos))
	pos := errWithPos.GetPosition()
	assert.Equal(t, "test.ltlf", pos.Filename)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 3, pos.Col)
}

func TestLexerTokenSpans(t *testing.T) {
	t.Parallel()
	handler := reporter.NewHandler(nil)
	l, err := newLexer(strings.NewReader("ab U cd"), "test.ltlf", handler)
	require.NoError(t, err)
	tokens, err := l.lex()
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	info := l.info.TokenInfo(tokens[1].tok)
	assert.Equal(t, "U", info.RawText())
	assert.Equal(t, 1, info.Start().Line)
	assert.Equal(t, 4, info.Start().Col)

	info = l.info.TokenInfo(tokens[2].tok)
	assert.Equal(t, "cd", info.RawText())
	assert.Equal(t, 6, info.Start().Col)
}
