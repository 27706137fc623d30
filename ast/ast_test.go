package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temporalkit/ltlf/ast"
	"github.com/temporalkit/ltlf/parser"
	"github.com/temporalkit/ltlf/reporter"
)

func mustParse(t *testing.T, formula string) *ast.File {
	t.Helper()
	file, err := parser.Parse("test.ltlf", strings.NewReader(formula), reporter.NewHandler(nil))
	require.NoError(t, err)
	return file
}

func TestFormulaString(t *testing.T) {
	t.Parallel()
	a := ast.NewSymbolNode("a", ast.NoToken)
	b := ast.NewSymbolNode("b", ast.NoToken)

	assert.Equal(t, "a", a.String())
	assert.Equal(t, "true", ast.NewTrueNode(ast.NoToken).String())
	assert.Equal(t, "false", ast.NewFalseNode(ast.NoToken).String())
	assert.Equal(t, "last", ast.NewLastNode(ast.NoToken).String())
	assert.Equal(t, "init", ast.NewInitNode(ast.NoToken).String())

	notA := ast.NewUnaryNode(ast.OpNot, ast.NoToken, a)
	assert.Equal(t, "!(a)", notA.String())
	assert.Equal(t, "G(a)", ast.NewUnaryNode(ast.OpAlways, ast.NoToken, a).String())
	assert.Equal(t, "WY(a)", ast.NewUnaryNode(ast.OpWeakBefore, ast.NoToken, a).String())

	until := ast.NewBinaryNode(ast.OpUntil, []ast.Formula{a, b})
	assert.Equal(t, "(a U b)", until.String())
	assert.Equal(t, "(a & b & (a U b))",
		ast.NewBinaryNode(ast.OpAnd, []ast.Formula{a, b, until}).String())
	assert.Equal(t, "(!(a) -> b)",
		ast.NewBinaryNode(ast.OpImplies, []ast.Formula{notA, b}).String())
}

func TestConstructorPanics(t *testing.T) {
	t.Parallel()
	a := ast.NewSymbolNode("a", ast.NoToken)

	assert.Panics(t, func() { ast.NewSymbolNode("", ast.NoToken) })
	assert.Panics(t, func() { ast.NewSymbolNode("Bad", ast.NoToken) })
	assert.Panics(t, func() { ast.NewSymbolNode("1a", ast.NoToken) })
	assert.Panics(t, func() { ast.NewUnaryNode(ast.OpNot, ast.NoToken, nil) })
	assert.Panics(t, func() { ast.NewBinaryNode(ast.OpAnd, nil) })
	assert.Panics(t, func() { ast.NewBinaryNode(ast.OpAnd, []ast.Formula{a}) })
	assert.Panics(t, func() { ast.NewBinaryNode(ast.OpAnd, []ast.Formula{a, nil}) })
}

func TestOperatorClassification(t *testing.T) {
	t.Parallel()
	assert.False(t, ast.OpNot.Temporal())
	assert.True(t, ast.OpNext.Temporal())
	assert.True(t, ast.OpOnce.Temporal())
	assert.False(t, ast.OpNext.Past())
	assert.True(t, ast.OpOnce.Past())
	assert.True(t, ast.OpWeakBefore.Past())

	assert.False(t, ast.OpAnd.Temporal())
	assert.True(t, ast.OpUntil.Temporal())
	assert.False(t, ast.OpUntil.Past())
	assert.True(t, ast.OpSince.Past())
	assert.True(t, ast.OpTrigger.Past())
}

func TestEqual(t *testing.T) {
	t.Parallel()
	// Equal ignores source positions, so the same formula parsed from
	// differently formatted inputs compares equal.
	x := mustParse(t, "G(a -> F b)").Root
	y := mustParse(t, "G ( a -> F b )").Root
	assert.True(t, ast.Equal(x, y))
	assert.True(t, ast.Equal(x, x))

	for _, other := range []string{
		"G(a -> F c)",
		"G(a -> G b)",
		"F(a -> F b)",
		"G(a & F b)",
		"G(a -> F b) & true",
		"a",
	} {
		other := other
		assert.False(t, ast.Equal(x, mustParse(t, other).Root), "expected %q != %q", x, other)
	}

	assert.True(t, ast.Equal(nil, nil))
	assert.False(t, ast.Equal(x, nil))
	assert.False(t, ast.Equal(nil, x))

	// N-ary nodes compare by arity as well as by operands, so "(a & b) & c"
	// differs from "a & b & c".
	flat := mustParse(t, "a & b & c").Root
	nested := mustParse(t, "(a & b) & c").Root
	assert.False(t, ast.Equal(flat, nested))
}

func TestLabels(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		formula string
		labels  []string
	}{
		{"a", []string{"a"}},
		{"true | false", []string{}},
		{"last & init", []string{}},
		{"b & a | a", []string{"a", "b"}},
		{"G(request -> F grant) & F request", []string{"grant", "request"}},
		{"zeta U alpha U mid", []string{"alpha", "mid", "zeta"}},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.formula, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.labels, ast.Labels(mustParse(t, tc.formula).Root))
		})
	}
}

func TestSynthesizedNodePositions(t *testing.T) {
	t.Parallel()
	file := mustParse(t, "G a")
	nnf := ast.ToNNF(file.Root)

	// The rewritten root was synthesized, so it has no source position.
	info := file.NodeInfo(nnf)
	assert.Equal(t, ast.UnknownPos("test.ltlf"), info.Start())
	assert.Equal(t, "", info.RawText())
	assert.Equal(t, "test.ltlf", info.Start().String())

	// The operand survived the rewrite and keeps its position.
	release, ok := nnf.(*ast.BinaryNode)
	require.True(t, ok)
	info = file.NodeInfo(release.Operands[1])
	assert.Equal(t, "a", info.RawText())
	assert.Equal(t, 3, info.Start().Col)
}
