package ast

import (
	"fmt"
	"regexp"
	"strings"
)

// Formula is the interface implemented by all AST nodes. A formula is built
// bottom-up by the parser and is immutable thereafter: no node is ever
// mutated in place, and no two parents share a subtree.
type Formula interface {
	fmt.Stringer

	// Start returns the first token of this node. End returns the last.
	// Nodes synthesized outside of parsing report NoToken for both.
	Start() Token
	End() Token

	formula()
}

var symbolNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// SymbolNode is an atomic proposition. Its name always matches
// [a-z][a-z0-9_]*; the lexer rejects anything else, so a parsed tree never
// contains an invalid symbol.
type SymbolNode struct {
	Name string
	Tok  Token
}

// NewSymbolNode creates a new *SymbolNode. It panics if the name does not
// respect the naming convention for atomic propositions.
func NewSymbolNode(name string, tok Token) *SymbolNode {
	if !symbolNameRegex.MatchString(name) {
		panic(fmt.Sprintf("invalid symbol name: %q does not match [a-z][a-z0-9_]*", name))
	}
	return &SymbolNode{Name: name, Tok: tok}
}

func (n *SymbolNode) Start() Token   { return n.Tok }
func (n *SymbolNode) End() Token     { return n.Tok }
func (n *SymbolNode) String() string { return n.Name }
func (n *SymbolNode) formula()       {}

// TrueNode is the boolean constant "true".
type TrueNode struct {
	Tok Token
}

// NewTrueNode creates a new *TrueNode.
func NewTrueNode(tok Token) *TrueNode {
	return &TrueNode{Tok: tok}
}

func (n *TrueNode) Start() Token   { return n.Tok }
func (n *TrueNode) End() Token     { return n.Tok }
func (n *TrueNode) String() string { return "true" }
func (n *TrueNode) formula()       {}

// FalseNode is the boolean constant "false".
type FalseNode struct {
	Tok Token
}

// NewFalseNode creates a new *FalseNode.
func NewFalseNode(tok Token) *FalseNode {
	return &FalseNode{Tok: tok}
}

func (n *FalseNode) Start() Token   { return n.Tok }
func (n *FalseNode) End() Token     { return n.Tok }
func (n *FalseNode) String() string { return "false" }
func (n *FalseNode) formula()       {}

// LastNode is the end-of-trace marker "last": it holds only at the final
// instant of a trace.
type LastNode struct {
	Tok Token
}

// NewLastNode creates a new *LastNode.
func NewLastNode(tok Token) *LastNode {
	return &LastNode{Tok: tok}
}

func (n *LastNode) Start() Token   { return n.Tok }
func (n *LastNode) End() Token     { return n.Tok }
func (n *LastNode) String() string { return "last" }
func (n *LastNode) formula()       {}

// InitNode is the start-of-trace marker "init": it holds only at the first
// instant of a trace.
type InitNode struct {
	Tok Token
}

// NewInitNode creates a new *InitNode.
func NewInitNode(tok Token) *InitNode {
	return &InitNode{Tok: tok}
}

func (n *InitNode) Start() Token   { return n.Tok }
func (n *InitNode) End() Token     { return n.Tok }
func (n *InitNode) String() string { return "init" }
func (n *InitNode) formula()       {}

// UnaryNode is the application of a prefix operator to a single operand.
type UnaryNode struct {
	Op UnaryOperator
	// Tok is the operator token.
	Tok     Token
	Operand Formula
}

// NewUnaryNode creates a new *UnaryNode. It panics if operand is nil.
func NewUnaryNode(op UnaryOperator, tok Token, operand Formula) *UnaryNode {
	if operand == nil {
		panic("operand is nil")
	}
	return &UnaryNode{Op: op, Tok: tok, Operand: operand}
}

func (n *UnaryNode) Start() Token { return n.Tok }
func (n *UnaryNode) End() Token   { return n.Operand.End() }

func (n *UnaryNode) String() string {
	return n.Op.String() + "(" + n.Operand.String() + ")"
}

func (n *UnaryNode) formula() {}

// BinaryNode is the application of an infix operator to two or more
// operands. A left-associative chain like "a U b U c" is collapsed into a
// single node whose operands appear in source order, so evaluation order is
// left-to-right.
type BinaryNode struct {
	Op       BinaryOperator
	Operands []Formula
}

// NewBinaryNode creates a new *BinaryNode. It panics if fewer than two
// operands are given or if any operand is nil.
func NewBinaryNode(op BinaryOperator, operands []Formula) *BinaryNode {
	if len(operands) < 2 {
		panic(fmt.Sprintf("binary operator must have at least two operands, got %d", len(operands)))
	}
	for i, operand := range operands {
		if operand == nil {
			panic(fmt.Sprintf("operand %d is nil", i))
		}
	}
	return &BinaryNode{Op: op, Operands: operands}
}

func (n *BinaryNode) Start() Token { return n.Operands[0].Start() }
func (n *BinaryNode) End() Token   { return n.Operands[len(n.Operands)-1].End() }

func (n *BinaryNode) String() string {
	parts := make([]string, len(n.Operands))
	for i, operand := range n.Operands {
		parts[i] = operand.String()
	}
	return "(" + strings.Join(parts, " "+n.Op.String()+" ") + ")"
}

func (n *BinaryNode) formula() {}
