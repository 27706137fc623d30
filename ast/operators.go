package ast

import "fmt"

// UnaryOperator identifies a prefix operator. All unary operators bind
// tighter than every binary operator and apply right-to-left when stacked.
type UnaryOperator int

const (
	// OpNot is propositional negation: "!".
	OpNot UnaryOperator = iota
	// OpNext is the strong next-state operator: "X".
	OpNext
	// OpWeakNext is the weak next-state operator, true at the end of the
	// trace: "WX".
	OpWeakNext
	// OpAlways holds when the operand holds at every remaining instant: "G".
	OpAlways
	// OpEventually holds when the operand holds at some remaining instant:
	// "F".
	OpEventually
	// OpBefore is the past-time dual of next (also known as yesterday): "Y".
	OpBefore
	// OpWeakBefore is the weak variant of before, true at the start of the
	// trace: "WY".
	OpWeakBefore
	// OpOnce is the past-time dual of eventually: "O".
	OpOnce
	// OpHistorically is the past-time dual of always: "H".
	OpHistorically
)

func (op UnaryOperator) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNext:
		return "X"
	case OpWeakNext:
		return "WX"
	case OpAlways:
		return "G"
	case OpEventually:
		return "F"
	case OpBefore:
		return "Y"
	case OpWeakBefore:
		return "WY"
	case OpOnce:
		return "O"
	case OpHistorically:
		return "H"
	default:
		return fmt.Sprintf("UnaryOperator(%d)", int(op))
	}
}

// Temporal reports whether the operator is a temporal modality, as opposed to
// propositional negation.
func (op UnaryOperator) Temporal() bool {
	return op != OpNot
}

// Past reports whether the operator is a past-time modality.
func (op UnaryOperator) Past() bool {
	switch op {
	case OpBefore, OpWeakBefore, OpOnce, OpHistorically:
		return true
	default:
		return false
	}
}

// BinaryOperator identifies an infix operator. Binary operators are
// left-associative; a chain of the same operator collapses into a single
// n-ary node.
type BinaryOperator int

const (
	// OpEquivalence is "<->", the loosest-binding operator.
	OpEquivalence BinaryOperator = iota
	// OpImplies is "->".
	OpImplies
	// OpOr is "|".
	OpOr
	// OpAnd is "&".
	OpAnd
	// OpUntil is the strong until operator: "U".
	OpUntil
	// OpRelease is the dual of until: "R".
	OpRelease
	// OpTrigger is the past-time dual of release: "T".
	OpTrigger
	// OpSince is the past-time dual of until: "S", the tightest-binding
	// binary operator.
	OpSince
)

func (op BinaryOperator) String() string {
	switch op {
	case OpEquivalence:
		return "<->"
	case OpImplies:
		return "->"
	case OpOr:
		return "|"
	case OpAnd:
		return "&"
	case OpUntil:
		return "U"
	case OpRelease:
		return "R"
	case OpTrigger:
		return "T"
	case OpSince:
		return "S"
	default:
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
}

// Temporal reports whether the operator is a temporal modality, as opposed to
// a propositional connective.
func (op BinaryOperator) Temporal() bool {
	switch op {
	case OpUntil, OpRelease, OpTrigger, OpSince:
		return true
	default:
		return false
	}
}

// Past reports whether the operator is a past-time modality.
func (op BinaryOperator) Past() bool {
	return op == OpTrigger || op == OpSince
}
