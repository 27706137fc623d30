package ast

// Negate returns the negation of f, in negation normal form. The result uses
// the standard finite-trace dualities: Next/WeakNext, Until/Release,
// Since/Trigger, and Before/WeakBefore swap under negation; Always,
// Eventually, Once, and Historically are first rewritten in terms of their
// binary counterparts. Negations in the result appear only on atoms.
//
// Synthesized nodes carry NoToken and report unknown source positions.
func Negate(f Formula) Formula {
	return negate(f)
}

// ToNNF returns the negation normal form of f: implications, equivalences,
// and the derived operators Always, Eventually, Once, and Historically are
// rewritten away, and negation is pushed down to atoms.
func ToNNF(f Formula) Formula {
	switch n := f.(type) {
	case *SymbolNode, *TrueNode, *FalseNode, *LastNode, *InitNode:
		return f
	case *UnaryNode:
		switch n.Op {
		case OpNot:
			return negate(n.Operand)
		case OpNext, OpWeakNext, OpBefore, OpWeakBefore:
			return NewUnaryNode(n.Op, n.Tok, ToNNF(n.Operand))
		case OpAlways:
			// G f == false R f
			return NewBinaryNode(OpRelease, []Formula{NewFalseNode(NoToken), ToNNF(n.Operand)})
		case OpEventually:
			// F f == true U f
			return NewBinaryNode(OpUntil, []Formula{NewTrueNode(NoToken), ToNNF(n.Operand)})
		case OpOnce:
			// O f == true S f
			return NewBinaryNode(OpSince, []Formula{NewTrueNode(NoToken), ToNNF(n.Operand)})
		case OpHistorically:
			// H f == false T f
			return NewBinaryNode(OpTrigger, []Formula{NewFalseNode(NoToken), ToNNF(n.Operand)})
		}
	case *BinaryNode:
		switch n.Op {
		case OpAnd, OpOr, OpUntil, OpRelease, OpSince, OpTrigger:
			return NewBinaryNode(n.Op, nnfAll(n.Operands))
		case OpImplies:
			// An implication chain evaluates left-to-right, so fold
			// "a -> b" into "!a | b" from the left.
			result := NewBinaryNode(OpOr, []Formula{
				negate(n.Operands[0]),
				ToNNF(n.Operands[1]),
			})
			for _, operand := range n.Operands[2:] {
				result = NewBinaryNode(OpOr, []Formula{
					negate(result),
					ToNNF(operand),
				})
			}
			return result
		case OpEquivalence:
			// a <-> b == (a & b) | (!a & !b), generalized to all operands
			// holding or none holding.
			pos := make([]Formula, len(n.Operands))
			neg := make([]Formula, len(n.Operands))
			for i, operand := range n.Operands {
				pos[i] = ToNNF(operand)
				neg[i] = negate(operand)
			}
			return NewBinaryNode(OpOr, []Formula{
				NewBinaryNode(OpAnd, pos),
				NewBinaryNode(OpAnd, neg),
			})
		}
	}
	panic("unreachable")
}

func nnfAll(operands []Formula) []Formula {
	result := make([]Formula, len(operands))
	for i, operand := range operands {
		result[i] = ToNNF(operand)
	}
	return result
}

func negateAll(operands []Formula) []Formula {
	result := make([]Formula, len(operands))
	for i, operand := range operands {
		result[i] = negate(operand)
	}
	return result
}

// negate returns the negation normal form of !f.
func negate(f Formula) Formula {
	switch n := f.(type) {
	case *SymbolNode, *LastNode, *InitNode:
		return NewUnaryNode(OpNot, NoToken, f)
	case *TrueNode:
		return NewFalseNode(NoToken)
	case *FalseNode:
		return NewTrueNode(NoToken)
	case *UnaryNode:
		switch n.Op {
		case OpNot:
			return ToNNF(n.Operand)
		case OpNext:
			return NewUnaryNode(OpWeakNext, NoToken, negate(n.Operand))
		case OpWeakNext:
			return NewUnaryNode(OpNext, NoToken, negate(n.Operand))
		case OpBefore:
			return NewUnaryNode(OpWeakBefore, NoToken, negate(n.Operand))
		case OpWeakBefore:
			return NewUnaryNode(OpBefore, NoToken, negate(n.Operand))
		case OpAlways:
			// !(G f) == true U !f
			return NewBinaryNode(OpUntil, []Formula{NewTrueNode(NoToken), negate(n.Operand)})
		case OpEventually:
			// !(F f) == false R !f
			return NewBinaryNode(OpRelease, []Formula{NewFalseNode(NoToken), negate(n.Operand)})
		case OpOnce:
			// !(O f) == false T !f
			return NewBinaryNode(OpTrigger, []Formula{NewFalseNode(NoToken), negate(n.Operand)})
		case OpHistorically:
			// !(H f) == true S !f
			return NewBinaryNode(OpSince, []Formula{NewTrueNode(NoToken), negate(n.Operand)})
		}
	case *BinaryNode:
		switch n.Op {
		case OpAnd:
			return NewBinaryNode(OpOr, negateAll(n.Operands))
		case OpOr:
			return NewBinaryNode(OpAnd, negateAll(n.Operands))
		case OpUntil:
			return NewBinaryNode(OpRelease, negateAll(n.Operands))
		case OpRelease:
			return NewBinaryNode(OpUntil, negateAll(n.Operands))
		case OpSince:
			return NewBinaryNode(OpTrigger, negateAll(n.Operands))
		case OpTrigger:
			return NewBinaryNode(OpSince, negateAll(n.Operands))
		case OpImplies, OpEquivalence:
			return negate(ToNNF(n))
		}
	}
	panic("unreachable")
}
