package ast

// Equal reports whether x and y are structurally identical formulas. Source
// positions are ignored, so a parsed formula compares equal to an equivalent
// hand-built or synthesized one.
func Equal(x, y Formula) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	switch a := x.(type) {
	case *SymbolNode:
		b, ok := y.(*SymbolNode)
		return ok && a.Name == b.Name
	case *TrueNode:
		_, ok := y.(*TrueNode)
		return ok
	case *FalseNode:
		_, ok := y.(*FalseNode)
		return ok
	case *LastNode:
		_, ok := y.(*LastNode)
		return ok
	case *InitNode:
		_, ok := y.(*InitNode)
		return ok
	case *UnaryNode:
		b, ok := y.(*UnaryNode)
		return ok && a.Op == b.Op && Equal(a.Operand, b.Operand)
	case *BinaryNode:
		b, ok := y.(*BinaryNode)
		if !ok || a.Op != b.Op || len(a.Operands) != len(b.Operands) {
			return false
		}
		for i := range a.Operands {
			if !Equal(a.Operands[i], b.Operands[i]) {
				return false
			}
		}
		return true
	}
	return false
}
