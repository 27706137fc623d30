package ast

import "sort"

// Labels returns the set of atomic proposition names that appear in f,
// sorted and without duplicates. Boolean constants and the trace markers
// "last" and "init" contribute no labels. This is the variable set a
// downstream automaton builder quantifies over.
func Labels(f Formula) []string {
	seen := map[string]struct{}{}
	collectLabels(f, seen)
	labels := make([]string, 0, len(seen))
	for name := range seen {
		labels = append(labels, name)
	}
	sort.Strings(labels)
	return labels
}

func collectLabels(f Formula, seen map[string]struct{}) {
	switch n := f.(type) {
	case *SymbolNode:
		seen[n.Name] = struct{}{}
	case *UnaryNode:
		collectLabels(n.Operand, seen)
	case *BinaryNode:
		for _, operand := range n.Operands {
			collectLabels(operand, seen)
		}
	}
}
