// Package walk provides helpers for traversing formula syntax trees.
package walk

import (
	"github.com/temporalkit/ltlf/ast"
)

// Formulas walks the given formula in depth-first pre-order, invoking fn for
// each node, including f itself. If fn returns an error, the walk stops and
// that error is returned.
func Formulas(f ast.Formula, fn func(ast.Formula) error) error {
	return FormulasEnterAndExit(f, fn, nil)
}

// FormulasEnterAndExit walks the given formula in depth-first order,
// invoking enter before a node's operands are visited and exit after. Either
// function may be nil. If a call returns an error, the walk stops and that
// error is returned; a node whose enter call fails does not get an exit
// call.
func FormulasEnterAndExit(f ast.Formula, enter, exit func(ast.Formula) error) error {
	if enter != nil {
		if err := enter(f); err != nil {
			return err
		}
	}
	switch n := f.(type) {
	case *ast.UnaryNode:
		if err := FormulasEnterAndExit(n.Operand, enter, exit); err != nil {
			return err
		}
	case *ast.BinaryNode:
		for _, operand := range n.Operands {
			if err := FormulasEnterAndExit(operand, enter, exit); err != nil {
				return err
			}
		}
	}
	if exit != nil {
		if err := exit(f); err != nil {
			return err
		}
	}
	return nil
}
