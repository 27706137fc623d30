package ltlf

import (
	"io"
	"strings"

	"github.com/temporalkit/ltlf/ast"
	"github.com/temporalkit/ltlf/parser"
	"github.com/temporalkit/ltlf/reporter"
)

// ParseFormula parses the given string as a temporal formula with both
// future and past operators and returns the root of its syntax tree.
func ParseFormula(formula string) (ast.Formula, error) {
	return parseRoot(parser.Parse, formula)
}

// ParsePL parses the given string as a purely propositional formula.
// Temporal operators and the "last" and "init" constants are rejected as
// syntax errors.
func ParsePL(formula string) (ast.Formula, error) {
	return parseRoot(parser.ParsePL, formula)
}

func parseRoot(parse func(string, io.Reader, *reporter.Handler) (*ast.File, error), formula string) (ast.Formula, error) {
	handler := reporter.NewHandler(nil)
	file, err := parse("formula", strings.NewReader(formula), handler)
	if err != nil {
		return nil, err
	}
	return file.Root, nil
}
