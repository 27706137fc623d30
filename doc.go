// Package ltlf parses linear temporal logic formulas over finite traces
// into typed syntax trees.
//
// The grammar covers the propositional connectives, the future-time
// operators X, WX, U, R, G, and F, and the past-time operators Y, WY, S, T,
// O, and H, along with the trace constants "last" and "init". Parsing a
// formula yields an [ast.Formula]; the ast package also provides negation
// normal form conversion, label extraction, and structural comparison, and
// the walk package provides tree traversal.
//
// This package is a convenience facade over the parser package, trading
// error positions for a one-call string API. Use [parser.Parse] directly
// when positions or a custom error reporter are needed.
package ltlf
