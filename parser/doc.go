// Package parser contains the logic for parsing LTLf and PLTLf formulas into
// an AST (abstract syntax tree).
//
// The grammar is layered: a propositional-logic base supplies the shared
// tokens (negation, conjunction, disjunction, implication, equivalence,
// parentheses, and the boolean constants) and the loosest-binding precedence
// tiers, and the temporal grammar extends it with the future and past
// modalities, which bind tighter than every propositional connective. Parse
// accepts the full temporal grammar; ParsePL accepts only the propositional
// base, mirroring the split between the two grammars.
//
// Both parsers are fail-fast: the first lex or syntax error aborts the parse
// and is reported through the supplied *reporter.Handler. There is no error
// recovery and no partial result.
package parser
