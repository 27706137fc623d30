// Package ast defines types for modeling the AST (Abstract Syntax Tree) of a
// linear temporal logic formula over finite traces (LTLf), extended with
// past-time operators (PLTLf).
//
// All nodes of the tree implement the Formula interface. Atomic formulas
// (symbols, boolean constants, and the trace markers "last" and "init") are
// the leaves; unary operators wrap a single operand; binary operators hold
// two or more operands, with left-to-right evaluation order.
//
// Position information is tracked using a *FileInfo, calling its various Add*
// methods as the input is tokenized by the lexer. This allows AST nodes to
// have a compact representation: each node only records Token values, which
// are indexes into the FileInfo. To extract detailed position information,
// use the NodeInfo method on either the *FileInfo that produced the node's
// tokens or the *File root that contains the node. Nodes synthesized by AST
// transformations, such as ToNNF, carry NoToken and report unknown positions.
//
// Creation of AST nodes should use the factory functions in this package
// instead of struct literals. The factory functions validate their arguments
// and panic when handed values that would produce an invalid tree, so a
// fully-formed node never holds nil or malformed children. Nodes are
// immutable once constructed; transformations always build new trees.
package ast
