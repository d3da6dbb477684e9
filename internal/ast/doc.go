// Package ast holds the syntax tree produced by the parser.
//
// Every node owns its children; nothing is shared. Nodes are built once by
// the parser and never mutated afterwards. Declaration, Statement and Expr
// are closed sums: only the types in this package implement them.
package ast
