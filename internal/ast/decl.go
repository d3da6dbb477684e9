package ast

import "github.com/cooldudemcgeexl/crust/internal/source"

// Declaration is *VariableDecl or *ProcedureDecl.
type Declaration interface {
	Node
	declNode()
}

// VariableDecl is `[global] variable <name> : <type> [ '[' bound ']' ]`.
// Procedure parameters use the same node with Global unset.
type VariableDecl struct {
	Global bool
	Name   Identifier
	Type   TypeMark
	Bound  *ArrayBound // nil for scalars
	Span   source.Span
}

// ProcedureDecl is a procedure header plus its own declarations and body.
type ProcedureDecl struct {
	Global bool
	Name   Identifier
	Result TypeMark
	Params []*VariableDecl
	Decls  []Declaration
	Stmts  []Statement
	Span   source.Span
}

func (d *VariableDecl) Pos() source.Span  { return d.Span }
func (d *ProcedureDecl) Pos() source.Span { return d.Span }

func (*VariableDecl) declNode()  {}
func (*ProcedureDecl) declNode() {}

// IsArray reports whether the variable carries a bound.
func (d *VariableDecl) IsArray() bool { return d.Bound != nil }
