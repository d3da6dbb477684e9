package ast

import "github.com/cooldudemcgeexl/crust/internal/source"

// Statement is one of *AssignStmt, *IfStmt, *LoopStmt, *ReturnStmt.
type Statement interface {
	Node
	stmtNode()
}

// AssignStmt is `dest := value`.
type AssignStmt struct {
	Dest  *NameExpr
	Value Expr
	Span  source.Span
}

// IfStmt is `if (cond) then {stmt ;} [else {stmt ;}] end if`.
// Else is nil when the else branch is absent and empty (non-nil) when present
// but without statements.
type IfStmt struct {
	Cond Expr
	Then []Statement
	Else []Statement
	Span source.Span
}

// LoopStmt is `for (init ; cond) {stmt ;} end for`.
type LoopStmt struct {
	Init *AssignStmt
	Cond Expr
	Body []Statement
	Span source.Span
}

// ReturnStmt is `return value`.
type ReturnStmt struct {
	Value Expr
	Span  source.Span
}

func (s *AssignStmt) Pos() source.Span { return s.Span }
func (s *IfStmt) Pos() source.Span     { return s.Span }
func (s *LoopStmt) Pos() source.Span   { return s.Span }
func (s *ReturnStmt) Pos() source.Span { return s.Span }

func (*AssignStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}
func (*LoopStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode() {}

// HasElse reports whether an else branch was written.
func (s *IfStmt) HasElse() bool { return s.Else != nil }
