package ast

import "github.com/cooldudemcgeexl/crust/internal/source"

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// BinaryOp: бинарные операторы по уровням приоритета
type BinaryOp uint8

const (
	OpInvalid BinaryOp = iota
	// expression
	OpAnd // &
	OpOr  // |
	// arith_op
	OpAdd // +
	OpSub // -
	// relation
	OpLt   // <
	OpGtEq // >=
	OpLtEq // <=
	OpGt   // >
	OpEq   // ==
	OpNe   // !=
	// term
	OpMul // *
	OpDiv // /
)

var binaryOpText = [...]string{
	OpInvalid: "?",
	OpAnd:     "&",
	OpOr:      "|",
	OpAdd:     "+",
	OpSub:     "-",
	OpLt:      "<",
	OpGtEq:    ">=",
	OpLtEq:    "<=",
	OpGt:      ">",
	OpEq:      "==",
	OpNe:      "!=",
	OpMul:     "*",
	OpDiv:     "/",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// UnaryOp is `not` or prefix `-`.
type UnaryOp uint8

const (
	OpNot UnaryOp = iota + 1
	OpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "not"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

type (
	// BinaryExpr is `Left Op Right`; chains are left-associative.
	BinaryExpr struct {
		Op          BinaryOp
		Left, Right Expr
		Span        source.Span
	}

	// UnaryExpr is `not X` or `-X`.
	UnaryExpr struct {
		Op   UnaryOp
		X    Expr
		Span source.Span
	}

	// NameExpr is a variable reference, optionally indexed: `a` or `a[i]`.
	NameExpr struct {
		Name  Identifier
		Index Expr // nil if not indexed
		Span  source.Span
	}

	// CallExpr is `callee(args...)`.
	CallExpr struct {
		Callee Identifier
		Args   []Expr
		Span   source.Span
	}

	// NumberExpr wraps a numeric literal.
	NumberExpr struct {
		Value Number
	}

	// StringExpr wraps a string literal.
	StringExpr struct {
		Value StringNode
	}

	// BoolExpr is `true` or `false`.
	BoolExpr struct {
		Value bool
		Span  source.Span
	}

	// ParenExpr is `( X )`.
	ParenExpr struct {
		X    Expr
		Span source.Span
	}
)

func (e *BinaryExpr) Pos() source.Span { return e.Span }
func (e *UnaryExpr) Pos() source.Span  { return e.Span }
func (e *NameExpr) Pos() source.Span   { return e.Span }
func (e *CallExpr) Pos() source.Span   { return e.Span }
func (e *NumberExpr) Pos() source.Span { return e.Value.Span }
func (e *StringExpr) Pos() source.Span { return e.Value.Span }
func (e *BoolExpr) Pos() source.Span   { return e.Span }
func (e *ParenExpr) Pos() source.Span  { return e.Span }

func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode()  {}
func (*NameExpr) exprNode()   {}
func (*CallExpr) exprNode()   {}
func (*NumberExpr) exprNode() {}
func (*StringExpr) exprNode() {}
func (*BoolExpr) exprNode()   {}
func (*ParenExpr) exprNode()  {}
