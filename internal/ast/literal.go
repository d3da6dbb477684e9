package ast

import "github.com/cooldudemcgeexl/crust/internal/source"

// TypeMark is one of the four built-in types.
type TypeMark uint8

const (
	TypeInteger TypeMark = iota + 1
	TypeFloat
	TypeString
	TypeBool
)

var typeMarkNames = [...]string{
	TypeInteger: "integer",
	TypeFloat:   "float",
	TypeString:  "string",
	TypeBool:    "bool",
}

func (t TypeMark) String() string {
	if int(t) < len(typeMarkNames) && typeMarkNames[t] != "" {
		return typeMarkNames[t]
	}
	return "invalid"
}

// Number keeps the literal exactly as scanned (digits, '_' and '.').
// Numeric interpretation happens in package sema.
type Number struct {
	Text string
	Span source.Span
}

// ArrayBound is the `[n]` suffix of an array variable declaration.
type ArrayBound struct {
	Value Number
	Span  source.Span
}

// StringNode is a string literal's verbatim content, without quotes.
type StringNode struct {
	Value string
	Span  source.Span
}

func (n *Number) Pos() source.Span     { return n.Span }
func (b *ArrayBound) Pos() source.Span { return b.Span }
func (s *StringNode) Pos() source.Span { return s.Span }
