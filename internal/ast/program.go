package ast

import "github.com/cooldudemcgeexl/crust/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() source.Span
}

// Program is the root: `program <name> is <body> .`
type Program struct {
	Header *Header
	Body   *Body
	Span   source.Span
}

// Header is `program <name> is`.
type Header struct {
	Name Identifier
	Span source.Span
}

// Body is `{decl ;} begin {stmt ;} end program`.
type Body struct {
	Decls []Declaration
	Stmts []Statement
	Span  source.Span
}

// Identifier holds a lowercased name.
type Identifier struct {
	Name string
	Span source.Span
}

func (p *Program) Pos() source.Span    { return p.Span }
func (h *Header) Pos() source.Span     { return h.Span }
func (b *Body) Pos() source.Span       { return b.Span }
func (id *Identifier) Pos() source.Span { return id.Span }
