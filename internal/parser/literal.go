package parser

import (
	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

var typeMarks = map[token.Kind]ast.TypeMark{
	token.KwInteger: ast.TypeInteger,
	token.KwFloat:   ast.TypeFloat,
	token.KwString:  ast.TypeString,
	token.KwBool:    ast.TypeBool,
}

// ParseTypeMark parses one of integer, float, string, bool.
func ParseTypeMark(q *TokenQueue) (ast.TypeMark, error) {
	tok, ok := q.PopFront()
	if !ok {
		return 0, q.eof("TypeMark")
	}
	if !tok.Kind.IsTypeMark() {
		return 0, &UnexpectedTokenError{Expected: "TypeMark", Found: tok}
	}
	return typeMarks[tok.Kind], nil
}

// ParseNumber parses one number literal and keeps its text as scanned.
func ParseNumber(q *TokenQueue) (ast.Number, error) {
	tok, err := q.ConsumeExpected(token.NumberLit)
	if err != nil {
		return ast.Number{}, err
	}
	return ast.Number{Text: tok.Text, Span: tok.Span}, nil
}

// ParseArrayBound parses the number inside `[ ]` of an array declaration.
func ParseArrayBound(q *TokenQueue) (*ast.ArrayBound, error) {
	n, err := ParseNumber(q)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayBound{Value: n, Span: n.Span}, nil
}

// ParseIdentifier parses one identifier.
func ParseIdentifier(q *TokenQueue) (ast.Identifier, error) {
	tok, err := q.ConsumeExpected(token.Ident)
	if err != nil {
		return ast.Identifier{}, err
	}
	return ast.Identifier{Name: tok.Text, Span: tok.Span}, nil
}

// ParseString parses one string literal.
func ParseString(q *TokenQueue) (ast.StringNode, error) {
	tok, err := q.ConsumeExpected(token.StringLit)
	if err != nil {
		return ast.StringNode{}, err
	}
	return ast.StringNode{Value: tok.Text, Span: tok.Span}, nil
}
