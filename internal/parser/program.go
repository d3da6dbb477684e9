package parser

import (
	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// Списки "что ещё допустимо" для ошибок конца входа внутри блоков.
const (
	expectDeclOrBegin = "Global, Procedure, Variable, Begin"
	expectStmtOrEnd   = "Identifier, If, For, Return, End"
)

// ParseProgram parses a whole compilation unit:
// header, body, '.', EOF, and nothing after it.
func ParseProgram(q *TokenQueue) (*ast.Program, error) {
	header, err := Parse(q, "Header", ParseHeader)
	if err != nil {
		return nil, err
	}
	body, err := Parse(q, "Body", ParseBody)
	if err != nil {
		return nil, err
	}
	period, err := q.ConsumeExpected(token.Period)
	if err != nil {
		return nil, err
	}

	// лишний токен перед EOF: это тоже "ожидался конец"
	if tok, ok := q.PeekFront(); ok && tok.Kind != token.EOF {
		q.PopFront()
		return nil, &ExpectedEOFError{Found: tok}
	}
	if _, err := q.ConsumeExpected(token.EOF); err != nil {
		return nil, err
	}
	if tok, ok := q.PopFront(); ok {
		return nil, &ExpectedEOFError{Found: tok}
	}

	return &ast.Program{
		Header: header,
		Body:   body,
		Span:   header.Span.Cover(period.Span),
	}, nil
}

// ParseHeader parses `program <identifier> is`.
func ParseHeader(q *TokenQueue) (*ast.Header, error) {
	kw, err := q.ConsumeExpected(token.KwProgram)
	if err != nil {
		return nil, err
	}
	name, err := ParseIdentifier(q)
	if err != nil {
		return nil, err
	}
	is, err := q.ConsumeExpected(token.KwIs)
	if err != nil {
		return nil, err
	}
	return &ast.Header{Name: name, Span: kw.Span.Cover(is.Span)}, nil
}

// ParseBody parses `{declaration ;} begin {statement ;} end program`.
func ParseBody(q *TokenQueue) (*ast.Body, error) {
	start, _ := q.PeekFront()
	decls, _, err := terminatedList(q, "Declaration", ParseDeclaration, expectDeclOrBegin, token.KwBegin)
	if err != nil {
		return nil, err
	}
	stmts, _, err := terminatedList(q, "Statement", ParseStatement, expectStmtOrEnd, token.KwEnd)
	if err != nil {
		return nil, err
	}
	end, err := q.ConsumeExpected(token.KwProgram)
	if err != nil {
		return nil, err
	}
	return &ast.Body{Decls: decls, Stmts: stmts, Span: start.Span.Cover(end.Span)}, nil
}
