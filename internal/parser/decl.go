package parser

import (
	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// ParseDeclaration parses `[global] procedure_declaration` or
// `[global] variable_declaration`.
func ParseDeclaration(q *TokenQueue) (ast.Declaration, error) {
	global, isGlobal := q.accept(token.KwGlobal)

	front, ok := q.PeekFront()
	if !ok {
		return nil, q.eof("Procedure, Variable")
	}
	switch front.Kind {
	case token.KwProcedure:
		d, err := Parse(q, "ProcedureDeclaration", ParseProcedureDecl)
		if err != nil {
			return nil, err
		}
		if isGlobal {
			d.Global = true
			d.Span = global.Span.Cover(d.Span)
		}
		return d, nil
	case token.KwVariable:
		d, err := Parse(q, "VariableDeclaration", ParseVariableDecl)
		if err != nil {
			return nil, err
		}
		if isGlobal {
			d.Global = true
			d.Span = global.Span.Cover(d.Span)
		}
		return d, nil
	default:
		return nil, q.unexpected("Procedure, Variable")
	}
}

// ParseVariableDecl parses `variable <id> : <type_mark> [ '[' bound ']' ]`.
func ParseVariableDecl(q *TokenQueue) (*ast.VariableDecl, error) {
	kw, err := q.ConsumeExpected(token.KwVariable)
	if err != nil {
		return nil, err
	}
	name, err := ParseIdentifier(q)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.Colon); err != nil {
		return nil, err
	}
	tm, err := Parse(q, "TypeMark", ParseTypeMark)
	if err != nil {
		return nil, err
	}
	d := &ast.VariableDecl{Name: name, Type: tm, Span: kw.Span.Cover(q.LastSpan())}

	if _, ok := q.accept(token.LBracket); ok {
		bound, err := Parse(q, "ArrayBound", ParseArrayBound)
		if err != nil {
			return nil, err
		}
		rb, err := q.ConsumeExpected(token.RBracket)
		if err != nil {
			return nil, err
		}
		d.Bound = bound
		d.Span = d.Span.Cover(rb.Span)
	}
	return d, nil
}

// ParseProcedureDecl parses a procedure header followed by its body:
//
//	procedure <id> : <type_mark> ( [param {, param}] )
//	{declaration ;} begin {statement ;} end procedure
func ParseProcedureDecl(q *TokenQueue) (*ast.ProcedureDecl, error) {
	kw, err := q.ConsumeExpected(token.KwProcedure)
	if err != nil {
		return nil, err
	}
	name, err := ParseIdentifier(q)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.Colon); err != nil {
		return nil, err
	}
	result, err := Parse(q, "TypeMark", ParseTypeMark)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.LParen); err != nil {
		return nil, err
	}
	params, err := Parse(q, "ParameterList", parseParameterList)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.RParen); err != nil {
		return nil, err
	}

	decls, _, err := terminatedList(q, "Declaration", ParseDeclaration, expectDeclOrBegin, token.KwBegin)
	if err != nil {
		return nil, err
	}
	stmts, _, err := terminatedList(q, "Statement", ParseStatement, expectStmtOrEnd, token.KwEnd)
	if err != nil {
		return nil, err
	}
	end, err := q.ConsumeExpected(token.KwProcedure)
	if err != nil {
		return nil, err
	}

	return &ast.ProcedureDecl{
		Name:   name,
		Result: result,
		Params: params,
		Decls:  decls,
		Stmts:  stmts,
		Span:   kw.Span.Cover(end.Span),
	}, nil
}

// parseParameterList parses `[variable_declaration {, variable_declaration}]`
// up to, but not including, the closing ')'.
func parseParameterList(q *TokenQueue) ([]*ast.VariableDecl, error) {
	if q.at(token.RParen) {
		return nil, nil
	}
	var params []*ast.VariableDecl
	for {
		p, err := Parse(q, "Parameter", ParseVariableDecl)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
		if _, ok := q.accept(token.Comma); !ok {
			return params, nil
		}
	}
}
