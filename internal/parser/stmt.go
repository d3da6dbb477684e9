package parser

import (
	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

const expectStatement = "Identifier, If, For, Return"

// ParseStatement parses one assignment, if, for or return statement.
// The trailing ';' belongs to the enclosing list.
func ParseStatement(q *TokenQueue) (ast.Statement, error) {
	front, ok := q.PeekFront()
	if !ok {
		return nil, q.eof(expectStatement)
	}
	switch front.Kind {
	case token.Ident:
		return statement(Parse(q, "Assignment", ParseAssignment))
	case token.KwIf:
		return statement(Parse(q, "IfStatement", ParseIf))
	case token.KwFor:
		return statement(Parse(q, "LoopStatement", ParseLoop))
	case token.KwReturn:
		return statement(Parse(q, "ReturnStatement", ParseReturn))
	default:
		return nil, q.unexpected(expectStatement)
	}
}

// statement keeps a failed sub-rule from leaking a typed nil into the interface.
func statement[T ast.Statement](s T, err error) (ast.Statement, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ParseAssignment parses `destination := expression`.
func ParseAssignment(q *TokenQueue) (*ast.AssignStmt, error) {
	dest, err := Parse(q, "Destination", parseName)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.Assign); err != nil {
		return nil, err
	}
	value, err := Parse(q, "Expression", ParseExpression)
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Dest: dest, Value: value, Span: dest.Span.Cover(value.Pos())}, nil
}

// ParseIf parses `if ( expr ) then {stmt ;} [else {stmt ;}] end if`.
func ParseIf(q *TokenQueue) (*ast.IfStmt, error) {
	kw, err := q.ConsumeExpected(token.KwIf)
	if err != nil {
		return nil, err
	}
	cond, err := parseParenCond(q)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.KwThen); err != nil {
		return nil, err
	}

	s := &ast.IfStmt{Cond: cond}
	thenStmts, stop, err := terminatedList(q, "Statement", ParseStatement, "Identifier, If, For, Return, Else, End", token.KwElse, token.KwEnd)
	if err != nil {
		return nil, err
	}
	s.Then = thenStmts
	if stop.Kind == token.KwElse {
		elseStmts, _, err := terminatedList(q, "Statement", ParseStatement, expectStmtOrEnd, token.KwEnd)
		if err != nil {
			return nil, err
		}
		if elseStmts == nil {
			elseStmts = []ast.Statement{}
		}
		s.Else = elseStmts
	}
	end, err := q.ConsumeExpected(token.KwIf)
	if err != nil {
		return nil, err
	}
	s.Span = kw.Span.Cover(end.Span)
	return s, nil
}

// ParseLoop parses `for ( assignment ; expr ) {stmt ;} end for`.
func ParseLoop(q *TokenQueue) (*ast.LoopStmt, error) {
	kw, err := q.ConsumeExpected(token.KwFor)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.LParen); err != nil {
		return nil, err
	}
	init, err := Parse(q, "Assignment", ParseAssignment)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.Semicolon); err != nil {
		return nil, err
	}
	cond, err := Parse(q, "Expression", ParseExpression)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.RParen); err != nil {
		return nil, err
	}
	body, _, err := terminatedList(q, "Statement", ParseStatement, expectStmtOrEnd, token.KwEnd)
	if err != nil {
		return nil, err
	}
	end, err := q.ConsumeExpected(token.KwFor)
	if err != nil {
		return nil, err
	}
	return &ast.LoopStmt{Init: init, Cond: cond, Body: body, Span: kw.Span.Cover(end.Span)}, nil
}

// ParseReturn parses `return expression`.
func ParseReturn(q *TokenQueue) (*ast.ReturnStmt, error) {
	kw, err := q.ConsumeExpected(token.KwReturn)
	if err != nil {
		return nil, err
	}
	value, err := Parse(q, "Expression", ParseExpression)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value, Span: kw.Span.Cover(value.Pos())}, nil
}

func parseParenCond(q *TokenQueue) (ast.Expr, error) {
	if _, err := q.ConsumeExpected(token.LParen); err != nil {
		return nil, err
	}
	cond, err := Parse(q, "Expression", ParseExpression)
	if err != nil {
		return nil, err
	}
	if _, err := q.ConsumeExpected(token.RParen); err != nil {
		return nil, err
	}
	return cond, nil
}
