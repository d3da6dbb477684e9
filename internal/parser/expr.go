package parser

import (
	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

const expectFactor = "Expression"

// уровни приоритета, от слабого к сильному:
// & |  →  + -  →  < >= <= > == !=  →  * /
var (
	exprOps = map[token.Kind]ast.BinaryOp{
		token.Amp:  ast.OpAnd,
		token.Pipe: ast.OpOr,
	}
	arithOps = map[token.Kind]ast.BinaryOp{
		token.Plus:  ast.OpAdd,
		token.Minus: ast.OpSub,
	}
	relOps = map[token.Kind]ast.BinaryOp{
		token.Lt:     ast.OpLt,
		token.GtEq:   ast.OpGtEq,
		token.LtEq:   ast.OpLtEq,
		token.Gt:     ast.OpGt,
		token.EqEq:   ast.OpEq,
		token.BangEq: ast.OpNe,
	}
	termOps = map[token.Kind]ast.BinaryOp{
		token.Star:  ast.OpMul,
		token.Slash: ast.OpDiv,
	}
)

// ParseExpression parses `[not] arith_op { (& | '|') arith_op }`.
// `not` applies to the first operand only.
func ParseExpression(q *TokenQueue) (ast.Expr, error) {
	var first ast.Expr
	if not, ok := q.accept(token.KwNot); ok {
		x, err := parseArith(q)
		if err != nil {
			return nil, err
		}
		first = &ast.UnaryExpr{Op: ast.OpNot, X: x, Span: not.Span.Cover(x.Pos())}
	} else {
		x, err := parseArith(q)
		if err != nil {
			return nil, err
		}
		first = x
	}
	return binaryLoop(q, first, exprOps, parseArith)
}

func parseArith(q *TokenQueue) (ast.Expr, error) {
	left, err := parseRelation(q)
	if err != nil {
		return nil, err
	}
	return binaryLoop(q, left, arithOps, parseRelation)
}

func parseRelation(q *TokenQueue) (ast.Expr, error) {
	left, err := parseTerm(q)
	if err != nil {
		return nil, err
	}
	return binaryLoop(q, left, relOps, parseTerm)
}

func parseTerm(q *TokenQueue) (ast.Expr, error) {
	left, err := Parse(q, "Factor", parseFactor)
	if err != nil {
		return nil, err
	}
	return binaryLoop(q, left, termOps, func(q *TokenQueue) (ast.Expr, error) {
		return Parse(q, "Factor", parseFactor)
	})
}

// binaryLoop folds `left {op next}` into a left-associative chain.
func binaryLoop(q *TokenQueue, left ast.Expr, ops map[token.Kind]ast.BinaryOp, next Rule[ast.Expr]) (ast.Expr, error) {
	for {
		front, ok := q.PeekFront()
		if !ok {
			return left, nil
		}
		op, isOp := ops[front.Kind]
		if !isOp {
			return left, nil
		}
		q.PopFront()
		right, err := next(q)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Span: left.Pos().Cover(right.Pos())}
	}
}

// parseFactor parses
//
//	( expression ) | identifier ( [args] ) | [-] name | [-] number
//	| string | true | false
func parseFactor(q *TokenQueue) (ast.Expr, error) {
	front, ok := q.PeekFront()
	if !ok {
		return nil, q.eof(expectFactor)
	}
	switch front.Kind {
	case token.LParen:
		q.PopFront()
		x, err := Parse(q, "Expression", ParseExpression)
		if err != nil {
			return nil, err
		}
		rp, err := q.ConsumeExpected(token.RParen)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{X: x, Span: front.Span.Cover(rp.Span)}, nil

	case token.Ident:
		id, _ := ParseIdentifier(q)
		if q.at(token.LParen) {
			call, err := parseCallRest(q, id)
			if err != nil {
				return nil, err
			}
			return call, nil
		}
		name, err := parseNameRest(q, id)
		if err != nil {
			return nil, err
		}
		return name, nil

	case token.Minus:
		q.PopFront()
		var x ast.Expr
		switch {
		case q.at(token.Ident):
			name, err := parseName(q)
			if err != nil {
				return nil, err
			}
			x = name
		case q.at(token.NumberLit):
			num, err := parseNumberExpr(q)
			if err != nil {
				return nil, err
			}
			x = num
		default:
			return nil, q.unexpected("Identifier, NumberLiteral")
		}
		return &ast.UnaryExpr{Op: ast.OpNeg, X: x, Span: front.Span.Cover(x.Pos())}, nil

	case token.NumberLit:
		return parseNumberExpr(q)

	case token.StringLit:
		s, err := ParseString(q)
		if err != nil {
			return nil, err
		}
		return &ast.StringExpr{Value: s}, nil

	case token.KwTrue, token.KwFalse:
		q.PopFront()
		return &ast.BoolExpr{Value: front.Kind == token.KwTrue, Span: front.Span}, nil
	}
	return nil, q.unexpected(expectFactor)
}

func parseNumberExpr(q *TokenQueue) (ast.Expr, error) {
	n, err := ParseNumber(q)
	if err != nil {
		return nil, err
	}
	return &ast.NumberExpr{Value: n}, nil
}

// parseName parses `identifier [ '[' expression ']' ]`.
func parseName(q *TokenQueue) (*ast.NameExpr, error) {
	id, err := ParseIdentifier(q)
	if err != nil {
		return nil, err
	}
	return parseNameRest(q, id)
}

func parseNameRest(q *TokenQueue, id ast.Identifier) (*ast.NameExpr, error) {
	n := &ast.NameExpr{Name: id, Span: id.Span}
	if _, ok := q.accept(token.LBracket); !ok {
		return n, nil
	}
	idx, err := Parse(q, "Expression", ParseExpression)
	if err != nil {
		return nil, err
	}
	rb, err := q.ConsumeExpected(token.RBracket)
	if err != nil {
		return nil, err
	}
	n.Index = idx
	n.Span = id.Span.Cover(rb.Span)
	return n, nil
}

// parseCallRest parses `( [expression {, expression}] )` after the callee.
func parseCallRest(q *TokenQueue, callee ast.Identifier) (*ast.CallExpr, error) {
	if _, err := q.ConsumeExpected(token.LParen); err != nil {
		return nil, err
	}
	call := &ast.CallExpr{Callee: callee}
	if !q.at(token.RParen) {
		for {
			arg, err := Parse(q, "Expression", ParseExpression)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if _, ok := q.accept(token.Comma); !ok {
				break
			}
		}
	}
	rp, err := q.ConsumeExpected(token.RParen)
	if err != nil {
		return nil, err
	}
	call.Span = callee.Span.Cover(rp.Span)
	return call, nil
}
