package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/lexer"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// queueFor сканирует src и оборачивает токены в очередь
func queueFor(t *testing.T, src string) *TokenQueue {
	t.Helper()
	toks, err := lexer.ScanString(src)
	if err != nil {
		t.Fatalf("scan %q: %v", src, err)
	}
	return NewTokenQueue(toks)
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := ParseSource(context.Background(), src)
	if err != nil {
		t.Fatalf("parse failed: %v\nsource:\n%s", err, src)
	}
	return prog
}

// wrapProgram кладёт объявления и операторы в минимальную программу
func wrapProgram(decls, stmts string) string {
	return "program test is\n" + decls + "\nbegin\n" + stmts + "\nend program."
}

func mustExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	q := queueFor(t, src)
	x, err := ParseExpression(q)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", src, err)
	}
	if !q.at(token.EOF) {
		front, _ := q.PeekFront()
		t.Fatalf("ParseExpression(%q) stopped early at %s", src, front)
	}
	return x
}

func expectUnexpectedToken(t *testing.T, err error, expected string, found token.Kind) *UnexpectedTokenError {
	t.Helper()
	var ut *UnexpectedTokenError
	if !errors.As(err, &ut) {
		t.Fatalf("want UnexpectedTokenError, got %T: %v", err, err)
	}
	if ut.Expected != expected || ut.Found.Kind != found {
		t.Fatalf("got expected=%q found=%s, want expected=%q found=%s", ut.Expected, ut.Found.Kind, expected, found)
	}
	return ut
}

// sexpr печатает выражение в скобочной форме для сравнения структуры
func sexpr(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.BinaryExpr:
		return "(" + x.Op.String() + " " + sexpr(x.Left) + " " + sexpr(x.Right) + ")"
	case *ast.UnaryExpr:
		return "(" + x.Op.String() + " " + sexpr(x.X) + ")"
	case *ast.NameExpr:
		if x.Index != nil {
			return x.Name.Name + "[" + sexpr(x.Index) + "]"
		}
		return x.Name.Name
	case *ast.CallExpr:
		s := x.Callee.Name + "("
		for i, a := range x.Args {
			if i > 0 {
				s += ", "
			}
			s += sexpr(a)
		}
		return s + ")"
	case *ast.NumberExpr:
		return x.Value.Text
	case *ast.StringExpr:
		return `"` + x.Value.Value + `"`
	case *ast.BoolExpr:
		if x.Value {
			return "true"
		}
		return "false"
	case *ast.ParenExpr:
		return "{" + sexpr(x.X) + "}"
	}
	return "?"
}
