package parser

import (
	"errors"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

func TestParseAssignment(t *testing.T) {
	s, err := ParseStatement(queueFor(t, "Arr[i + 1] := 2 * x"))
	if err != nil {
		t.Fatal(err)
	}
	a, ok := s.(*ast.AssignStmt)
	if !ok {
		t.Fatalf("got %T", s)
	}
	if got := sexpr(a.Dest); got != "arr[(+ i 1)]" {
		t.Errorf("dest = %s", got)
	}
	if got := sexpr(a.Value); got != "(* 2 x)" {
		t.Errorf("value = %s", got)
	}
}

func TestParseIf(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		thenN    int
		hasElse  bool
		elseN    int
		wantCond string
	}{
		{"no else", "if (x < 1) then y := 1; end if", 1, false, 0, "(< x 1)"},
		{"with else", "if (not b) then y := 1; z := 2; else y := 0; end if", 2, true, 1, "(not b)"},
		{"empty branches", "if (true) then else end if", 0, true, 0, "true"},
		{"empty then", "if (a == b) then end if", 0, false, 0, "(== a b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseStatement(queueFor(t, tt.src))
			if err != nil {
				t.Fatal(err)
			}
			st := s.(*ast.IfStmt)
			if len(st.Then) != tt.thenN || st.HasElse() != tt.hasElse || len(st.Else) != tt.elseN {
				t.Errorf("then=%d else=%v/%d", len(st.Then), st.HasElse(), len(st.Else))
			}
			if got := sexpr(st.Cond); got != tt.wantCond {
				t.Errorf("cond = %s, want %s", got, tt.wantCond)
			}
		})
	}
}

func TestParseLoop(t *testing.T) {
	s, err := ParseStatement(queueFor(t, "for (i := 0; i < 10) s := s + i; i := i + 1; end for"))
	if err != nil {
		t.Fatal(err)
	}
	l := s.(*ast.LoopStmt)
	if l.Init.Dest.Name.Name != "i" || sexpr(l.Cond) != "(< i 10)" || len(l.Body) != 2 {
		t.Errorf("loop = init %s cond %s body %d", sexpr(l.Init.Value), sexpr(l.Cond), len(l.Body))
	}
}

func TestParseReturn(t *testing.T) {
	s, err := ParseStatement(queueFor(t, `return "done"`))
	if err != nil {
		t.Fatal(err)
	}
	if got := sexpr(s.(*ast.ReturnStmt).Value); got != `"done"` {
		t.Errorf("value = %s", got)
	}
}

func TestStatementsInProgram(t *testing.T) {
	prog := mustParse(t, wrapProgram("variable x : integer;", `
		x := 1;
		if (x > 0) then x := x - 1; end if;
		for (x := 0; x < 3) x := x + 1; end for;
		return x;`))
	kinds := []string{}
	for _, s := range prog.Body.Stmts {
		switch s.(type) {
		case *ast.AssignStmt:
			kinds = append(kinds, "assign")
		case *ast.IfStmt:
			kinds = append(kinds, "if")
		case *ast.LoopStmt:
			kinds = append(kinds, "for")
		case *ast.ReturnStmt:
			kinds = append(kinds, "return")
		}
	}
	want := []string{"assign", "if", "for", "return"}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("statement %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
		found    token.Kind
	}{
		{"12 := x", expectStatement, token.NumberLit},
		{"x 1", "Assignment", token.NumberLit},
		{"if x then end if", "LParen", token.Ident},
		{"if (x) y := 1; end if", "Then", token.Ident},
		{"if (x) then end for", "If", token.KwFor},
		{"for (i := 0, i < 1) end for", "Semicolon", token.Comma},
		{"for (i := 0; i < 1) end if", "For", token.KwIf},
		{"return", expectFactor, token.EOF},
	}
	for _, tt := range tests {
		_, err := ParseStatement(queueFor(t, tt.src))
		expectUnexpectedToken(t, err, tt.expected, tt.found)
	}
}

func TestUnterminatedStatementList(t *testing.T) {
	_, err := ParseStatement(queueFor(t, "if (x) then y := 1;"))
	var eof *UnexpectedEOFError
	if !errors.As(err, &eof) || eof.Expected != "Identifier, If, For, Return, Else, End" {
		t.Fatalf("want UnexpectedEOFError, got %v", err)
	}
}
