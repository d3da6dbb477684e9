package parser

import (
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/token"
)

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a / b * c", "(* (/ a b) c)"},
		// сравнения связывают сильнее + и -
		{"a + b < c", "(+ a (< b c))"},
		{"a < b * c", "(< a (* b c))"},
		{"a == b & c != d", "(& (== a b) (!= c d))"},
		{"a | b & c", "(& (| a b) c)"},
		{"not a & b", "(& (not a) b)"},
		{"not a + b", "(not (+ a b))"},
		{"(a + b) * c", "(* {(+ a b)} c)"},
		{"x >= 1 | y <= 2", "(| (>= x 1) (<= y 2))"},
		{"a > b", "(> a b)"},
	}
	for _, tt := range tests {
		if got := sexpr(mustExpr(t, tt.src)); got != tt.want {
			t.Errorf("%q → %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExpressionFactors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"-x", "(- x)"},
		{"-3.5", "(- 3.5)"},
		{"-arr[2]", "(- arr[2])"},
		{"f()", "f()"},
		{"Max(a, b + 1, g(c))", "max(a, (+ b 1), g(c))"},
		{"arr[i * 2]", "arr[(* i 2)]"},
		{`"Text"`, `"Text"`},
		{"TRUE", "true"},
		{"false", "false"},
		{"1_000", "1_000"},
	}
	for _, tt := range tests {
		if got := sexpr(mustExpr(t, tt.src)); got != tt.want {
			t.Errorf("%q → %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
		found    token.Kind
	}{
		{"", expectFactor, token.EOF},
		{"+ 1", expectFactor, token.Plus},
		{"-(x)", "Identifier, NumberLiteral", token.LParen},
		{"-true", "Identifier, NumberLiteral", token.KwTrue},
		{"(a + b", "RParen", token.EOF},
		{"f(a b)", "RParen", token.Ident},
		{"a[1", "RBracket", token.EOF},
		{"1 *", expectFactor, token.EOF},
		{"not not a", expectFactor, token.KwNot},
	}
	for _, tt := range tests {
		_, err := ParseExpression(queueFor(t, tt.src))
		expectUnexpectedToken(t, err, tt.expected, tt.found)
	}
}

func TestExpressionSpans(t *testing.T) {
	src := "a + f(b)[0]"
	// f(b): вызов; индексирование вызова грамматикой не допускается,
	// поэтому разбор останавливается перед '['
	q := queueFor(t, src)
	x, err := ParseExpression(q)
	if err != nil {
		t.Fatal(err)
	}
	if got := src[x.Pos().Start:x.Pos().End]; got != "a + f(b)" {
		t.Errorf("span text = %q", got)
	}
	if front, _ := q.PeekFront(); front.Kind != token.LBracket {
		t.Errorf("front = %s, want LBracket", front)
	}
}
