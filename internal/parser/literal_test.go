package parser

import (
	"errors"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

func TestParseTypeMark(t *testing.T) {
	tests := []struct {
		src  string
		want ast.TypeMark
	}{
		{"integer", ast.TypeInteger},
		{"FLOAT", ast.TypeFloat},
		{"String", ast.TypeString},
		{"bool", ast.TypeBool},
	}
	for _, tt := range tests {
		got, err := ParseTypeMark(queueFor(t, tt.src))
		if err != nil || got != tt.want {
			t.Errorf("ParseTypeMark(%q) = %v, %v; want %v", tt.src, got, err, tt.want)
		}
	}

	_, err := ParseTypeMark(queueFor(t, "char"))
	expectUnexpectedToken(t, err, "TypeMark", token.Ident)

	_, err = ParseTypeMark(NewTokenQueue(nil))
	var eof *UnexpectedEOFError
	if !errors.As(err, &eof) || eof.Expected != "TypeMark" {
		t.Errorf("want UnexpectedEOFError(TypeMark), got %v", err)
	}
}

func TestParseNumberKeepsText(t *testing.T) {
	n, err := ParseNumber(queueFor(t, "12_345"))
	if err != nil || n.Text != "12_345" {
		t.Fatalf("ParseNumber = %+v, %v", n, err)
	}
	_, err = ParseNumber(queueFor(t, `"12"`))
	expectUnexpectedToken(t, err, "NumberLiteral", token.StringLit)
}

func TestParseArrayBound(t *testing.T) {
	b, err := ParseArrayBound(queueFor(t, "10"))
	if err != nil || b.Value.Text != "10" {
		t.Fatalf("ParseArrayBound = %+v, %v", b, err)
	}
	_, err = ParseArrayBound(queueFor(t, "x"))
	expectUnexpectedToken(t, err, "NumberLiteral", token.Ident)
}

func TestParseIdentifierAndString(t *testing.T) {
	id, err := ParseIdentifier(queueFor(t, "CamelCase"))
	if err != nil || id.Name != "camelcase" {
		t.Fatalf("ParseIdentifier = %+v, %v", id, err)
	}
	s, err := ParseString(queueFor(t, `"Keep CASE"`))
	if err != nil || s.Value != "Keep CASE" {
		t.Fatalf("ParseString = %+v, %v", s, err)
	}
}
