package token_test

import (
	"errors"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

func TestKindNamesAreComplete(t *testing.T) {
	seen := make(map[string]token.Kind)
	for _, k := range token.Kinds() {
		name := k.String()
		if name == "" || name == "Kind(?)" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %d and %d share name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestKindClasses(t *testing.T) {
	keywords := 0
	for _, k := range token.Kinds() {
		if k.IsKeyword() && k.HasPayload() {
			t.Errorf("%v is both a keyword and a payload kind", k)
		}
		if k.IsKeyword() {
			keywords++
		}
	}
	if keywords != 19 {
		t.Errorf("got %d keywords, want 19", keywords)
	}
	for _, k := range []token.Kind{token.KwInteger, token.KwFloat, token.KwString, token.KwBool} {
		if !k.IsTypeMark() {
			t.Errorf("%v should be a type mark", k)
		}
	}
	if token.KwProgram.IsTypeMark() {
		t.Error("Program must not be a type mark")
	}
}

func TestTokenSameIgnoresSpan(t *testing.T) {
	a := token.Token{Kind: token.Ident, Text: "foo", Span: source.Span{Start: 0, End: 3}}
	b := token.Token{Kind: token.Ident, Text: "foo", Span: source.Span{Start: 10, End: 13}}
	c := token.Token{Kind: token.Ident, Text: "bar"}
	if !a.Same(b) {
		t.Fatal("tokens with equal kind and payload must be Same")
	}
	if a.Same(c) {
		t.Fatal("tokens with different payload must differ")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Ident, Text: "foo"}, `Identifier("foo")`},
		{token.Token{Kind: token.NumberLit, Text: "12_345"}, `NumberLiteral("12_345")`},
		{token.Token{Kind: token.KwProgram}, "Program"},
		{token.Token{Kind: token.Assign}, "Assignment"},
		{token.Token{Kind: token.EOF}, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorsImplementFamily(t *testing.T) {
	errs := []error{
		&token.SingleTokenError{Char: '@'},
		&token.CompoundTokenError{Text: "=x"},
		&token.UnterminatedError{What: "block comment"},
	}
	for _, err := range errs {
		var te token.Error
		if !errors.As(err, &te) {
			t.Errorf("%T does not implement token.Error", err)
		}
	}
	if got := (&token.SingleTokenError{Char: '@'}).Error(); got != `unrecognized token '@'` {
		t.Errorf("SingleTokenError message = %q", got)
	}
}
