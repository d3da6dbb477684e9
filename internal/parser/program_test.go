package parser

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/token"
	"github.com/cooldudemcgeexl/crust/internal/trace"
)

func TestMinimalProgram(t *testing.T) {
	prog := mustParse(t, "program Foo is begin end program.")
	if prog.Header.Name.Name != "foo" {
		t.Errorf("header name = %q, want foo", prog.Header.Name.Name)
	}
	if len(prog.Body.Decls) != 0 || len(prog.Body.Stmts) != 0 {
		t.Errorf("want empty body, got %d decls %d stmts", len(prog.Body.Decls), len(prog.Body.Stmts))
	}
}

func TestParseEOFOnly(t *testing.T) {
	_, err := ParseSource(context.Background(), "")
	expectUnexpectedToken(t, err, "Program", token.EOF)
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
		found    token.Kind
	}{
		{"begin", "Program", token.KwBegin},
		{"program is", "Identifier", token.KwIs},
		{"program foo begin", "Is", token.KwBegin},
		{"program 12 is", "Identifier", token.NumberLit},
	}
	for _, tt := range tests {
		_, err := ParseHeader(queueFor(t, tt.src))
		expectUnexpectedToken(t, err, tt.expected, tt.found)
	}
}

func TestTrailingGarbage(t *testing.T) {
	_, err := ParseSource(context.Background(), "program foo is begin end program. extra")
	var ee *ExpectedEOFError
	if !errors.As(err, &ee) {
		t.Fatalf("want ExpectedEOFError, got %T: %v", err, err)
	}
	if ee.Found.Kind != token.Ident || ee.Found.Text != "extra" {
		t.Errorf("Found = %s, want Identifier(\"extra\")", ee.Found)
	}
}

func TestTokensAfterEOF(t *testing.T) {
	toks := []token.Token{
		{Kind: token.KwProgram}, {Kind: token.Ident, Text: "p"}, {Kind: token.KwIs},
		{Kind: token.KwBegin}, {Kind: token.KwEnd}, {Kind: token.KwProgram}, {Kind: token.Period},
		{Kind: token.EOF}, {Kind: token.Semicolon},
	}
	_, err := ParseProgram(NewTokenQueue(toks))
	var ee *ExpectedEOFError
	if !errors.As(err, &ee) || ee.Found.Kind != token.Semicolon {
		t.Fatalf("want ExpectedEOFError(Semicolon), got %v", err)
	}
}

func TestMissingPeriod(t *testing.T) {
	_, err := ParseSource(context.Background(), "program foo is begin end program")
	expectUnexpectedToken(t, err, "Period", token.EOF)
}

func TestBodyUnexpectedEOF(t *testing.T) {
	tests := []struct {
		name     string
		toks     []token.Token
		expected string
	}{
		{
			name:     "declarations",
			toks:     []token.Token{{Kind: token.KwProgram}, {Kind: token.Ident, Text: "p"}, {Kind: token.KwIs}},
			expected: expectDeclOrBegin,
		},
		{
			name:     "statements",
			toks:     []token.Token{{Kind: token.KwProgram}, {Kind: token.Ident, Text: "p"}, {Kind: token.KwIs}, {Kind: token.KwBegin}},
			expected: expectStmtOrEnd,
		},
		{
			name:     "eof marker counts as end",
			toks:     []token.Token{{Kind: token.KwProgram}, {Kind: token.Ident, Text: "p"}, {Kind: token.KwIs}, {Kind: token.EOF}},
			expected: expectDeclOrBegin,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProgram(NewTokenQueue(tt.toks))
			var eof *UnexpectedEOFError
			if !errors.As(err, &eof) {
				t.Fatalf("want UnexpectedEOFError, got %T: %v", err, err)
			}
			if eof.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", eof.Expected, tt.expected)
			}
		})
	}
}

func TestBodyMissingSemicolon(t *testing.T) {
	_, err := ParseSource(context.Background(), wrapProgram("variable x : integer", ""))
	expectUnexpectedToken(t, err, "Semicolon", token.KwBegin)
}

func TestBodyEndWithoutProgram(t *testing.T) {
	_, err := ParseSource(context.Background(), "program p is begin end.")
	expectUnexpectedToken(t, err, "Program", token.Period)
}

func TestProgramSpan(t *testing.T) {
	src := "  program p is begin end program.  "
	prog := mustParse(t, src)
	if got := src[prog.Span.Start:prog.Span.End]; got != "program p is begin end program." {
		t.Errorf("program span text = %q", got)
	}
	if got := src[prog.Header.Span.Start:prog.Header.Span.End]; got != "program p is" {
		t.Errorf("header span text = %q", got)
	}
}

func TestRuleTracing(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	if _, err := ParseSource(ctx, "program p is begin end program."); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"→ rule:Program", "  → rule:Header", "← rule:Body (ok)"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output lacks %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if _, err := ParseSource(ctx, "program is"); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "← rule:Header (expected Identifier") {
		t.Errorf("failing rule must end with the error:\n%s", buf.String())
	}
}

func TestTracingOffByDefault(t *testing.T) {
	q := queueFor(t, "program p is")
	if q.tracer.Enabled() {
		t.Fatal("new queue must not trace")
	}
	if _, err := Parse(q, "Header", ParseHeader); err != nil {
		t.Fatal(err)
	}
}
