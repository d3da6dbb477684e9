package parser

import (
	"context"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/lexer"
	"github.com/cooldudemcgeexl/crust/internal/token"
	"github.com/cooldudemcgeexl/crust/internal/trace"
)

// ParseTokens parses a scanned token stream as exactly one program.
// Rule spans go to the tracer carried by ctx, under its current span.
func ParseTokens(ctx context.Context, toks []token.Token) (*ast.Program, error) {
	q := NewTokenQueue(toks).WithTracer(trace.FromContext(ctx), trace.CurrentSpan(ctx))
	return Parse(q, "Program", ParseProgram)
}

// ParseSource scans and parses src in one go. The returned error is either a
// token.Error or a parser.Error.
func ParseSource(ctx context.Context, src string) (*ast.Program, error) {
	toks, err := lexer.ScanString(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(ctx, toks)
}
