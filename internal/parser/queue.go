package parser

import (
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
	"github.com/cooldudemcgeexl/crust/internal/trace"
)

// TokenQueue is a forward-only reader over a scanned token slice.
// Popped tokens are never revisited; there is no rewind.
type TokenQueue struct {
	toks []token.Token
	pos  int
	last source.Span // span последнего снятого токена

	tracer trace.Tracer
	parent uint64 // span ID, под которым открываются правила
	depth  int
}

// NewTokenQueue wraps toks. The slice is not copied and must not be modified
// while the queue is in use.
func NewTokenQueue(toks []token.Token) *TokenQueue {
	q := &TokenQueue{toks: toks, tracer: trace.Nop}
	if len(toks) > 0 {
		// до первого pop ошибки EOF указывают на начало файла
		q.last = source.Span{File: toks[0].Span.File, Start: toks[0].Span.Start, End: toks[0].Span.Start}
	}
	return q
}

// WithTracer makes every rule invoked through Parse emit begin/end events
// under parent at trace.ScopeRule.
func (q *TokenQueue) WithTracer(t trace.Tracer, parent uint64) *TokenQueue {
	if t == nil {
		t = trace.Nop
	}
	q.tracer = t
	q.parent = parent
	return q
}

// Len returns the number of tokens not yet popped.
func (q *TokenQueue) Len() int {
	return len(q.toks) - q.pos
}

// LastSpan returns the span of the most recently popped token.
func (q *TokenQueue) LastSpan() source.Span {
	return q.last
}

// PeekFront returns the front token without consuming it.
func (q *TokenQueue) PeekFront() (token.Token, bool) {
	if q.pos >= len(q.toks) {
		return token.Token{}, false
	}
	return q.toks[q.pos], true
}

// PopFront removes and returns the front token.
func (q *TokenQueue) PopFront() (token.Token, bool) {
	if q.pos >= len(q.toks) {
		return token.Token{}, false
	}
	tok := q.toks[q.pos]
	q.pos++
	q.last = tok.Span
	return tok, true
}

// ConsumeExpected pops the front token and requires it to be of kind k.
// Only the kind is compared: for Ident, NumberLit and StringLit any payload
// matches and the caller reads it from the returned token. Other kinds carry
// no payload, so a kind match is the same as Token.Same.
func (q *TokenQueue) ConsumeExpected(k token.Kind) (token.Token, error) {
	tok, ok := q.PopFront()
	if !ok {
		return token.Token{}, q.eof(k.String())
	}
	if tok.Kind != k {
		return token.Token{}, &UnexpectedTokenError{Expected: k.String(), Found: tok}
	}
	return tok, nil
}

// ConsumeIdentifier pops the front token, requires an identifier and returns
// its (lowercased) text.
func (q *TokenQueue) ConsumeIdentifier() (string, error) {
	tok, err := q.ConsumeExpected(token.Ident)
	if err != nil {
		return "", err
	}
	return tok.Text, nil
}

// at reports whether the front token has kind k.
func (q *TokenQueue) at(k token.Kind) bool {
	tok, ok := q.PeekFront()
	return ok && tok.Kind == k
}

// accept pops the front token if it has kind k.
func (q *TokenQueue) accept(k token.Kind) (token.Token, bool) {
	if !q.at(k) {
		return token.Token{}, false
	}
	tok, _ := q.PopFront()
	return tok, true
}

// exhausted is true when nothing but the EOF marker (or nothing) remains.
func (q *TokenQueue) exhausted() bool {
	tok, ok := q.PeekFront()
	return !ok || tok.Kind == token.EOF
}

// eof builds an UnexpectedEOFError placed right after the last popped token.
func (q *TokenQueue) eof(expected string) *UnexpectedEOFError {
	return &UnexpectedEOFError{Expected: expected, Span: q.last.Tail()}
}

// unexpected pops the front token and reports it as not matching expected.
func (q *TokenQueue) unexpected(expected string) error {
	tok, ok := q.PopFront()
	if !ok {
		return q.eof(expected)
	}
	return &UnexpectedTokenError{Expected: expected, Found: tok}
}
