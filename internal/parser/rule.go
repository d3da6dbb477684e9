package parser

import (
	"strconv"

	"github.com/cooldudemcgeexl/crust/internal/token"
	"github.com/cooldudemcgeexl/crust/internal/trace"
)

// Rule is the uniform shape of a grammar rule: consume the prefix of q that
// forms one T, or fail. Tokens popped before a failure stay popped.
type Rule[T any] func(q *TokenQueue) (T, error)

// Parse runs rule on q. With a tracer attached it wraps the call in a
// rule-scoped span named after the rule.
func Parse[T any](q *TokenQueue, name string, rule Rule[T]) (T, error) {
	if !q.tracer.Enabled() {
		return rule(q)
	}

	span := trace.BeginAt(q.tracer, trace.ScopeRule, "rule:"+name, q.parent, q.depth)
	parent := q.parent
	q.parent = span.ID()
	q.depth++
	before := q.Len()

	v, err := rule(q)

	q.depth--
	q.parent = parent
	span.WithExtra("tokens", strconv.Itoa(before-q.Len()))
	if err != nil {
		span.End(err.Error())
	} else {
		span.End("ok")
	}
	return v, err
}

// terminatedList parses `{ item ; }` until one of stops is at the front.
// The terminator is popped and returned. Running out of input first yields
// UnexpectedEOFError naming expected.
func terminatedList[T any](q *TokenQueue, name string, item Rule[T], expected string, stops ...token.Kind) ([]T, token.Token, error) {
	var items []T
	for {
		if q.exhausted() {
			return nil, token.Token{}, q.eof(expected)
		}
		front, _ := q.PeekFront()
		for _, stop := range stops {
			if front.Kind == stop {
				tok, _ := q.PopFront()
				return items, tok, nil
			}
		}
		v, err := Parse(q, name, item)
		if err != nil {
			return nil, token.Token{}, err
		}
		if _, err := q.ConsumeExpected(token.Semicolon); err != nil {
			return nil, token.Token{}, err
		}
		items = append(items, v)
	}
}
