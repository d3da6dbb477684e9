package parser

import (
	"fmt"

	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// Error is the closed family of parse-time failures:
// *UnexpectedTokenError, *UnexpectedEOFError, *ExpectedEOFError.
type Error interface {
	error
	Where() source.Span
	parserError()
}

// UnexpectedTokenError: взятый токен не подходит правилу.
type UnexpectedTokenError struct {
	Expected string // описание ожидаемого, напр. "TypeMark" или "Begin"
	Found    token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

func (e *UnexpectedTokenError) Where() source.Span { return e.Found.Span }
func (*UnexpectedTokenError) parserError()         {}

// UnexpectedEOFError: вход кончился там, где нужен был ещё хотя бы один токен.
// Span is empty and sits right after the last consumed token.
type UnexpectedEOFError struct {
	Expected string
	Span     source.Span
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input, expected %s", e.Expected)
}

func (e *UnexpectedEOFError) Where() source.Span { return e.Span }
func (*UnexpectedEOFError) parserError()         {}

// ExpectedEOFError: программа разобрана, но после неё остался вход.
type ExpectedEOFError struct {
	Found token.Token
}

func (e *ExpectedEOFError) Error() string {
	return fmt.Sprintf("expected end of input, found %s", e.Found)
}

func (e *ExpectedEOFError) Where() source.Span { return e.Found.Span }
func (*ExpectedEOFError) parserError()         {}
