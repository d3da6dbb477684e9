package token

import (
	"fmt"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Error is the closed family of scan-time failures:
// *SingleTokenError, *CompoundTokenError, *UnterminatedError.
type Error interface {
	error
	Where() source.Span
	tokenError()
}

// SingleTokenError reports a character that starts no token.
type SingleTokenError struct {
	Char rune
	Span source.Span
}

func (e *SingleTokenError) Error() string {
	return fmt.Sprintf("unrecognized token %q", e.Char)
}

func (e *SingleTokenError) Where() source.Span { return e.Span }
func (*SingleTokenError) tokenError()          {}

// CompoundTokenError reports a two-character run that begins like a
// compound operator but is none of them (e.g. "=x", "!a").
type CompoundTokenError struct {
	Text string
	Span source.Span
}

func (e *CompoundTokenError) Error() string {
	return fmt.Sprintf("unrecognized compound token %q", e.Text)
}

func (e *CompoundTokenError) Where() source.Span { return e.Span }
func (*CompoundTokenError) tokenError()          {}

// UnterminatedError reports a block comment still open at end of input.
type UnterminatedError struct {
	What string // "block comment"
	Span source.Span
}

func (e *UnterminatedError) Error() string {
	return "unterminated " + e.What
}

func (e *UnterminatedError) Where() source.Span { return e.Span }
func (*UnterminatedError) tokenError()          {}
