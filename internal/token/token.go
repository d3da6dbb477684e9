package token

import (
	"fmt"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Token is one classified terminal together with its location.
type Token struct {
	Kind Kind
	Text string // payload for Ident, NumberLit, StringLit; empty otherwise
	Span source.Span
}

// Same reports structural equality: same kind and same payload. Spans are ignored.
func (t Token) Same(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// String renders the token the way diagnostics quote it: Identifier("foo"), Program, EOF.
func (t Token) String() string {
	if t.Kind.HasPayload() {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
