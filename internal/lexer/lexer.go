package lexer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// Lexer turns the content of one file into tokens.
// A Lexer is single-use and must not be shared between goroutines:
// the case folder it owns is stateful.
type Lexer struct {
	file   *source.File
	cursor Cursor
	fold   cases.Caser

	st    state
	acc   strings.Builder // текст текущего незавершённого токена
	start Mark            // где начался текущий токен
	depth int             // вложенность /* */
	prev  rune            // предыдущий символ внутри блочного комментария

	out []token.Token
}

// New creates a lexer over file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		fold:   cases.Lower(language.Und),
		out:    make([]token.Token, 0, len(file.Content)/4+1),
	}
}

// Tokenize scans the whole file. On success the result ends with exactly one
// EOF token. The first unrecognised symbol aborts the scan with a token.Error.
func (lx *Lexer) Tokenize() ([]token.Token, error) {
	for !lx.cursor.EOF() {
		r, raw := lx.cursor.PeekRune()
		advance, err := lx.step(r, raw)
		if err != nil {
			return nil, err
		}
		if advance {
			lx.cursor.Advance(len(raw))
		}
	}
	if err := lx.finish(); err != nil {
		return nil, err
	}
	lx.out = append(lx.out, token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(lx.cursor.Mark())})
	return lx.out, nil
}

// ScanString tokenizes src as an anonymous in-memory file.
func ScanString(src string) ([]token.Token, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(src))
	return New(fs.Get(id)).Tokenize()
}

func (lx *Lexer) emit(k token.Kind, text string, sp source.Span) {
	lx.out = append(lx.out, token.Token{Kind: k, Text: text, Span: sp})
}

// begin opens a multi-character run at the current position.
func (lx *Lexer) begin(st state, raw []byte) {
	lx.st = st
	lx.start = lx.cursor.Mark()
	lx.acc.Reset()
	lx.acc.Write(raw)
}

func (lx *Lexer) reset() {
	lx.st = stateNone
	lx.acc.Reset()
}
