package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Cursor is a byte position inside one file.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// PeekRune decodes the rune at the cursor together with its raw bytes.
// Invalid UTF-8 yields utf8.RuneError and a one-byte slice.
func (c *Cursor) PeekRune() (rune, []byte) {
	if c.EOF() {
		return utf8.RuneError, nil
	}
	rest := c.File.Content[c.Off:c.Limit]
	if rest[0] < utf8.RuneSelf {
		return rune(rest[0]), rest[:1]
	}
	r, size := utf8.DecodeRune(rest)
	return r, rest[:size]
}

// Advance moves the cursor n bytes forward, never past Limit.
func (c *Cursor) Advance(n int) {
	step, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor advance overflow: %w", err))
	}
	c.Off = min(c.Off+step, c.Limit)
}

// Mark is a saved cursor position used to build spans.
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m up to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// SpanOf returns the span of n bytes starting at the current position.
func (c *Cursor) SpanOf(n int) source.Span {
	sp := c.SpanFrom(c.Mark())
	step, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("span length overflow: %w", err))
	}
	sp.End = sp.Start + step
	return sp
}
