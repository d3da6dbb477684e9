package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.src", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []rune{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		got, raw := cursor.PeekRune()
		if got != want {
			t.Errorf("PeekRune = %q, want %q", got, want)
		}
		cursor.Advance(len(raw))
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if r, raw := cursor.PeekRune(); r != utf8.RuneError || raw != nil {
		t.Error("PeekRune at EOF must return RuneError and no bytes")
	}
}

func TestPeekRune(t *testing.T) {
	cursor := NewCursor(createFile("é!"))

	r, raw := cursor.PeekRune()
	if r != 'é' || len(raw) != 2 {
		t.Fatalf("PeekRune = %q/%d bytes, want 'é'/2", r, len(raw))
	}
	cursor.Advance(len(raw))
	if r, raw = cursor.PeekRune(); r != '!' || len(raw) != 1 {
		t.Fatalf("PeekRune = %q/%d bytes, want '!'/1", r, len(raw))
	}
	cursor.Advance(10)
	if !cursor.EOF() || cursor.Off != cursor.Limit {
		t.Errorf("Advance past end: Off=%d Limit=%d", cursor.Off, cursor.Limit)
	}
	if _, raw = cursor.PeekRune(); raw != nil {
		t.Error("PeekRune at EOF must return nil bytes")
	}
}

func TestPeekRuneInvalidUTF8(t *testing.T) {
	cursor := NewCursor(createFile("\xff"))
	r, raw := cursor.PeekRune()
	if len(raw) != 1 {
		t.Fatalf("invalid byte must be consumed alone, got %d bytes (%q)", len(raw), r)
	}
}

func TestMarkAndSpan(t *testing.T) {
	file := createFile("abcdef")
	cursor := NewCursor(file)
	cursor.Advance(1)
	m := cursor.Mark()
	cursor.Advance(3)

	sp := cursor.SpanFrom(m)
	if sp.File != file.ID || sp.Start != 1 || sp.End != 4 {
		t.Errorf("SpanFrom = %v, want 1..4", sp)
	}
	sp = cursor.SpanOf(2)
	if sp.Start != 4 || sp.End != 6 {
		t.Errorf("SpanOf(2) = %v, want 4..6", sp)
	}
}
