package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

const prettySrc = "program demo is\nbegin x := /*ops\n"

// unterminatedBag returns a bag with one LEX error pointing at `/*ops`.
func unterminatedBag(t *testing.T, path string) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(path, []byte(prettySrc))

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnterminatedBlock,
		source.Span{File: fileID, Start: 27, End: 32},
		"unterminated block comment",
	)
	bag.Add(d)
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := unterminatedBag(t, "/home/user/project/src/demo.src")
	fs.SetBaseDir("/home/user/project")

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "Absolute path", mode: PathModeAbsolute, contains: "/home/user/project/src/demo.src:2:12"},
		{name: "Relative path", mode: PathModeRelative, contains: "src/demo.src:2:12"},
		{name: "Basename only", mode: PathModeBasename, contains: "demo.src:2:12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1004: unterminated block comment") {
				t.Errorf("Expected header with severity and code, got:\n%s", output)
			}
		})
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeRelative})
	if strings.Contains(buf.String(), "/home/user") {
		t.Errorf("relative mode leaked absolute path:\n%s", buf.String())
	}
}

func TestPrettySnippet(t *testing.T) {
	bag, fs := unterminatedBag(t, "demo.src")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	want := []string{
		"demo.src:2:12: ERROR LEX1004: unterminated block comment",
		" 1 | program demo is",
		" 2 | begin x := /*ops",
		"   |            ^~~~~",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\n got %q\nwant %q", i, lines[i], want[i])
		}
	}
}

func TestPrettyNoContext(t *testing.T) {
	bag, fs := unterminatedBag(t, "demo.src")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "program demo is") {
		t.Errorf("context line printed with Context=0:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "^~~~~") {
		t.Errorf("caret missing:\n%s", buf.String())
	}
}

func TestPrettyTabsExpanded(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("tab.src", []byte("\tx := ?\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 6, End: 7}, "unexpected character '?'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{TabWidth: 2})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if lines[1] != " 1 |   x := ?" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "   |        ^" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("n.src", []byte("program p is\nbegin\nend program.\n"))
	bag := diag.NewBag(0)
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 8, End: 9}, "expected Is, found Ident").
		WithNote(source.Span{File: id, Start: 0, End: 7}, "program header starts here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: false})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed while disabled:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(buf.String(), "note: n.src:1:1: program header starts here") {
		t.Errorf("note missing:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs := unterminatedBag(t, "demo.src")

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output contains escape codes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escape codes: %q", colored.String())
	}
}
