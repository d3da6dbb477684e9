package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/lexer"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

func scanFile(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.src", []byte(src))
	toks, err := lexer.New(fs.Get(id)).Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	return toks, fs
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs := scanFile(t, "x := \"hi\";\ny")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("got %d lines for %d tokens:\n%s", len(lines), len(toks), buf.String())
	}
	if !strings.Contains(lines[0], `Identifier      "x" at 1:1-1:2`) {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Assignment") || strings.Contains(lines[1], `""`) {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], `StringLiteral   "hi" at 1:6-1:10`) {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(lines[4], "at 2:1-2:2") {
		t.Errorf("line 4 = %q", lines[4])
	}
	if !strings.Contains(lines[len(lines)-1], "EOF") {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := scanFile(t, "begin 12.5")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	want := []TokenOutput{
		{Kind: "Begin", Start: 0, End: 5},
		{Kind: "NumberLiteral", Text: "12.5", Start: 6, End: 10},
		{Kind: "EOF", Start: 10, End: 10},
	}
	if len(out) != len(want) {
		t.Fatalf("got %+v", out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, out[i], want[i])
		}
	}
}
