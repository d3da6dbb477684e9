package fuzztests

import (
	"errors"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/lexer"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.src", input))

		toks, err := lexer.New(file).Tokenize()
		if err != nil {
			var tokErr token.Error
			if !errors.As(err, &tokErr) {
				t.Fatalf("scanner returned foreign error %T: %v", err, err)
			}
			if toks != nil {
				t.Fatalf("tokens returned together with error %v", err)
			}
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("stream does not end in EOF: %v", toks)
		}
		for i, tok := range toks[:len(toks)-1] {
			if tok.Kind == token.EOF {
				t.Fatalf("EOF at %d before the end", i)
			}
			if tok.Span.End > uint32(len(file.Content)) || tok.Span.Start > tok.Span.End {
				t.Fatalf("token %d span %v out of bounds", i, tok.Span)
			}
		}
	})
}
