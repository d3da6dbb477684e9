package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

// builtinSeeds покрывают все формы грамматики, даже если testdata нет.
var builtinSeeds = []string{
	"",
	"program p is begin end program.",
	"program p is variable a : integer[4]; begin a[0] := 1 + 2 * 3; end program.",
	"program p is global procedure f : bool (variable x : float) begin return not x < 1.5; end procedure; begin end program.",
	"program p is begin if (a == b) then c := \"s\"; else c := (d | e); end if; end program.",
	"program p is begin for (i := 0; i <= 10) i := i + 1; end for; end program.",
	"/* a /* nested */ comment */ // line\nprogram p is begin end program.",
	"program p is begin x := \"open",
	"program p is /* open",
	"program p is begin x := 1 ? 2; end program.",
	"program p is begin end program. trailing",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.src файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".src" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
