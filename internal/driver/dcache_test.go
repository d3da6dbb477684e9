package driver

import (
	"context"
	"os"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/lexer"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

func TestTokenCacheRoundTrip(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	first := fs.Get(fs.AddVirtual("a.src", []byte(goodProgram)))
	toks, err := lexer.New(first).Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Put(first, toks); err != nil {
		t.Fatal(err)
	}

	// тот же текст под другим FileID
	other := fs.Get(fs.AddVirtual("b.src", []byte(goodProgram)))
	got, hit, err := cache.Get(other)
	if err != nil || !hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	if len(got) != len(toks) {
		t.Fatalf("len = %d, want %d", len(got), len(toks))
	}
	for i := range toks {
		if !got[i].Same(toks[i]) || got[i].Span.Start != toks[i].Span.Start || got[i].Span.End != toks[i].Span.End {
			t.Errorf("token %d = %v, want %v", i, got[i], toks[i])
		}
		if got[i].Span.File != other.ID {
			t.Errorf("token %d not rebased: file %d", i, got[i].Span.File)
		}
	}

	miss := fs.Get(fs.AddVirtual("c.src", []byte("program c is begin end program.")))
	if _, hit, err := cache.Get(miss); hit || err != nil {
		t.Errorf("unexpected hit=%v err=%v", hit, err)
	}
}

func TestTokenCacheSchemaMismatch(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.src", []byte(goodProgram)))

	data, err := msgpack.Marshal(&TokenPayload{Schema: diskCacheSchemaVersion + 1, Path: "a.src"})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cache.pathFor(cacheKey(file.Hash)), data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := cache.Get(file); hit || err != nil {
		t.Errorf("stale schema: hit=%v err=%v", hit, err)
	}

	if err := os.WriteFile(cache.pathFor(cacheKey(file.Hash)), []byte{0xc1}, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := cache.Get(file); err == nil {
		t.Error("corrupt entry should fail to decode")
	}
}

func TestPipelineUsesCache(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, t.TempDir(), "a.src", goodProgram)
	opts := Options{Cache: cache}

	_, first, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached || !second.Cached {
		t.Errorf("cached flags = %v, %v", first.Cached, second.Cached)
	}
	if second.Program == nil || second.Bag.Len() != 0 {
		t.Errorf("cached run failed: %v", second.Bag.Items())
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	_, third, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Error("hit after DropAll")
	}
}

func TestCacheErrorIsWarning(t *testing.T) {
	cache, err := NewTokenCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, t.TempDir(), "a.src", goodProgram)

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cache.pathFor(cacheKey(fs.Get(id).Hash)), []byte{0xc1}, 0o600); err != nil {
		t.Fatal(err)
	}

	_, res, err := Parse(context.Background(), path, Options{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	d := onlyDiagnostic(t, res.Bag)
	if d.Code != diag.IOCacheError || d.Severity != diag.SevWarning {
		t.Errorf("diagnostic = %+v", d)
	}
	if res.Program == nil || res.Failed() {
		t.Error("cache failure must not stop the pipeline")
	}
}
