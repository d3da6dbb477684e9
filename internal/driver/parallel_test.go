package driver

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/cooldudemcgeexl/crust/internal/diag"
)

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.src", goodProgram)
	writeFile(t, dir, "a.src", goodProgram)
	writeFile(t, dir, "sub/c.src", goodProgram)
	writeFile(t, dir, "notes.txt", "not a source")

	files, err := ListSources(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.src"),
		filepath.Join(dir, "b.src"),
		filepath.Join(dir, "sub", "c.src"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func TestParseDirOneDiagnosticPerFailingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.src", goodProgram)
	writeFile(t, dir, "b.src", "program b begin end program.")
	writeFile(t, dir, "c.src", "program c is begin x := ?; end program.")
	writeFile(t, dir, "d.src", goodProgram)

	_, results, err := ParseDir(context.Background(), dir, Options{Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("results = %d", len(results))
	}

	wantCodes := []diag.Code{0, diag.SynUnexpectedToken, diag.LexUnknownChar, 0}
	for i, res := range results {
		if filepath.Base(res.Path) != string(rune('a'+i))+".src" {
			t.Errorf("results[%d].Path = %s", i, res.Path)
		}
		if wantCodes[i] == 0 {
			if res.Bag.Len() != 0 || res.Program == nil {
				t.Errorf("%s: diagnostics %v", res.Path, res.Bag.Items())
			}
			continue
		}
		if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != wantCodes[i] {
			t.Errorf("%s: diagnostics %v, want one %s", res.Path, res.Bag.Items(), wantCodes[i].ID())
		}
	}

	merged := MergeBags(results, 0)
	if merged.Len() != 2 {
		t.Errorf("merged = %v", merged.Items())
	}
}

func TestProcessDirEmpty(t *testing.T) {
	fs, results, err := DiagnoseDir(context.Background(), t.TempDir(), Options{})
	if err != nil || results != nil || fs == nil {
		t.Fatalf("fs=%v results=%v err=%v", fs, results, err)
	}
}

func TestProcessDirProgress(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.src", goodProgram)
	writeFile(t, dir, "b.src", "program b is begin")

	var (
		mu     sync.Mutex
		events []Event
	)
	opts := Options{Progress: func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}}
	if _, _, err := DiagnoseDir(context.Background(), dir, opts); err != nil {
		t.Fatal(err)
	}

	final := map[string]Status{}
	working := map[string]int{}
	for _, ev := range events {
		if ev.File == "" {
			continue
		}
		switch ev.Status {
		case StatusWorking:
			working[filepath.Base(ev.File)]++
		case StatusDone, StatusError:
			final[filepath.Base(ev.File)] = ev.Status
		}
	}
	if final["a.src"] != StatusDone || final["b.src"] != StatusError {
		t.Errorf("final statuses = %v", final)
	}
	// a: scan, parse, check; b: scan, parse
	if working["a.src"] != 3 || working["b.src"] != 2 {
		t.Errorf("working events = %v", working)
	}
	if first, last := events[0], events[len(events)-1]; first.File != "" || last.File != "" || last.Status != StatusDone {
		t.Errorf("run events = %+v ... %+v", first, last)
	}
}

func TestProcessDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.src", goodProgram)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ParseDir(ctx, dir, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDiagnoseTestdata(t *testing.T) {
	root := filepath.Join("..", "..", "testdata")

	_, valid, err := DiagnoseDir(context.Background(), filepath.Join(root, "valid"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(valid) == 0 {
		t.Fatal("no valid samples found")
	}
	for _, r := range valid {
		if r.Bag.Len() != 0 {
			t.Errorf("%s: unexpected diagnostics %v", r.Path, r.Bag.Items())
		}
	}

	_, invalid, err := DiagnoseDir(context.Background(), filepath.Join(root, "invalid"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]diag.Code{
		"missing_is.src":  diag.SynUnexpectedToken,
		"open_string.src": diag.SynUnexpectedToken,
		"zero_bound.src":  diag.SemaZeroBound,
	}
	if len(invalid) != len(want) {
		t.Fatalf("want %d invalid samples, got %d", len(want), len(invalid))
	}
	for _, r := range invalid {
		d := onlyDiagnostic(t, r.Bag)
		if code := want[filepath.Base(r.Path)]; d.Code != code {
			t.Errorf("%s: code %s, want %s", r.Path, d.Code.ID(), code.ID())
		}
	}
}
