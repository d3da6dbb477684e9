package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/trace"
)

// SourceExt is the extension of source files picked up by directory runs.
const SourceExt = ".src"

// ListSources возвращает отсортированный список всех *.src файлов в директории
func ListSources(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ProcessDir applies stages up to last to every source file under dir in
// parallel. Results are ordered by path. Each file gets its own scanner,
// queue and bag; files that fail to load yield an IO4001 diagnostic.
func ProcessDir(ctx context.Context, dir string, last Stage, opts Options) (*source.FileSet, []Result, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tr := trace.FromContext(ctx)
	runSpan := trace.Begin(tr, trace.ScopePass, "dir:"+last.String(), trace.CurrentSpan(ctx))
	runSpan.WithExtra("files", strconv.Itoa(len(files)))
	ctx = trace.WithSpan(ctx, runSpan)

	// Предзагрузка: FileSet не потокобезопасен на запись
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			// пустой виртуальный файл, чтобы диагностика несла путь
			id = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	opts.Progress.emit(Event{Stage: last, Status: StatusWorking})

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			// Проверка отмены между файлами
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			file := fileSet.Get(fileIDs[i])
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID}, "failed to load file: "+loadErr.Error()))
				results[i] = Result{Path: path, FileID: file.ID, Bag: bag}
				opts.Progress.emit(Event{File: path, Stage: StageNone, Status: StatusError})
				return nil
			}

			results[i] = *newUnit(file, path, opts).run(gctx, last)
			return nil
		})
	}

	err = g.Wait()
	status := StatusDone
	if err != nil {
		status = StatusError
	}
	opts.Progress.emit(Event{Stage: last, Status: status})
	detail := "ok"
	if err != nil {
		detail = err.Error()
	}
	runSpan.End(detail)
	return fileSet, results, err
}

// TokenizeDir scans every source file under dir.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []Result, error) {
	return ProcessDir(ctx, dir, StageScan, opts)
}

// ParseDir scans and parses every source file under dir.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []Result, error) {
	return ProcessDir(ctx, dir, StageParse, opts)
}

// DiagnoseDir runs the full pipeline over every source file under dir.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []Result, error) {
	return ProcessDir(ctx, dir, StageCheck, opts)
}

// MergeBags collects the diagnostics of all results into one sorted bag.
func MergeBags(results []Result, limit int) *diag.Bag {
	out := diag.NewBag(limit)
	for i := range results {
		for _, d := range results[i].Bag.Items() {
			if !out.Add(d) {
				break
			}
		}
	}
	out.Sort()
	return out
}
