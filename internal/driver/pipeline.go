package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/lexer"
	"github.com/cooldudemcgeexl/crust/internal/observ"
	"github.com/cooldudemcgeexl/crust/internal/parser"
	"github.com/cooldudemcgeexl/crust/internal/sema"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
	"github.com/cooldudemcgeexl/crust/internal/trace"
)

// Result is the outcome of the pipeline for one file. Fields past the last
// stage that ran (or past the first failure) stay nil.
type Result struct {
	Path    string
	FileID  source.FileID
	Tokens  []token.Token
	Cached  bool // tokens came from the disk cache
	Program *ast.Program
	Sema    *sema.Result
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Failed reports whether the file produced any error diagnostic.
func (r *Result) Failed() bool {
	return r != nil && r.Bag.HasErrors()
}

// unit: состояние обработки одного файла. Принадлежит одной горутине.
type unit struct {
	file  *source.File
	path  string
	opts  Options
	bag   *diag.Bag
	timer *observ.Timer
}

func newUnit(file *source.File, path string, opts Options) *unit {
	u := &unit{
		file: file,
		path: path,
		opts: opts,
		bag:  diag.NewBag(opts.MaxDiagnostics),
	}
	if opts.EnableTimings {
		u.timer = observ.NewTimer()
	}
	return u
}

// run executes stages up to and including last.
func (u *unit) run(ctx context.Context, last Stage) *Result {
	tr := trace.FromContext(ctx)
	fileSpan := trace.Begin(tr, trace.ScopeFile, u.path, trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, fileSpan)
	started := time.Now()

	res := &Result{Path: u.path, FileID: u.file.ID, Bag: u.bag}
	res.Tokens, res.Cached = u.scan(ctx)
	if res.Tokens != nil && last >= StageParse {
		res.Program = u.parse(ctx, res.Tokens)
	}
	if res.Program != nil && last >= StageCheck {
		s := u.check(ctx, res.Program)
		res.Sema = &s
	}

	if u.timer != nil {
		report := u.timer.Report()
		res.Timing = &report
		appendTimingDiagnostic(u.bag, u.file.ID, timingPayload{
			Kind:    last.String(),
			Path:    u.path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}

	status, detail := StatusDone, "ok"
	if u.bag.HasErrors() {
		status, detail = StatusError, fmt.Sprintf("errors=%d", u.bag.Len())
	}
	fileSpan.End(detail)
	u.opts.Progress.emit(Event{File: u.path, Stage: last, Status: status, Elapsed: time.Since(started)})
	return res
}

func (u *unit) stage(ctx context.Context, s Stage) (*trace.Span, int) {
	u.opts.Progress.emit(Event{File: u.path, Stage: s, Status: StatusWorking})
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, s.String(), trace.CurrentSpan(ctx))
	return span, u.timer.Begin(s.String())
}

// fail records err as the single diagnostic of this stage.
func (u *unit) fail(span *trace.Span, idx int, err error) {
	u.bag.Add(ErrorDiagnostic(err, u.file.ID))
	u.timer.End(idx, "error")
	span.End(err.Error())
}

func (u *unit) scan(ctx context.Context) ([]token.Token, bool) {
	span, idx := u.stage(ctx, StageScan)

	toks, hit, err := u.opts.Cache.Get(u.file)
	if err != nil {
		u.cacheWarning(err)
	}
	if !hit {
		toks, err = lexer.New(u.file).Tokenize()
		if err != nil {
			u.fail(span, idx, err)
			return nil, false
		}
		if u.opts.Cache != nil {
			if err := u.opts.Cache.Put(u.file, toks); err != nil {
				u.cacheWarning(err)
			}
		}
	}

	note := "tokens=" + strconv.Itoa(len(toks))
	u.timer.End(idx, note)
	span.WithExtra("cached", strconv.FormatBool(hit)).End(note)
	return toks, hit
}

func (u *unit) parse(ctx context.Context, toks []token.Token) *ast.Program {
	span, idx := u.stage(ctx, StageParse)
	prog, err := parser.ParseTokens(trace.WithSpan(ctx, span), toks)
	if err != nil {
		u.fail(span, idx, err)
		return nil
	}
	note := fmt.Sprintf("decls=%d stmts=%d", len(prog.Body.Decls), len(prog.Body.Stmts))
	u.timer.End(idx, note)
	span.End(note)
	return prog
}

func (u *unit) check(ctx context.Context, prog *ast.Program) sema.Result {
	span, idx := u.stage(ctx, StageCheck)
	res := sema.Check(prog, sema.Options{Reporter: diag.NewDedupReporter(diag.BagReporter{Bag: u.bag})})
	note := fmt.Sprintf("arrays=%d errors=%d", len(res.Bounds), res.Errors)
	u.timer.End(idx, note)
	span.End(note)
	return res
}

func (u *unit) cacheWarning(err error) {
	if b := diag.ReportWarning(diag.BagReporter{Bag: u.bag}, diag.IOCacheError, source.Span{File: u.file.ID}, "token cache: "+err.Error()); b != nil {
		b.Emit()
	}
}
