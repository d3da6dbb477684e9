package main

import (
	"context"
	"io"

	"github.com/cooldudemcgeexl/crust/internal/driver"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/ui"
)

type dirOutcome struct {
	fs      *source.FileSet
	results []driver.Result
	err     error
}

// runDirWithUI runs ProcessDir in the background while a progress view
// consumes its events.
func runDirWithUI(ctx context.Context, out io.Writer, title, dir string, stage driver.Stage, opts driver.Options) (*source.FileSet, []driver.Result, error) {
	files, err := driver.ListSources(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		opts.Progress = func(ev driver.Event) { events <- ev }
		fs, results, err := driver.ProcessDir(ctx, dir, stage, opts)
		outcomeCh <- dirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	uiErr := ui.RunProgress(out, title, files, events)
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}

// runDir picks between the progress view and a plain run.
func runDir(ctx context.Context, out io.Writer, title, dir string, stage driver.Stage, opts driver.Options, withUI bool) (*source.FileSet, []driver.Result, error) {
	if withUI {
		return runDirWithUI(ctx, out, title, dir, stage, opts)
	}
	return driver.ProcessDir(ctx, dir, stage, opts)
}
