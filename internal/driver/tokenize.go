package driver

import (
	"context"
	"fmt"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Run loads one file and applies stages up to last. Load failures are
// returned as errors; scan, parse and check failures end up in Result.Bag.
func Run(ctx context.Context, path string, last Stage, opts Options) (*source.FileSet, *Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fs, newUnit(fs.Get(fileID), path, opts).run(ctx, last), nil
}

// Tokenize scans a single file.
func Tokenize(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	return Run(ctx, path, StageScan, opts)
}
