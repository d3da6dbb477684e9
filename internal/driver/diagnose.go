package driver

import (
	"context"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Diagnose runs scan, parse and the array-bound check over a single file.
func Diagnose(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	return Run(ctx, path, StageCheck, opts)
}
