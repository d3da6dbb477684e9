package driver

import (
	"context"

	"github.com/cooldudemcgeexl/crust/internal/source"
)

// Parse scans and parses a single file.
func Parse(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	return Run(ctx, path, StageParse, opts)
}
