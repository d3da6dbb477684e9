package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/diagfmt"
	"github.com/cooldudemcgeexl/crust/internal/driver"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] [file.src|directory]",
		Short: "Run diagnostics on a crust source file or directory",
		Long:  `Run diagnostics to find lexical, syntax and bound issues in crust source files or all *.src files within a directory`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDiagnose,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	cmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	cmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	cmd.Flags().Bool("disk-cache", false, "reuse scanned tokens from the on-disk cache")
	cmd.Flags().Bool("clear-cache", false, "drop the on-disk token cache before running (implies --disk-cache)")
	cmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	return cmd
}

type diagFlags struct {
	format           string
	noWarnings       bool
	warningsAsErrors bool
	jobs             int
	withNotes        bool
	fullPath         bool
	diskCache        bool
	clearCache       bool
	ui               uiMode
}

func readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var (
		f   diagFlags
		err error
	)
	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format = strings.ToLower(f.format); f.format {
	case "pretty", "json", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.noWarnings, err = flags.GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.warningsAsErrors, err = flags.GetBool("warnings-as-errors"); err != nil {
		return f, fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if f.noWarnings && f.warningsAsErrors {
		return f, fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.withNotes, err = flags.GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if f.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if f.diskCache, err = flags.GetBool("disk-cache"); err != nil {
		return f, fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	if f.clearCache, err = flags.GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	f.diskCache = f.diskCache || f.clearCache
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiFlag); err != nil {
		return f, err
	}
	return f, nil
}

// runDiagnose runs every stage on a file or directory and prints the merged
// diagnostics. Exits non-zero when any error is left after filtering.
func runDiagnose(cmd *cobra.Command, args []string) error {
	f, err := readDiagFlags(cmd)
	if err != nil {
		return err
	}
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	path, err := resolveInput(cmd, args, &g)
	if err != nil {
		return err
	}

	ctx, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := g.driverOptions()
	opts.Jobs = f.jobs
	if f.diskCache {
		cache, cerr := driver.OpenTokenCache("crust")
		if cerr != nil {
			// кэш необязателен
			if !g.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", cerr)
			}
		} else {
			if f.clearCache {
				if err := cache.DropAll(); err != nil {
					return fmt.Errorf("failed to clear disk cache: %w", err)
				}
			}
			opts.Cache = cache
		}
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		fs      *source.FileSet
		results []driver.Result
	)
	if st.IsDir() {
		fs, results, err = runDir(ctx, cmd.ErrOrStderr(), "diag "+path, path, driver.StageCheck, opts, shouldUseTUI(f.ui, g.quiet))
	} else {
		var res *driver.Result
		fs, res, err = driver.Diagnose(ctx, path, opts)
		if res != nil {
			results = []driver.Result{*res}
		}
	}
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	bag := filterDiagnostics(driver.MergeBags(results, 0), f)

	out := cmd.OutOrStdout()
	switch f.format {
	case "pretty":
		printDiagnostics(out, bag, fs, g, f.withNotes)
		if g.timings {
			printTimings(cmd.ErrOrStderr(), fs, results)
		}
	case "json":
		pathMode := diagfmt.PathModeRelative
		if f.fullPath {
			pathMode = diagfmt.PathModeAbsolute
		}
		if err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     f.withNotes,
		}); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
	case "short":
		visible := make([]diag.Diagnostic, 0, bag.Len())
		for _, d := range bag.Items() {
			if d.Code != diag.ObsTimings {
				visible = append(visible, d)
			}
		}
		if s := diag.FormatShort(visible, fs, f.withNotes); s != "" {
			fmt.Fprintln(out, s)
		}
	}

	if bag.HasErrors() {
		return errHasErrors
	}
	return nil
}

// filterDiagnostics applies --no-warnings and --warnings-as-errors.
func filterDiagnostics(bag *diag.Bag, f diagFlags) *diag.Bag {
	if !f.noWarnings && !f.warningsAsErrors {
		return bag
	}
	out := diag.NewBag(0)
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			if f.noWarnings {
				continue
			}
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	return out
}
