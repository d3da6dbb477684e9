package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cooldudemcgeexl/crust/internal/diag"
	"github.com/cooldudemcgeexl/crust/internal/diagfmt"
	"github.com/cooldudemcgeexl/crust/internal/driver"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

type globalOptions struct {
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readGlobalOptions(cmd *cobra.Command) (globalOptions, error) {
	var (
		opts globalOptions
		err  error
	)
	flags := cmd.Root().PersistentFlags()
	if opts.color, err = flags.GetString("color"); err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch opts.color = strings.ToLower(opts.color); opts.color {
	case "auto", "on", "off":
	default:
		return opts, fmt.Errorf("invalid --color value %q (expected auto|on|off)", opts.color)
	}
	if opts.quiet, err = flags.GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if opts.timings, err = flags.GetBool("timings"); err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if opts.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if opts.maxDiagnostics < 0 {
		return opts, fmt.Errorf("--max-diagnostics must be >= 0")
	}
	return opts, nil
}

// useColor решает, раскрашивать ли вывод в w.
func (g globalOptions) useColor(w io.Writer) bool {
	switch g.color {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func (g globalOptions) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: g.maxDiagnostics,
		EnableTimings:  g.timings,
	}
}

// printDiagnostics prints bag in pretty form; timing entries are skipped,
// printTimings renders them instead.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, g globalOptions, notes bool) {
	visible := diag.NewBag(0)
	for _, d := range bag.Items() {
		if d.Code != diag.ObsTimings {
			visible.Add(d)
		}
	}
	if visible.Len() == 0 {
		return
	}
	visible.Sort()
	diagfmt.Pretty(w, visible, fs, diagfmt.PrettyOpts{
		Color:     g.useColor(w),
		Context:   2,
		ShowNotes: notes,
	})
}

// printTimings prints per-file phase tables when --timings is set.
func printTimings(w io.Writer, fs *source.FileSet, results []driver.Result) {
	for _, r := range results {
		if r.Timing == nil {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n", displayPath(fs, r))
		for _, p := range r.Timing.Phases {
			fmt.Fprintf(w, "  %-12s %8.3f ms", p.Name, p.DurationMS)
			if p.Note != "" {
				fmt.Fprintf(w, "  // %s", p.Note)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "  %-12s %8.3f ms\n", "total", r.Timing.TotalMS)
	}
}

func displayPath(fs *source.FileSet, r driver.Result) string {
	if f := fs.Get(r.FileID); f != nil {
		return f.FormatPath("relative", fs.BaseDir())
	}
	return r.Path
}
