package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cooldudemcgeexl/crust/internal/ast"
	"github.com/cooldudemcgeexl/crust/internal/diagfmt"
	"github.com/cooldudemcgeexl/crust/internal/driver"
	"github.com/cooldudemcgeexl/crust/internal/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] [file.src|directory]",
		Short: "Parse a crust source file or directory and output AST",
		Long:  `Parse analyzes a crust source file or all *.src files in a directory and outputs their syntax trees`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|tree|json|yaml)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "tree", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
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

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		fs      *source.FileSet
		results []driver.Result
	)
	opts := g.driverOptions()
	if st.IsDir() {
		opts.Jobs = jobs
		fs, results, err = runDir(ctx, cmd.ErrOrStderr(), "parse "+path, path, driver.StageParse, opts, shouldUseTUI(mode, g.quiet))
	} else {
		var res *driver.Result
		fs, res, err = driver.Parse(ctx, path, opts)
		if res != nil {
			results = []driver.Result{*res}
		}
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		printDiagnostics(cmd.ErrOrStderr(), r.Bag, fs, g, false)
		failed = failed || r.Failed()
	}
	if g.timings {
		printTimings(cmd.ErrOrStderr(), fs, results)
	}

	if err := writeASTs(cmd.OutOrStdout(), format, fs, results, st.IsDir(), g.quiet); err != nil {
		return err
	}
	if failed {
		return errHasErrors
	}
	return nil
}

// writeASTs prints every parsed program. Directory runs get a "== path =="
// header per file (pretty/tree) or a path-keyed map (json/yaml).
func writeASTs(out io.Writer, format string, fs *source.FileSet, results []driver.Result, multi, quiet bool) error {
	switch format {
	case "json", "yaml":
		if !multi {
			return encodeTree(out, format, results[0].Program)
		}
		byPath := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for _, r := range results {
			byPath[displayPath(fs, r)] = diagfmt.BuildASTOutput(r.Program)
		}
		return encodeValue(out, format, byPath)
	}

	for idx, r := range results {
		if r.Program == nil {
			continue
		}
		if multi && !quiet {
			if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath(fs, r)); err != nil {
				return err
			}
		}
		var err error
		if format == "tree" {
			err = diagfmt.FormatASTTree(out, r.Program)
		} else {
			err = diagfmt.FormatASTPretty(out, r.Program, fs)
		}
		if err != nil {
			return err
		}
		if multi && !quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeTree(out io.Writer, format string, prog *ast.Program) error {
	if prog == nil {
		return nil
	}
	if format == "yaml" {
		return diagfmt.FormatASTYAML(out, prog)
	}
	return diagfmt.FormatASTJSON(out, prog)
}

func encodeValue(out io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
