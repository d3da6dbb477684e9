package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cooldudemcgeexl/crust/internal/diagfmt"
	"github.com/cooldudemcgeexl/crust/internal/driver"
	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] [file.src]",
		Short: "Tokenize a crust source file",
		Long:  `Tokenize breaks down a crust source file into its constituent tokens`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalOptions(cmd)
	if err != nil {
		return err
	}
	filePath, err := resolveInput(cmd, args, &g)
	if err != nil {
		return err
	}

	ctx, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fs, result, err := driver.Tokenize(ctx, filePath, g.driverOptions())
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd.ErrOrStderr(), result.Bag, fs, g, false)
	if g.timings {
		printTimings(cmd.ErrOrStderr(), fs, []driver.Result{*result})
	}
	if result.Tokens == nil {
		return errHasErrors
	}

	if err := writeTokens(cmd, format, result.Tokens, fs); err != nil {
		return err
	}
	if result.Failed() {
		return errHasErrors
	}
	return nil
}

func writeTokens(cmd *cobra.Command, format string, toks []token.Token, fs *source.FileSet) error {
	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks, fs)
}
