package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/diagfmt"
	"lumen/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lumen",
	Short: "Tokenize a lumen source file",
	Long:  `Tokenize breaks down a lumen source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	// Tokens before a lexical error are still printed.
	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}
