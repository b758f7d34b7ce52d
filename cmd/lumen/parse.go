package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/diagfmt"
	"lumen/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lumen",
	Short: "Parse a lumen source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Program == nil {
		return errReported
	}

	if format == "json" {
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Program)
	}
	return diagfmt.FormatASTTree(cmd.OutOrStdout(), result.Program, result.FileSet)
}
