package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lumen/internal/diag"
	"lumen/internal/diagfmt"
	"lumen/internal/source"
)

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 100
	}
	return n
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}

// printDiagnostics writes bag to the command's stderr in the format
// chosen by --diag-format. An empty bag prints nothing.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	format, err := cmd.Root().PersistentFlags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	bag.Sort()
	w := cmd.ErrOrStderr()
	switch format {
	case "pretty", "":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     w == os.Stderr && useColor(cmd, os.Stderr),
			Context:   2,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
		return nil
	case "short":
		_, err := fmt.Fprint(w, diag.FormatShort(bag.Items(), fs, true))
		return err
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			Max:              maxDiagnostics(cmd),
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unknown diag-format: %s (expected pretty|short|json)", format)
	}
}
