package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lumen/internal/diag"
	"lumen/internal/driver"
	"lumen/internal/source"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] file.lumen",
	Short: "Compile one lumen file to JSX",
	Long:  `Compile translates a single lumen file and writes the JSX module to stdout or to --output`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "write the module to this file instead of stdout")
	compileCmd.Flags().String("runtime", "", "module that provides useState (default from lumen.toml or \"react\")")
	compileCmd.Flags().Bool("no-header", false, "omit the generated-code header line")
	compileCmd.Flags().Bool("no-cache", false, "bypass the compile cache")
}

func runCompile(cmd *cobra.Command, args []string) error {
	path := args[0]
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	s, err := loadSettings(cmd, filepath.Dir(path))
	if err != nil {
		return err
	}
	if err := manifestWarnings(cmd, s.manifest); err != nil {
		return err
	}
	opts := driverOptions(cmd, s)

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	res, err := driver.CompileFile(cmd.Context(), fs, id, opts)
	if res != nil {
		if perr := printDiagnostics(cmd, res.Bag, fs); perr != nil {
			return perr
		}
	}
	if err != nil {
		if driver.IsStageError(err) {
			return errReported
		}
		return err
	}

	if output == "" || output == "-" {
		if _, err := io.WriteString(cmd.OutOrStdout(), res.Output); err != nil {
			return err
		}
	} else if err := writeOutput(output, res.Output); err != nil {
		bag := diag.NewBag(1)
		bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: id}, err.Error()))
		_ = printDiagnostics(cmd, bag, fs)
		return errReported
	}

	if opts.Timer != nil && !quiet(cmd) {
		printTimerSummary(cmd.ErrOrStderr(), opts.Timer, res.Cached)
	}
	return nil
}

func writeOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
