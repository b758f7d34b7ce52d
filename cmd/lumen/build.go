package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lumen/internal/buildpipeline"
	"lumen/internal/diag"
	"lumen/internal/driver"
	"lumen/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [dir]",
	Short: "Compile every .lumen file of a project",
	Long: `Build compiles all .lumen files below the source directory and mirrors
them as JSX modules in the output directory. Settings come from the nearest
lumen.toml; flags override them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", "output directory (default from lumen.toml or \"build\")")
	buildCmd.Flags().IntP("jobs", "j", 0, "files compiled in parallel (0 = number of CPUs)")
	buildCmd.Flags().String("runtime", "", "module that provides useState (default from lumen.toml or \"react\")")
	buildCmd.Flags().Bool("no-header", false, "omit the generated-code header line")
	buildCmd.Flags().Bool("no-cache", false, "bypass the compile cache")
	buildCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd, startDir)
	if err != nil {
		return err
	}
	if err := manifestWarnings(cmd, s.manifest); err != nil {
		return err
	}

	files, err := driver.ListSources(s.srcDir)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	if len(files) == 0 {
		reportNoSources(cmd, s)
		return nil
	}

	req := &buildpipeline.BuildRequest{
		SrcDir:    s.srcDir,
		OutDir:    s.outDir,
		Extension: s.extension,
		Options:   driverOptions(cmd, s),
	}

	var result buildpipeline.BuildResult
	if useProgressUI(mode, os.Stdout) && !quiet(cmd) {
		rel := make([]string, len(files))
		for i, f := range files {
			rel[i] = relToDir(s.srcDir, f)
		}
		result, err = runBuildWithUI(cmd.Context(), cmd.OutOrStdout(), "building", rel, req)
	} else {
		result, err = buildpipeline.Build(cmd.Context(), req)
	}

	if result.FileSet != nil {
		if perr := printDiagnostics(cmd, result.Diagnostics(maxDiagnostics(cmd)), result.FileSet); perr != nil {
			return perr
		}
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings && !quiet(cmd) {
		printStageTimings(cmd.ErrOrStderr(), result.Timings)
	}
	if !quiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d written, %d cached, %d failed -> %s\n",
			result.Written, result.Cached, result.Failed, s.outDir)
	}
	if errors.Is(err, buildpipeline.ErrBuildFailed) {
		return errReported
	}
	return err
}

// reportNoSources warns that the source directory holds no .lumen files.
func reportNoSources(cmd *cobra.Command, s settings) {
	if s.manifest == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: no %s files in %s\n", driver.SourceExt, s.srcDir)
		return
	}
	fs := source.NewFileSet()
	id, err := fs.Load(s.manifest.Path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: no %s files in %s\n", driver.SourceExt, s.srcDir)
		return
	}
	bag := diag.NewBag(1)
	bag.Add(diag.NewWarning(diag.ProjNoSources, source.Span{File: id},
		fmt.Sprintf("no %s files in %s", driver.SourceExt, s.srcDir)))
	_ = printDiagnostics(cmd, bag, fs)
}

func relToDir(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
