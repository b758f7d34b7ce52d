package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lumen/internal/codegen"
	"lumen/internal/diag"
	"lumen/internal/driver"
	"lumen/internal/observ"
	"lumen/internal/project"
	"lumen/internal/source"
)

// settings is the effective build configuration: lumen.toml values
// overridden by command-line flags.
type settings struct {
	manifest  *project.Manifest // nil without lumen.toml
	srcDir    string
	outDir    string
	jobs      int
	cache     bool
	extension string
	codegen   codegen.Options
}

// loadSettings looks for lumen.toml above startDir. Without one, startDir
// holds the sources directly unless it has a src/ subdirectory.
func loadSettings(cmd *cobra.Command, startDir string) (settings, error) {
	m, ok, err := project.LoadManifest(startDir)
	if err != nil {
		return settings{}, err
	}
	cfg := project.DefaultConfig()
	var s settings
	if ok {
		s.manifest = m
		cfg = m.Config
		s.srcDir = m.SrcDir()
		s.outDir = m.OutDir()
	} else {
		s.srcDir = startDir
		if info, statErr := os.Stat(filepath.Join(startDir, cfg.Build.Src)); statErr == nil && info.IsDir() {
			s.srcDir = filepath.Join(startDir, cfg.Build.Src)
		}
		s.outDir = filepath.Join(startDir, cfg.Build.Out)
	}
	s.jobs = cfg.Build.Jobs
	s.cache = cfg.CacheEnabled()
	s.extension = cfg.Codegen.Extension
	s.codegen = codegen.Options{
		Runtime: cfg.Codegen.Runtime,
		Header:  cfg.HeaderEnabled(),
	}
	if err := applyFlagOverrides(cmd, &s); err != nil {
		return settings{}, err
	}
	return s, nil
}

// applyFlagOverrides copies explicitly set flags over manifest values.
// Commands register only the flags that make sense for them.
func applyFlagOverrides(cmd *cobra.Command, s *settings) error {
	flags := cmd.Flags()
	if flags.Lookup("out") != nil && flags.Changed("out") {
		out, err := flags.GetString("out")
		if err != nil {
			return fmt.Errorf("failed to get out flag: %w", err)
		}
		s.outDir = out
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		jobs, err := flags.GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if jobs < 0 {
			return fmt.Errorf("--jobs must not be negative")
		}
		s.jobs = jobs
	}
	if flags.Lookup("runtime") != nil && flags.Changed("runtime") {
		runtime, err := flags.GetString("runtime")
		if err != nil {
			return fmt.Errorf("failed to get runtime flag: %w", err)
		}
		s.codegen.Runtime = runtime
	}
	if flags.Lookup("no-header") != nil {
		if noHeader, _ := flags.GetBool("no-header"); noHeader {
			s.codegen.Header = false
		}
	}
	if flags.Lookup("no-cache") != nil {
		if noCache, _ := flags.GetBool("no-cache"); noCache {
			s.cache = false
		}
	}
	return nil
}

// manifestWarnings reports keys of lumen.toml that no setting uses.
func manifestWarnings(cmd *cobra.Command, m *project.Manifest) error {
	if m == nil || len(m.Unknown) == 0 {
		return nil
	}
	fs := source.NewFileSet()
	id, err := fs.Load(m.Path)
	if err != nil {
		return err
	}
	bag := diag.NewBag(maxDiagnostics(cmd))
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	at := source.Span{File: id}
	for _, key := range m.Unknown {
		diag.ReportWarning(reporter, diag.ProjUnknownKey, at, fmt.Sprintf("unknown key %q in lumen.toml", key)).
			WithNote(at, "supported sections are [package], [build] and [codegen]").
			Emit()
	}
	return printDiagnostics(cmd, bag, fs)
}

// driverOptions builds driver.Options for s. A cache that cannot be
// opened is reported and skipped.
func driverOptions(cmd *cobra.Command, s settings) driver.Options {
	opts := driver.Options{
		Codegen:        s.codegen,
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           s.jobs,
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		opts.Timer = observ.NewTimer()
	}
	if s.cache {
		dc, err := driver.OpenDiskCache("lumen")
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: compile cache disabled: %v\n", err)
		} else {
			opts.Cache = dc
		}
	}
	return opts
}
