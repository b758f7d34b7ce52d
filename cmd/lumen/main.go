// Package main implements the lumen CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lumen/internal/driver"
	"lumen/internal/version"
)

// errReported signals a failure whose diagnostics were already printed.
var errReported = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:           "lumen",
	Short:         "Lumen UI compiler",
	Long:          `Lumen compiles declarative .lumen UI descriptions into JSX modules`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupColor(cmd); err != nil {
			return err
		}
		if err := setupTracing(cmd); err != nil {
			return err
		}
		return setupProfiling(cmd)
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", driver.DefaultMaxDiagnostics, "maximum number of diagnostics to show")
	flags.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	flags.String("trace", "", "write a compiler trace to this file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept by the ring tracer")
	flags.String("cpu-profile", "", "write a CPU profile to this file")
	flags.String("mem-profile", "", "write a heap profile to this file on exit")
	flags.String("runtime-trace", "", "write a Go runtime trace to this file")
}

// main runs the root command. Any error exits with status 1; when the
// ring tracer is active its last events are dumped first.
func main() {
	err := rootCmd.Execute()
	if err != nil {
		dumpTraceRing(os.Stderr)
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
		}
	}
	finish(os.Stderr)
	if err != nil {
		os.Exit(1)
	}
}

// finish stops profiling and flushes the tracer.
func finish(w io.Writer) {
	stopProfiling(w)
	closeTracing(w)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
