package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lumen/internal/prof"
)

var activeProfile *prof.Session

// setupProfiling starts the profilers requested by the persistent flags.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	activeProfile = session
	return nil
}

func stopProfiling(w io.Writer) {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(w, "profile: %v\n", err)
	}
	activeProfile = nil
}
