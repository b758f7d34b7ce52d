package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lumen/internal/trace"
)

// activeTracer is the tracer set up for the running command.
var activeTracer trace.Tracer = trace.Nop

// setupTracing reads the trace flags and attaches a tracer to the command
// context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace without a level means phase tracing.
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}

	var mode trace.StorageMode
	if modeStr != "" {
		if mode, err = trace.ParseMode(modeStr); err != nil {
			return fmt.Errorf("invalid trace mode: %w", err)
		}
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

// dumpTraceRing writes the ring buffer, if any, after a failure.
func dumpTraceRing(w io.Writer) {
	ring, ok := trace.Ring(activeTracer)
	if !ok {
		return
	}
	fmt.Fprintln(w, "trace: last events before failure:")
	if err := ring.Dump(w, trace.FormatText); err != nil {
		fmt.Fprintf(w, "trace: dump error: %v\n", err)
	}
}

func closeTracing(w io.Writer) {
	if err := activeTracer.Flush(); err != nil {
		fmt.Fprintf(w, "trace: flush error: %v\n", err)
	}
	if err := activeTracer.Close(); err != nil {
		fmt.Fprintf(w, "trace: close error: %v\n", err)
	}
	activeTracer = trace.Nop
}
