package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Tracer receives trace events. Implementations must be goroutine-safe.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	// Enabled reports Level() > LevelOff.
	Enabled() bool
}

// StorageMode says where events go: written as they happen, kept in a
// ring for a failure dump, or both.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1
	ModeRing
	ModeBoth
)

var modeNames = map[StorageMode]string{ModeStream: "stream", ModeRing: "ring", ModeBoth: "both"}

func (m StorageMode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "unknown"
}

// ParseMode reads a --trace-mode value.
func ParseMode(s string) (StorageMode, error) {
	s = strings.ToLower(s)
	for m, n := range modeNames {
		if n == s {
			return m, nil
		}
	}
	return ModeStream, fmt.Errorf("invalid trace mode %q (want stream|ring|both)", s)
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Mode       StorageMode // 0 = ModeStream, or ModeRing at LevelError
	Format     Format      // FormatAuto picks NDJSON for *.ndjson paths
	Output     io.Writer   // overrides OutputPath
	OutputPath string      // "-" or "" for stderr
	RingSize   int         // default 4096
}

// New builds the tracer cfg describes. LevelOff yields Nop.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	mode := cfg.Mode
	if mode == 0 {
		mode = ModeStream
		if cfg.Level == LevelError {
			mode = ModeRing
		}
	}
	if mode == ModeRing {
		return NewRingTracer(cfg.RingSize, cfg.Level), nil
	}
	if mode != ModeStream && mode != ModeBoth {
		return nil, fmt.Errorf("unknown trace mode %v", mode)
	}

	w, err := cfg.writer()
	if err != nil {
		return nil, err
	}
	stream := NewStreamTracer(w, cfg.Level, cfg.format())
	if mode == ModeStream {
		return stream, nil
	}
	return NewMultiTracer(cfg.Level, stream, NewRingTracer(cfg.RingSize, cfg.Level)), nil
}

// format resolves FormatAuto from the output file extension.
func (cfg Config) format() Format {
	if cfg.Format != FormatAuto {
		return cfg.Format
	}
	switch filepath.Ext(cfg.OutputPath) {
	case ".ndjson", ".jsonl":
		return FormatNDJSON
	}
	return FormatText
}

func (cfg Config) writer() (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("open trace output: %w", err)
	}
	return f, nil
}

// nopCloser keeps Close from closing stderr.
type nopCloser struct{ io.Writer }

// Ring returns the RingTracer inside t, if any.
func Ring(t Tracer) (*RingTracer, bool) {
	switch t := t.(type) {
	case *RingTracer:
		return t, true
	case *MultiTracer:
		for _, inner := range t.tracers {
			if r, ok := Ring(inner); ok {
				return r, true
			}
		}
	}
	return nil, false
}
