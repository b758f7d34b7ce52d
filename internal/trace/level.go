package trace

import (
	"fmt"
	"slices"
	"strings"
)

// Level controls how much is traced.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // ring buffer only, dumped on failure
	LevelPhase        // commands and files
	LevelDetail       // plus passes
	LevelDebug        // everything
)

var levelNames = []string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel reads a --trace-level value. Empty means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	if i := slices.Index(levelNames, s); i >= 0 {
		return Level(i), nil
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (want %s)", s, strings.Join(levelNames, "|"))
}

// ShouldEmit reports whether events of scope are recorded at this level.
// LevelError keeps passes as well since the ring is only read after a failure.
func (l Level) ShouldEmit(scope Scope) bool {
	var deepest Scope
	switch l {
	case LevelPhase:
		deepest = ScopeFile
	case LevelError, LevelDetail:
		deepest = ScopePass
	case LevelDebug:
		return true
	default:
		return false
	}
	return scope <= deepest
}
