package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Pass names reported to observers, timers and tracers.
const (
	PassLex      = "lex"
	PassParse    = "parse"
	PassCheck    = "check"
	PassGenerate = "generate"
)

// PhaseEvent describes a pass boundary for one file.
type PhaseEvent struct {
	File    string // path as loaded into the FileSet
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration // set on PhaseEnd
	Err     error         // set on a failed PhaseEnd
}

// PhaseObserver receives pass events. CompileDir calls it from worker
// goroutines, so implementations must be goroutine-safe.
type PhaseObserver func(PhaseEvent)
