package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is one timed compiler pass.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer records phase durations. It is safe for concurrent use, so one
// Timer can collect the passes of a whole parallel build.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes the phase at idx. Unknown indices are ignored.
func (t *Timer) End(idx int, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Time runs fn as a phase named name.
func (t *Timer) Time(name string, fn func()) {
	idx := t.Begin(name)
	fn()
	t.End(idx, "")
}

// Phases returns a copy of the recorded phases.
func (t *Timer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// Summary renders the report as an aligned table.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&sb, "  (x%d)", p.Count)
		}
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport is the serializable form of a phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates the timer's phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report folds phases with the same name into one entry, in order of first
// appearance. Notes are kept only for phases recorded once.
func (t *Timer) Report() Report {
	phases := t.Phases()
	if len(phases) == 0 {
		return Report{}
	}
	var (
		report Report
		total  time.Duration
		index  = make(map[string]int, len(phases))
		durs   []time.Duration
	)
	for _, phase := range phases {
		total += phase.Dur
		i, ok := index[phase.Name]
		if !ok {
			index[phase.Name] = len(report.Phases)
			report.Phases = append(report.Phases, PhaseReport{Name: phase.Name, Count: 1, Note: phase.Note})
			durs = append(durs, phase.Dur)
			continue
		}
		report.Phases[i].Count++
		report.Phases[i].Note = ""
		durs[i] += phase.Dur
	}
	for i := range report.Phases {
		report.Phases[i].DurationMS = durationToMillis(durs[i])
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
