package trace

import "errors"

// MultiTracer sends each event to all of its tracers, e.g. a stream for
// live output and a ring kept for the failure dump.
type MultiTracer struct {
	level   Level
	tracers []Tracer
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{level: level, tracers: tracers}
}

// Emit passes a private copy to each tracer since tracers stamp Seq.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		e := *ev
		tr.Emit(&e)
	}
}

func (t *MultiTracer) each(fn func(Tracer) error) error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, fn(tr))
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Flush() error { return t.each(Tracer.Flush) }
func (t *MultiTracer) Close() error { return t.each(Tracer.Close) }
func (t *MultiTracer) Level() Level { return t.level }
func (t *MultiTracer) Enabled() bool {
	return t.level != LevelOff
}
