package trace

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

var seqCounter, spanCounter atomic.Uint64

// NextSeq numbers events in emission order across all tracers.
func NextSeq() uint64 { return seqCounter.Add(1) }

func NextSpanID() uint64 { return spanCounter.Add(1) }

// goroutineID reads the number from the "goroutine N [...]" stack header.
// Zero means it could not be read.
func goroutineID() uint64 {
	var buf [64]byte
	head := string(buf[:runtime.Stack(buf[:], false)])
	head, ok := strings.CutPrefix(head, "goroutine ")
	if !ok {
		return 0
	}
	num, _, _ := strings.Cut(head, " ")
	id, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Span is a begin event that still owes its end event.
// The zero span, returned when tracing is off, records nothing.
type Span struct {
	tracer  Tracer
	ev      Event
	started time.Time
}

// Begin emits a begin event for name under parent (0 for a root).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{ev: Event{ParentID: parent}}
	}
	s := &Span{
		tracer:  t,
		started: time.Now(),
		ev: Event{
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			GID:      goroutineID(),
			Name:     name,
		},
	}
	begin := s.ev
	begin.Time = s.started
	begin.Kind = KindSpanBegin
	t.Emit(&begin)
	return s
}

func (s *Span) live() bool { return s != nil && s.tracer != nil && s.tracer.Enabled() }

// End emits the end event with detail and returns the elapsed time.
func (s *Span) End(detail string) time.Duration {
	if !s.live() {
		return 0
	}
	end := s.ev
	end.Time = time.Now()
	end.Kind = KindSpanEnd
	end.Detail = detail
	s.tracer.Emit(&end)
	return end.Time.Sub(s.started)
}

// WithExtra records key=value on the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.ev.Extra == nil {
		s.ev.Extra = map[string]string{}
	}
	s.ev.Extra[key] = value
	return s
}

// ID is the span's own ID, or its parent's for an inert span, so nested
// spans attach to the closest recorded ancestor.
func (s *Span) ID() uint64 {
	switch {
	case s == nil:
		return 0
	case s.ev.SpanID == 0:
		return s.ev.ParentID
	}
	return s.ev.SpanID
}
