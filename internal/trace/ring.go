package trace

import (
	"io"
	"sync"
	"time"
)

const defaultRingSize = 4096

// RingTracer remembers the most recent events so they can be printed
// after a command fails. Nothing is written while the command runs.
type RingTracer struct {
	level Level
	start time.Time

	mu      sync.Mutex
	buf     []Event
	next    int
	wrapped bool
}

func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = defaultRingSize
	}
	return &RingTracer{level: level, start: time.Now(), buf: make([]Event, size)}
}

func (t *RingTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	e := *ev
	e.Seq = NextSeq()

	t.mu.Lock()
	t.buf[t.next] = e
	t.next++
	if t.next == len(t.buf) {
		t.next, t.wrapped = 0, true
	}
	t.mu.Unlock()
}

// Snapshot copies the kept events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.wrapped {
		return append([]Event(nil), t.buf[:t.next]...)
	}
	out := make([]Event, 0, len(t.buf))
	out = append(out, t.buf[t.next:]...)
	return append(out, t.buf[:t.next]...)
}

// Dump writes the kept events to w in the given format.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format, t.start)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level != LevelOff }
