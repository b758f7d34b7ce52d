package diag

import "lumen/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy of d with one more note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Span: sp, Msg: msg})
	return d
}

// Reporter is where code that finds problems outside a compile pass,
// such as the build's import check, sends them.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// BagReporter adds to a Bag. A nil Bag drops everything.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// DedupReporter forwards each distinct diagnostic once. Two diagnostics
// are the same when code, severity, primary span and message match.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	key := dedupKey{code: d.Code, sev: d.Severity, span: d.Primary, msg: d.Message}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}

// ReportBuilder collects notes before handing a diagnostic to a Reporter.
type ReportBuilder struct {
	r       Reporter
	d       Diagnostic
	emitted bool
}

func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, d: NewError(code, primary, msg)}
}

func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{r: r, d: NewWarning(code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	b.d = b.d.WithNote(sp, msg)
	return b
}

// Emit reports the diagnostic. Later calls do nothing.
func (b *ReportBuilder) Emit() {
	if b.emitted {
		return
	}
	b.emitted = true
	if b.r != nil {
		b.r.Report(b.d)
	}
}

// Diagnostic returns the diagnostic built so far.
func (b *ReportBuilder) Diagnostic() Diagnostic { return b.d }
