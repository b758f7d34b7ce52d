package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lumen/internal/diag"
	"lumen/internal/source"
)

type palette struct {
	path, err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:   color.New(color.Bold),
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.FgHiBlack),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders bag.Items() in order (call bag.Sort first) as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | <span>{x</span>
//	     |          ^~~~~~
//
// followed by notes when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	if int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s: %s\n", p.severity(d.Severity).Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message)
		return
	}
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		p.severity(d.Severity).Sprint(d.Severity),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	snippet(w, f, start, end, opts.Context, p)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		if int(n.Span.File) >= fs.Len() {
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			continue
		}
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d %s\n", p.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
	}
}

// snippet prints the primary line with up to context lines above it and an
// underline beneath. Multi-line spans are underlined to the end of the
// first line.
func snippet(w io.Writer, f *source.File, start, end source.LineCol, context int8, p palette) {
	first := start.Line
	if context > 0 {
		back := uint32(context)
		if back >= first {
			back = first - 1
		}
		first -= back
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", width, ln), f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	from := clampCol(start.Col, line)
	to := len(line)
	if end.Line == start.Line {
		to = clampCol(end.Col, line)
	}
	pad := indentFor(line[:from])
	marks := max(runewidth.StringWidth(line[from:max(to, from)]), 1)
	underline := "^" + strings.Repeat("~", marks-1)
	fmt.Fprintf(w, " %s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), pad, p.caret.Sprint(underline))
}

func clampCol(col uint32, line string) int {
	c := int(col) - 1
	if c < 0 {
		return 0
	}
	if c > len(line) {
		return len(line)
	}
	return c
}

// indentFor returns whitespace as wide as prefix on a terminal, keeping
// tabs so the caret lines up with the echoed source.
func indentFor(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}
