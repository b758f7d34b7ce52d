package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"lumen/internal/source"
)

type shortLine struct {
	label string
	code  string
	path  string
	pos   source.LineCol
	msg   string
}

func (l shortLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.label, l.code, l.path, l.pos.Line, l.pos.Col, l.msg)
}

// FormatShort renders one line per diagnostic, e.g.
//
//	error SYN2001 src/app.lumen:3:7 expected '}', found end of file
//
// Lines are ordered by location so output is stable between runs. With
// includeNotes every note gets its own "note" line.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var lines []shortLine
	add := func(label string, code Code, sp source.Span, msg string) {
		if int(sp.File) >= fs.Len() {
			return
		}
		pos, _ := fs.Resolve(sp)
		lines = append(lines, shortLine{
			label: label,
			code:  code.ID(),
			path:  shortPath(fs, sp.File),
			pos:   pos,
			msg:   oneLine(msg),
		})
	}
	for _, d := range diags {
		add(d.Severity.Label(), d.Code, d.Primary, d.Message)
		if includeNotes {
			for _, n := range d.Notes {
				add("note", d.Code, n.Span, n.Msg)
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.pos.Line, b.pos.Line),
			cmp.Compare(a.pos.Col, b.pos.Col),
			cmp.Compare(a.label, b.label),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.msg, b.msg),
		)
	})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

// shortPath is the slash-separated path relative to the file set base.
// Virtual files keep their given name.
func shortPath(fs *source.FileSet, id source.FileID) string {
	f := fs.Get(id)
	p := f.Path
	if f.Flags&source.FileVirtual == 0 {
		p = f.FormatPath("relative", fs.BaseDir())
	}
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.NewReplacer("\r", " ", "\n", " ").Replace(msg)
	return strings.TrimSpace(msg)
}
