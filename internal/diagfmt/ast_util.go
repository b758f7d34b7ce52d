package diagfmt

import (
	"fmt"

	"lumen/internal/source"
)

// formatSpan resolves span to "line:col-line:col", or "span(start-end)" without a FileSet.
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && int(span.File) < fs.Len() {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
