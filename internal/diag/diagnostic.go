package diag

import (
	"lumen/internal/source"
)

// Note is a secondary location attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func (d Diagnostic) IsError() bool {
	return d.Severity >= SevError
}
