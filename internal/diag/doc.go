// Package diag defines the diagnostic model shared by the lexer, parser and
// generator stages.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string form (LEX1001, SYN2002, GEN3001, IO4001, PRJ5001), a short message,
// the primary source.Span and optional notes pointing at related locations.
//
// Phases emit through a Reporter so emission stays decoupled from storage.
// BagReporter collects into a Bag, which is capped, sortable and
// deduplicable. Rendering lives in internal/diagfmt; FormatShort here is the
// one-line form used by tests and the --format=short CLI output.
package diag
