package lexer

import (
	"fmt"

	"lumen/internal/source"
)

// ErrorKind classifies a lexical error.
type ErrorKind uint8

const (
	ErrUnknownChar ErrorKind = iota + 1
	ErrUnterminatedString
	ErrUnterminatedComment
	ErrBadEscape
	ErrTokenTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownChar:
		return "UnknownChar"
	case ErrUnterminatedString:
		return "UnterminatedString"
	case ErrUnterminatedComment:
		return "UnterminatedComment"
	case ErrBadEscape:
		return "BadEscape"
	case ErrTokenTooLong:
		return "TokenTooLong"
	default:
		return "LexError"
	}
}

// LexError is the first lexical error found in a file.
type LexError struct {
	Kind   ErrorKind
	Span   source.Span
	Line   uint32
	Column uint32
	Char   rune // offending character, 0 when not applicable
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (s *scanner) fail(kind ErrorKind, sp source.Span, ch rune, format string, args ...any) *LexError {
	lc := s.file.LineCol(sp.Start)
	return &LexError{
		Kind:   kind,
		Span:   sp,
		Line:   lc.Line,
		Column: lc.Col,
		Char:   ch,
		Msg:    fmt.Sprintf(format, args...),
	}
}
