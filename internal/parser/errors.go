package parser

import (
	"fmt"

	"lumen/internal/source"
	"lumen/internal/token"
)

// ErrorKind classifies a grammar violation.
type ErrorKind uint8

const (
	ErrUnexpectedToken ErrorKind = iota + 1
	ErrMismatchedTag
	ErrUnclosedElement
	ErrDuplicateDecl
	ErrDuplicateName
	ErrReservedName
	ErrBadDefault
	ErrSectionOrder
	ErrNestingTooDeep
	ErrUnknownType
	ErrInvalidTarget
	ErrInvalidStructure
)

var errorKindNames = [...]string{
	ErrUnexpectedToken:  "UnexpectedToken",
	ErrMismatchedTag:    "MismatchedTag",
	ErrUnclosedElement:  "UnclosedElement",
	ErrDuplicateDecl:    "DuplicateDecl",
	ErrDuplicateName:    "DuplicateName",
	ErrReservedName:     "ReservedName",
	ErrBadDefault:       "BadDefault",
	ErrSectionOrder:     "SectionOrder",
	ErrNestingTooDeep:   "NestingTooDeep",
	ErrUnknownType:      "UnknownType",
	ErrInvalidTarget:    "InvalidTarget",
	ErrInvalidStructure: "InvalidStructure",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return "ParseError"
}

// ParseError is the first grammar violation in a file.
type ParseError struct {
	Kind     ErrorKind
	Expected string
	Found    string
	Line     uint32
	Column   uint32
	Span     source.Span
	Msg      string // overrides the "expected X, found Y" message when set
}

// Message returns the error text without the position prefix.
func (e *ParseError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message())
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Text:
		return fmt.Sprintf("text %q", tok.Text)
	case token.StringLit:
		return "string " + tok.Text
	case token.Ident:
		return fmt.Sprintf("identifier %q", tok.Text)
	}
	if tok.Text != "" {
		return "'" + tok.Text + "'"
	}
	return tok.Kind.Describe()
}

func errorAt(kind ErrorKind, tok token.Token, expected, found, msg string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Expected: expected,
		Found:    found,
		Line:     tok.Line,
		Column:   tok.Column,
		Span:     tok.Span,
		Msg:      msg,
	}
}
