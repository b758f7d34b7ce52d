package driver

import (
	"errors"

	"lumen/internal/codegen"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
)

// IsStageError reports whether err came from the lexer, parser or
// generator rather than from I/O.
func IsStageError(err error) bool {
	var (
		le *lexer.LexError
		pe *parser.ParseError
		ce *codegen.CodeGenError
	)
	return errors.As(err, &le) || errors.As(err, &pe) || errors.As(err, &ce)
}

// toDiagnostic converts a stage error into a diagnostic. file locates
// program-level generator errors, which carry no span.
func toDiagnostic(err error, file source.FileID) diag.Diagnostic {
	var (
		le *lexer.LexError
		pe *parser.ParseError
		ce *codegen.CodeGenError
	)
	switch {
	case errors.As(err, &le):
		return diag.NewError(lexCode(le.Kind), le.Span, le.Msg)
	case errors.As(err, &pe):
		d := diag.NewError(parseCode(pe.Kind), pe.Span, pe.Message())
		if pe.Kind == parser.ErrUnclosedElement {
			d = d.WithNote(pe.Span, "add the closing tag "+pe.Expected)
		}
		return d
	case errors.As(err, &ce):
		code := diag.GenInvalidTree
		if ce.Collision {
			code = diag.GenNameCollision
		}
		return diag.NewError(code, source.Span{File: file}, ce.Error())
	default:
		return diag.NewError(diag.IOLoadFileError, source.Span{File: file}, err.Error())
	}
}

func lexCode(k lexer.ErrorKind) diag.Code {
	switch k {
	case lexer.ErrUnknownChar:
		return diag.LexUnknownChar
	case lexer.ErrUnterminatedString:
		return diag.LexUnterminatedString
	case lexer.ErrUnterminatedComment:
		return diag.LexUnterminatedComment
	case lexer.ErrBadEscape:
		return diag.LexBadEscape
	case lexer.ErrTokenTooLong:
		return diag.LexTokenTooLong
	default:
		return diag.LexInfo
	}
}

func parseCode(k parser.ErrorKind) diag.Code {
	switch k {
	case parser.ErrUnexpectedToken:
		return diag.SynUnexpectedToken
	case parser.ErrMismatchedTag:
		return diag.SynMismatchedTag
	case parser.ErrUnclosedElement:
		return diag.SynUnclosedElement
	case parser.ErrDuplicateDecl:
		return diag.SynDuplicateDecl
	case parser.ErrDuplicateName:
		return diag.SynDuplicateName
	case parser.ErrReservedName:
		return diag.SynReservedName
	case parser.ErrBadDefault:
		return diag.SynBadDefault
	case parser.ErrSectionOrder:
		return diag.SynSectionOrder
	case parser.ErrNestingTooDeep:
		return diag.SynNestingTooDeep
	case parser.ErrUnknownType:
		return diag.SynUnknownType
	case parser.ErrInvalidTarget:
		return diag.SynInvalidTarget
	case parser.ErrInvalidStructure:
		return diag.SynInvalidStructure
	default:
		return diag.SynInfo
	}
}
