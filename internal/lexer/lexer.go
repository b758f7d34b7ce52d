package lexer

import (
	"lumen/internal/source"
	"lumen/internal/token"
)

// maxTokenLength bounds identifiers, numbers and string literals.
const maxTokenLength = 64 * 1024

type scanner struct {
	file *source.File
	cur  Cursor
	ctx  Context
}

// Scan reads one token starting at off in the given context. It returns the
// token, the offset right after it and the context for the following call.
// Scan is a pure function of its arguments.
//
// After EOF, Scan keeps returning EOF.
func Scan(file *source.File, off uint32, ctx Context) (token.Token, uint32, Context, error) {
	s := scanner{file: file, cur: At(file, off), ctx: ctx}

	var (
		tok token.Token
		err *LexError
	)
	switch ctx.Mode() {
	case ModeChildren:
		tok, err = s.scanChildren()
	case ModeTag:
		tok, err = s.scanTag()
	default:
		tok, err = s.scanExpr()
	}
	if err != nil {
		return token.Token{Kind: token.Invalid, Span: err.Span, Line: err.Line, Column: err.Column}, off, ctx, err
	}

	lc := file.LineCol(tok.Span.Start)
	tok.Line, tok.Column = lc.Line, lc.Col
	if tok.Kind != token.EOF {
		s.ctx.prev = tok.Kind
	}
	return tok, s.cur.Off, s.ctx, nil
}

// Tokenize scans the whole file from expression position. The returned
// slice always ends with an EOF token.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// Lexer threads the offset and context of successive Scan calls.
// A Lexer belongs to a single file and a single caller.
type Lexer struct {
	file *source.File
	off  uint32
	ctx  Context
	look *token.Token
}

// New creates a lexer positioned at the start of file in expression position.
func New(file *source.File) *Lexer {
	return &Lexer{file: file}
}

// NewAt creates a lexer positioned at off with an explicit context.
func NewAt(file *source.File, off uint32, ctx Context) *Lexer {
	return &Lexer{file: file, off: off, ctx: ctx}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}
	tok, off, ctx, err := Scan(lx.file, lx.off, lx.ctx)
	if err != nil {
		return tok, err
	}
	lx.off, lx.ctx = off, ctx
	return tok, nil
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look != nil {
		return *lx.look, nil
	}
	tok, err := lx.Next()
	if err != nil {
		return tok, err
	}
	lx.look = &tok
	return tok, nil
}

// Context returns the context the next Scan will run in.
func (lx *Lexer) Context() Context { return lx.ctx }

func (s *scanner) text(sp source.Span) string {
	return string(s.file.Content[sp.Start:sp.End])
}

func (s *scanner) emit(k token.Kind, m Mark) token.Token {
	sp := s.cur.SpanFrom(m)
	return token.Token{Kind: k, Span: sp, Text: s.text(sp)}
}

func (s *scanner) emitEOF() token.Token {
	return token.Token{
		Kind: token.EOF,
		Span: source.Span{File: s.file.ID, Start: s.cur.Off, End: s.cur.Off},
	}
}
