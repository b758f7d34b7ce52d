package lexer

import (
	"unicode/utf8"

	"lumen/internal/token"
)

// scanTag scans inside "<name attrs>" and "</name>". Names never map to
// keywords here: <for>, <in> and data-for are plain names.
func (s *scanner) scanTag() (token.Token, *LexError) {
	if err := s.skipTrivia(); err != nil {
		return token.Token{}, err
	}
	if s.cur.EOF() {
		return s.emitEOF(), nil
	}

	start := s.cur.Mark()
	ch := s.cur.Peek()
	switch {
	case isIdentStartByte(ch):
		for isTagNameByte(s.cur.Peek()) {
			s.cur.Bump()
		}
		sp := s.cur.SpanFrom(start)
		if sp.Len() > maxTokenLength {
			return token.Token{}, s.fail(ErrTokenTooLong, sp, 0, "name longer than %d bytes", maxTokenLength)
		}
		return s.emit(token.Ident, start), nil
	case ch == '"' || ch == '\'':
		return s.scanString()
	case ch == '=':
		s.cur.Bump()
		return s.emit(token.Assign, start), nil
	case ch == '{':
		s.cur.Bump()
		s.ctx = s.ctx.push(frame{mode: ModeExpr, brace: true})
		return s.emit(token.LBrace, start), nil
	case ch == '>':
		s.cur.Bump()
		f, _ := s.ctx.top()
		s.ctx = s.ctx.pop()
		if !f.closing {
			s.ctx = s.ctx.push(frame{mode: ModeChildren})
		}
		return s.emit(token.TagEnd, start), nil
	case s.try2('/', '>'):
		s.ctx = s.ctx.pop()
		return s.emit(token.TagSelfClose, start), nil
	}

	r, _ := s.peekRune()
	s.bumpRune()
	return token.Token{}, s.fail(ErrUnknownChar, s.cur.SpanFrom(start), r, "unexpected character %q in tag", r)
}

// scanChildren scans element content: nested tags, '{' expressions and text.
// Text is taken verbatim, comments included.
func (s *scanner) scanChildren() (token.Token, *LexError) {
	if s.cur.EOF() {
		return s.emitEOF(), nil
	}

	start := s.cur.Mark()
	switch s.cur.Peek() {
	case '<':
		if s.try2('<', '/') {
			s.ctx = s.ctx.pop().push(frame{mode: ModeTag, closing: true})
			return s.emit(token.TagClose, start), nil
		}
		s.cur.Bump()
		s.ctx = s.ctx.push(frame{mode: ModeTag})
		return s.emit(token.TagOpen, start), nil
	case '{':
		s.cur.Bump()
		s.ctx = s.ctx.push(frame{mode: ModeExpr, brace: true})
		return s.emit(token.LBrace, start), nil
	}

	for !s.cur.EOF() {
		b := s.cur.Peek()
		if b == '<' || b == '{' {
			break
		}
		if b < utf8.RuneSelf {
			s.cur.Bump()
		} else {
			s.bumpRune()
		}
	}
	tok := s.emit(token.Text, start)
	tok.Value = tok.Text
	return tok, nil
}
