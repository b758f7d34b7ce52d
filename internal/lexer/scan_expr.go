package lexer

import (
	"unicode/utf8"

	"lumen/internal/token"
)

func (s *scanner) scanExpr() (token.Token, *LexError) {
	if err := s.skipTrivia(); err != nil {
		return token.Token{}, err
	}
	if s.cur.EOF() {
		return s.emitEOF(), nil
	}

	ch := s.cur.Peek()
	switch {
	case isIdentStartByte(ch), ch >= utf8.RuneSelf:
		return s.scanIdentOrKeyword()
	case isDec(ch):
		return s.scanNumber()
	case ch == '"' || ch == '\'':
		return s.scanString()
	case ch == '<' && s.startsTag():
		start := s.cur.Mark()
		s.cur.Bump()
		s.ctx = s.ctx.push(frame{mode: ModeTag})
		return s.emit(token.TagOpen, start), nil
	case ch == '{':
		start := s.cur.Mark()
		s.cur.Bump()
		if f, ok := s.ctx.top(); ok && f.brace {
			f.depth++
			s.ctx = s.ctx.replaceTop(f)
		}
		return s.emit(token.LBrace, start), nil
	case ch == '}':
		start := s.cur.Mark()
		s.cur.Bump()
		if f, ok := s.ctx.top(); ok && f.brace {
			if f.depth == 0 {
				s.ctx = s.ctx.pop()
			} else {
				f.depth--
				s.ctx = s.ctx.replaceTop(f)
			}
		}
		return s.emit(token.RBrace, start), nil
	default:
		return s.scanOperatorOrPunct()
	}
}

// startsTag decides whether '<' opens markup: the previous token must not
// be able to end an operand and a tag name must follow immediately.
func (s *scanner) startsTag() bool {
	return !token.EndsOperand(s.ctx.prev) && s.nextIs(isLetter)
}

func (s *scanner) scanIdentOrKeyword() (token.Token, *LexError) {
	start := s.cur.Mark()
	r, _ := s.peekRune()
	if !isIdentStartRune(r) {
		s.bumpRune()
		return token.Token{}, s.fail(ErrUnknownChar, s.cur.SpanFrom(start), r, "unexpected character %q", r)
	}
	for !s.cur.EOF() {
		b := s.cur.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			s.cur.Bump()
			continue
		}
		r, _ := s.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		s.bumpRune()
	}
	sp := s.cur.SpanFrom(start)
	if sp.Len() > maxTokenLength {
		return token.Token{}, s.fail(ErrTokenTooLong, sp, 0, "identifier longer than %d bytes", maxTokenLength)
	}
	text := s.text(sp)
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: sp, Text: text}, nil
}

// [0-9]+(\.[0-9]+)?
func (s *scanner) scanNumber() (token.Token, *LexError) {
	start := s.cur.Mark()
	for isDec(s.cur.Peek()) {
		s.cur.Bump()
	}
	if s.cur.Peek() == '.' && s.nextIs(isDec) {
		s.cur.Bump()
		for isDec(s.cur.Peek()) {
			s.cur.Bump()
		}
	}
	sp := s.cur.SpanFrom(start)
	if sp.Len() > maxTokenLength {
		return token.Token{}, s.fail(ErrTokenTooLong, sp, 0, "number longer than %d bytes", maxTokenLength)
	}
	text := s.text(sp)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: text, Value: text}, nil
}

// Greedy: two-byte operators first, then single bytes.
func (s *scanner) scanOperatorOrPunct() (token.Token, *LexError) {
	start := s.cur.Mark()

	switch {
	case s.try2('=', '>'):
		return s.emit(token.FatArrow, start), nil
	case s.try2('=', '='):
		return s.emit(token.EqEq, start), nil
	case s.try2('!', '='):
		return s.emit(token.BangEq, start), nil
	case s.try2('<', '='):
		return s.emit(token.LtEq, start), nil
	case s.try2('>', '='):
		return s.emit(token.GtEq, start), nil
	case s.try2('&', '&'):
		return s.emit(token.AndAnd, start), nil
	case s.try2('|', '|'):
		return s.emit(token.OrOr, start), nil
	case s.try2('+', '='):
		return s.emit(token.PlusAssign, start), nil
	case s.try2('-', '='):
		return s.emit(token.MinusAssign, start), nil
	}

	var kind token.Kind
	switch ch := s.cur.Bump(); ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Assign
	case '!':
		kind = token.Bang
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		return token.Token{}, s.fail(ErrUnknownChar, s.cur.SpanFrom(start), rune(ch), "unexpected character %q", rune(ch))
	}
	return s.emit(kind, start), nil
}
