package lexer

import (
	"strings"

	"lumen/internal/token"
)

// scanString reads a single- or double-quoted literal on one line.
// Escapes: \n \t \r \\ \" \'. Value holds the decoded text.
func (s *scanner) scanString() (token.Token, *LexError) {
	start := s.cur.Mark()
	quote := s.cur.Bump()

	var sb strings.Builder
	for !s.cur.EOF() {
		b := s.cur.Peek()
		switch b {
		case quote:
			s.cur.Bump()
			sp := s.cur.SpanFrom(start)
			if sp.Len() > maxTokenLength {
				return token.Token{}, s.fail(ErrTokenTooLong, sp, 0, "string literal longer than %d bytes", maxTokenLength)
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: s.text(sp), Value: sb.String()}, nil
		case '\n':
			return token.Token{}, s.fail(ErrUnterminatedString, s.cur.SpanFrom(start), 0, "newline in string literal")
		case '\\':
			escStart := s.cur.Mark()
			s.cur.Bump()
			if s.cur.EOF() {
				return token.Token{}, s.fail(ErrUnterminatedString, s.cur.SpanFrom(start), 0, "unterminated string literal")
			}
			switch e := s.cur.Bump(); e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '"', '\'':
				sb.WriteByte(e)
			default:
				return token.Token{}, s.fail(ErrBadEscape, s.cur.SpanFrom(escStart), rune(e), "unknown escape sequence \\%c", e)
			}
		default:
			sb.WriteByte(s.cur.Bump())
		}
	}
	return token.Token{}, s.fail(ErrUnterminatedString, s.cur.SpanFrom(start), 0, "unterminated string literal")
}
