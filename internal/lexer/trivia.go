package lexer

// skipTrivia skips whitespace, "//" line comments and "/* */" block comments.
func (s *scanner) skipTrivia() *LexError {
	for !s.cur.EOF() {
		switch b := s.cur.Peek(); b {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			s.cur.Bump()
		case '/':
			start := s.cur.Mark()
			switch {
			case s.try2('/', '/'):
				for !s.cur.EOF() && s.cur.Peek() != '\n' {
					s.cur.Bump()
				}
			case s.try2('/', '*'):
				if !s.skipBlockComment() {
					return s.fail(ErrUnterminatedComment, s.cur.SpanFrom(start), 0, "unterminated block comment")
				}
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) skipBlockComment() bool {
	for !s.cur.EOF() {
		if s.try2('*', '/') {
			return true
		}
		s.cur.Bump()
	}
	return false
}
