package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

func (s *scanner) peekRune() (r rune, size int) {
	if s.cur.EOF() {
		return utf8.RuneError, 0
	}
	b := s.cur.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(s.file.Content[s.cur.Off:s.cur.Limit])
}

func (s *scanner) bumpRune() {
	_, sz := s.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	s.cur.Off += usz
}

// ASCII fast path; Unicode letters go through the rune classifiers.
func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || isLetter(b)
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func isLetter(b byte) bool { return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') }

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// Tag and attribute names: div, my-card, xlink:href, Ui.Button.
func isTagNameByte(b byte) bool {
	return isIdentContinueByte(b) || b == '-' || b == ':' || b == '.'
}

func (s *scanner) try2(a, b byte) bool {
	b0, b1, ok := s.cur.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	s.cur.Bump()
	s.cur.Bump()
	return true
}

// nextIs reports whether the byte after the current one equals b.
func (s *scanner) nextIs(pred func(byte) bool) bool {
	_, b1, ok := s.cur.Peek2()
	return ok && pred(b1)
}
