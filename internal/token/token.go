package token

import (
	"lumen/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string // raw lexeme
	Value  string // decoded string literal / markup text
	Line   uint32 // 1-based
	Column uint32 // 1-based
}

// IsLiteral reports whether the token is a number, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwComponent && t.Kind <= KwFalse
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsMarkup reports whether the token is a markup delimiter.
func (t Token) IsMarkup() bool {
	switch t.Kind {
	case TagOpen, TagEnd, TagSelfClose, TagClose:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RBracket
}

// EndsOperand reports whether a token of kind k can be the last token of an
// operand. A '<' following such a token is a comparison, never a tag.
func EndsOperand(k Kind) bool {
	switch k {
	case Ident, NumberLit, StringLit, KwTrue, KwFalse,
		RParen, RBracket, TagEnd, TagSelfClose:
		return true
	default:
		return false
	}
}
