package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	KwComponent // component
	KwPage      // page
	KwLayout    // layout
	KwProps     // props
	KwState     // state
	KwEvent     // event
	KwImport    // import
	KwExport    // export
	KwFrom      // from
	KwIf        // if
	KwElse      // else
	KwFor       // for
	KwIn        // in
	KwLet       // let
	KwReturn    // return
	KwTrue      // true
	KwFalse     // false

	// NumberLit represents a number literal: [0-9]+(\.[0-9]+)?
	NumberLit
	// StringLit represents a quoted string literal.
	StringLit
	// Text represents a run of markup text between tags.
	Text

	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Percent     // %
	Assign      // =
	PlusAssign  // +=
	MinusAssign // -=
	EqEq        // ==
	Bang        // !
	BangEq      // !=
	Lt          // <
	LtEq        // <=
	Gt          // >
	GtEq        // >=
	AndAnd      // &&
	OrOr        // ||
	FatArrow    // =>
	Question    // ?
	Colon       // :
	Semicolon   // ;
	Comma       // ,
	Dot         // .
	LParen      // (
	RParen      // )
	LBrace      // {
	RBrace      // }
	LBracket    // [
	RBracket    // ]

	// TagOpen is the '<' that starts an opening tag.
	TagOpen
	// TagEnd is the '>' that ends an opening or closing tag.
	TagEnd
	// TagSelfClose is the "/>" that ends a self-closing tag.
	TagSelfClose
	// TagClose is the "</" that starts a closing tag.
	TagClose

	kindCount
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Ident:        "Ident",
	KwComponent:  "KwComponent",
	KwPage:       "KwPage",
	KwLayout:     "KwLayout",
	KwProps:      "KwProps",
	KwState:      "KwState",
	KwEvent:      "KwEvent",
	KwImport:     "KwImport",
	KwExport:     "KwExport",
	KwFrom:       "KwFrom",
	KwIf:         "KwIf",
	KwElse:       "KwElse",
	KwFor:        "KwFor",
	KwIn:         "KwIn",
	KwLet:        "KwLet",
	KwReturn:     "KwReturn",
	KwTrue:       "KwTrue",
	KwFalse:      "KwFalse",
	NumberLit:    "NumberLit",
	StringLit:    "StringLit",
	Text:         "Text",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	Assign:       "Assign",
	PlusAssign:   "PlusAssign",
	MinusAssign:  "MinusAssign",
	EqEq:         "EqEq",
	Bang:         "Bang",
	BangEq:       "BangEq",
	Lt:           "Lt",
	LtEq:         "LtEq",
	Gt:           "Gt",
	GtEq:         "GtEq",
	AndAnd:       "AndAnd",
	OrOr:         "OrOr",
	FatArrow:     "FatArrow",
	Question:     "Question",
	Colon:        "Colon",
	Semicolon:    "Semicolon",
	Comma:        "Comma",
	Dot:          "Dot",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	TagOpen:      "TagOpen",
	TagEnd:       "TagEnd",
	TagSelfClose: "TagSelfClose",
	TagClose:     "TagClose",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindSpellings = map[Kind]string{
	EOF:          "end of file",
	Ident:        "identifier",
	NumberLit:    "number",
	StringLit:    "string",
	Text:         "text",
	Plus:         "'+'",
	Minus:        "'-'",
	Star:         "'*'",
	Slash:        "'/'",
	Percent:      "'%'",
	Assign:       "'='",
	PlusAssign:   "'+='",
	MinusAssign:  "'-='",
	EqEq:         "'=='",
	Bang:         "'!'",
	BangEq:       "'!='",
	Lt:           "'<'",
	LtEq:         "'<='",
	Gt:           "'>'",
	GtEq:         "'>='",
	AndAnd:       "'&&'",
	OrOr:         "'||'",
	FatArrow:     "'=>'",
	Question:     "'?'",
	Colon:        "':'",
	Semicolon:    "';'",
	Comma:        "','",
	Dot:          "'.'",
	LParen:       "'('",
	RParen:       "')'",
	LBrace:       "'{'",
	RBrace:       "'}'",
	LBracket:     "'['",
	RBracket:     "']'",
	TagOpen:      "'<'",
	TagEnd:       "'>'",
	TagSelfClose: "'/>'",
	TagClose:     "'</'",
}

// Describe returns the human form of k used in parser messages,
// e.g. "'{'" or "identifier"; keywords are quoted by their spelling.
func (k Kind) Describe() string {
	if s, ok := kindSpellings[k]; ok {
		return s
	}
	if spelling, ok := keywordSpelling(k); ok {
		return "'" + spelling + "'"
	}
	return k.String()
}

// IsEOF reports whether k is EOF.
func (k Kind) IsEOF() bool { return k == EOF }
