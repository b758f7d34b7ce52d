package lexer_test

import (
	"errors"
	"slices"
	"testing"

	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
)

func makeFile(input string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lumen", []byte(input))
	return fs.Get(id)
}

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(makeFile(input))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", input, err)
	}
	return toks
}

// scanFrom tokenizes input starting from ctx until EOF.
func scanFrom(t *testing.T, input string, ctx lexer.Context) ([]token.Token, lexer.Context) {
	t.Helper()
	lx := lexer.NewAt(makeFile(input), 0, ctx)
	var toks []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("scan %q: %v", input, err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, lx.Context()
		}
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, got []token.Token, want ...token.Kind) {
	t.Helper()
	if !slices.Equal(kindsOf(got), want) {
		t.Fatalf("kinds mismatch\n got: %v\nwant: %v", kindsOf(got), want)
	}
}

func TestPageWithStateAndMarkup(t *testing.T) {
	toks := tokenize(t, `page Home { state { count: number = 0 } <div>{count}</div> }`)
	expectKinds(t, toks,
		token.KwPage, token.Ident, token.LBrace,
		token.KwState, token.LBrace, token.Ident, token.Colon, token.Ident, token.Assign, token.NumberLit, token.RBrace,
		token.TagOpen, token.Ident, token.TagEnd,
		token.LBrace, token.Ident, token.RBrace,
		token.TagClose, token.Ident, token.TagEnd,
		token.RBrace, token.EOF,
	)
	if toks[1].Text != "Home" || toks[9].Value != "0" {
		t.Fatalf("unexpected lexemes: %q %q", toks[1].Text, toks[9].Value)
	}
}

func TestComparisonVersusTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{"spaced", "a < b", []token.Kind{token.Ident, token.Lt, token.Ident, token.EOF}},
		{"tight", "a<b", []token.Kind{token.Ident, token.Lt, token.Ident, token.EOF}},
		{"after number", "1 <x", []token.Kind{token.NumberLit, token.Lt, token.Ident, token.EOF}},
		{"after paren", "f() < g", []token.Kind{token.Ident, token.LParen, token.RParen, token.Lt, token.Ident, token.EOF}},
		{"less equal", "a <= b", []token.Kind{token.Ident, token.LtEq, token.Ident, token.EOF}},
		{"greater", "a > b", []token.Kind{token.Ident, token.Gt, token.Ident, token.EOF}},
		{"before digit", "x = <5", []token.Kind{token.Ident, token.Assign, token.Lt, token.NumberLit, token.EOF}},
		{"after return", "return <br/>", []token.Kind{token.KwReturn, token.TagOpen, token.Ident, token.TagSelfClose, token.EOF}},
		{"after and", "ok && <b/>", []token.Kind{token.Ident, token.AndAnd, token.TagOpen, token.Ident, token.TagSelfClose, token.EOF}},
		{"at start", "<hr/>", []token.Kind{token.TagOpen, token.Ident, token.TagSelfClose, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKinds(t, tokenize(t, tt.input), tt.want...)
		})
	}
}

func TestBraceExpressionChildStaysBalanced(t *testing.T) {
	toks, ctx := scanFrom(t, `{condition && <span>x</span>}`, lexer.ChildrenContext())
	expectKinds(t, toks,
		token.LBrace, token.Ident, token.AndAnd,
		token.TagOpen, token.Ident, token.TagEnd, token.Text, token.TagClose, token.Ident, token.TagEnd,
		token.RBrace, token.EOF,
	)
	if ctx.Mode() != lexer.ModeChildren || ctx.Depth() != 1 {
		t.Fatalf("expected to be back in children, got %s", ctx)
	}
}

func TestSelfClosingWithStringAttr(t *testing.T) {
	toks := tokenize(t, `<img src="/a.png" />`)
	expectKinds(t, toks, token.TagOpen, token.Ident, token.Ident, token.Assign, token.StringLit, token.TagSelfClose, token.EOF)
	if toks[4].Value != "/a.png" || toks[4].Text != `"/a.png"` {
		t.Fatalf("string literal: text=%q value=%q", toks[4].Text, toks[4].Value)
	}
}

func TestMarkupTextIsVerbatim(t *testing.T) {
	toks := tokenize(t, "<p>Hello, world! // not a comment</p>")
	expectKinds(t, toks, token.TagOpen, token.Ident, token.TagEnd, token.Text, token.TagClose, token.Ident, token.TagEnd, token.EOF)
	if got := toks[3].Value; got != "Hello, world! // not a comment" {
		t.Fatalf("text = %q", got)
	}
}

func TestNestedBracesInAttribute(t *testing.T) {
	toks := tokenize(t, `<div style={{ color: "red" }}>x</div>`)
	expectKinds(t, toks,
		token.TagOpen, token.Ident, token.Ident, token.Assign,
		token.LBrace, token.LBrace, token.Ident, token.Colon, token.StringLit, token.RBrace, token.RBrace,
		token.TagEnd, token.Text, token.TagClose, token.Ident, token.TagEnd, token.EOF,
	)
}

func TestMarkupInsideArrowFunction(t *testing.T) {
	toks := tokenize(t, `xs.map(x => <li>{x}</li>)`)
	expectKinds(t, toks,
		token.Ident, token.Dot, token.Ident, token.LParen, token.Ident, token.FatArrow,
		token.TagOpen, token.Ident, token.TagEnd, token.LBrace, token.Ident, token.RBrace,
		token.TagClose, token.Ident, token.TagEnd, token.RParen, token.EOF,
	)
}

func TestKeywordsAreNamesInsideTags(t *testing.T) {
	toks := tokenize(t, `<label for="x" data-if={a}>`)
	expectKinds(t, toks,
		token.TagOpen, token.Ident, token.Ident, token.Assign, token.StringLit,
		token.Ident, token.Assign, token.LBrace, token.Ident, token.RBrace, token.TagEnd, token.EOF,
	)
	if toks[2].Text != "for" || toks[5].Text != "data-if" {
		t.Fatalf("names: %q %q", toks[2].Text, toks[5].Text)
	}
}

func TestOperators(t *testing.T) {
	toks := tokenize(t, "= == != ! + += - -= * / % && || => ? : ; , . ( ) [ ] >=")
	expectKinds(t, toks,
		token.Assign, token.EqEq, token.BangEq, token.Bang, token.Plus, token.PlusAssign,
		token.Minus, token.MinusAssign, token.Star, token.Slash, token.Percent,
		token.AndAnd, token.OrOr, token.FatArrow, token.Question, token.Colon, token.Semicolon,
		token.Comma, token.Dot, token.LParen, token.RParen, token.LBracket, token.RBracket, token.GtEq,
		token.EOF,
	)
}

func TestNumbers(t *testing.T) {
	toks := tokenize(t, "0 42 3.14 1.")
	expectKinds(t, toks, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.Dot, token.EOF)
	if toks[2].Text != "3.14" || toks[3].Text != "1" {
		t.Fatalf("numbers: %q %q", toks[2].Text, toks[3].Text)
	}
}

func TestStringEscapes(t *testing.T) {
	toks := tokenize(t, `"a\n\t\"b\"\\" 'it\'s'`)
	expectKinds(t, toks, token.StringLit, token.StringLit, token.EOF)
	if got := toks[0].Value; got != "a\n\t\"b\"\\" {
		t.Fatalf("value = %q", got)
	}
	if got := toks[1].Value; got != "it's" {
		t.Fatalf("value = %q", got)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := tokenize(t, "a // line\n/* block\n comment */ b")
	expectKinds(t, toks, token.Ident, token.Ident, token.EOF)
	if toks[1].Line != 3 || toks[1].Column != 13 {
		t.Fatalf("b at %d:%d, want 3:13", toks[1].Line, toks[1].Column)
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	toks := tokenize(t, "café $el _x")
	expectKinds(t, toks, token.Ident, token.Ident, token.Ident, token.EOF)
	if toks[0].Text != "café" {
		t.Fatalf("ident = %q", toks[0].Text)
	}
}

func TestPositions(t *testing.T) {
	toks := tokenize(t, "component Card {\n  <div/>\n}")
	div := toks[4]
	if div.Kind != token.Ident || div.Text != "div" {
		t.Fatalf("expected div ident, got %v %q", div.Kind, div.Text)
	}
	if div.Line != 2 || div.Column != 4 {
		t.Fatalf("div at %d:%d, want 2:4", div.Line, div.Column)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		kind      lexer.ErrorKind
		line, col uint32
		char      rune
	}{
		{"unterminated string", `x = "abc`, lexer.ErrUnterminatedString, 1, 5, 0},
		{"newline in string", "\"ab\ncd\"", lexer.ErrUnterminatedString, 1, 1, 0},
		{"unterminated comment", "a /* b", lexer.ErrUnterminatedComment, 1, 3, 0},
		{"unknown char", "a\n  # b", lexer.ErrUnknownChar, 2, 3, '#'},
		{"single ampersand", "a & b", lexer.ErrUnknownChar, 1, 3, '&'},
		{"bad escape", `"\q"`, lexer.ErrBadEscape, 1, 2, 'q'},
		{"unknown char in tag", "<div @click={f}>", lexer.ErrUnknownChar, 1, 6, '@'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexer.Tokenize(makeFile(tt.input))
			var lexErr *lexer.LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %v", err)
			}
			if lexErr.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", lexErr.Kind, tt.kind)
			}
			if lexErr.Line != tt.line || lexErr.Column != tt.col {
				t.Fatalf("position = %d:%d, want %d:%d", lexErr.Line, lexErr.Column, tt.line, tt.col)
			}
			if lexErr.Char != tt.char {
				t.Fatalf("char = %q, want %q", lexErr.Char, tt.char)
			}
		})
	}
}

func TestScanIsPure(t *testing.T) {
	file := makeFile("<b>{x}</b>")
	ctx0 := lexer.Context{}

	tok1, off1, ctx1, err := lexer.Scan(file, 0, ctx0)
	if err != nil {
		t.Fatal(err)
	}
	tok2, off2, ctx2, err := lexer.Scan(file, 0, ctx0)
	if err != nil {
		t.Fatal(err)
	}
	if tok1 != tok2 || off1 != off2 || ctx1.String() != ctx2.String() {
		t.Fatalf("Scan is not deterministic: %v/%v", tok1, tok2)
	}
	if ctx0.Depth() != 0 || ctx0.Mode() != lexer.ModeExpr {
		t.Fatalf("input context mutated: %s", ctx0)
	}

	// Advance a branch and make sure the saved context is untouched.
	_, off, ctx, err := lexer.Scan(file, off1, ctx1) // b
	if err != nil {
		t.Fatal(err)
	}
	_, _, after, err := lexer.Scan(file, off, ctx) // >
	if err != nil {
		t.Fatal(err)
	}
	if after.Mode() != lexer.ModeChildren {
		t.Fatalf("after '>' mode = %v", after.Mode())
	}
	if ctx1.Mode() != lexer.ModeTag || ctx1.Depth() != 1 {
		t.Fatalf("saved context changed: %s", ctx1)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx := lexer.New(makeFile("a"))
	for range 3 {
		if _, err := lx.Next(); err != nil {
			t.Fatal(err)
		}
	}
	tok, err := lx.Next()
	if err != nil || tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v %v", tok.Kind, err)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := lexer.New(makeFile("a b"))
	p, _ := lx.Peek()
	n, _ := lx.Next()
	if p != n || n.Text != "a" {
		t.Fatalf("peek %v, next %v", p, n)
	}
	n, _ = lx.Next()
	if n.Text != "b" {
		t.Fatalf("second token %q", n.Text)
	}
}
