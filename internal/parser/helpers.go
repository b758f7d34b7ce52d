package parser

import (
	"fmt"
	"slices"

	"lumen/internal/ast"
	"lumen/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN looks n tokens ahead; past the end it returns EOF.
func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance consumes the current token. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// eat consumes the current token if it has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(k.Describe())
}

func (p *Parser) unexpected(expected string) *ParseError {
	tok := p.peek()
	return errorAt(ErrUnexpectedToken, tok, expected, describe(tok), "")
}

func (p *Parser) errorf(kind ErrorKind, tok token.Token, expected, format string, args ...any) *ParseError {
	return errorAt(kind, tok, expected, describe(tok), fmt.Sprintf(format, args...))
}

// enter guards recursion depth; callers defer p.leave().
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.errorf(ErrNestingTooDeep, p.peek(), "", "nesting deeper than %d levels", p.opts.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// name accepts an identifier or, where the grammar allows it, a keyword.
func (p *Parser) name(allowKeyword bool) (token.Token, error) {
	tok := p.peek()
	if tok.Kind == token.Ident || (allowKeyword && tok.IsKeyword()) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected("identifier")
}

// binding reads a name the generated module will declare. JavaScript
// keywords and runtime imports are rejected since the output could not
// bind them.
func (p *Parser) binding(what string) (token.Token, error) {
	tok, err := p.name(false)
	if err != nil {
		return tok, err
	}
	if ast.IsReservedName(tok.Text) {
		return tok, p.errorf(ErrReservedName, tok, what, "%s %q is a reserved name in the generated code", what, tok.Text)
	}
	return tok, nil
}

// loc spans from start to the last consumed token.
func (p *Parser) loc(start token.Token) ast.Loc {
	return ast.At(start.Span.Cover(p.prev().Span))
}

// prev returns the last consumed token.
func (p *Parser) prev() token.Token {
	if p.pos == 0 {
		return p.toks[0]
	}
	return p.toks[p.pos-1]
}
