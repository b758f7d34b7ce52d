package parser

import (
	"lumen/internal/ast"
	"lumen/internal/source"
	"lumen/internal/token"
)

// DefaultMaxDepth bounds nesting of expressions, statements and elements.
const DefaultMaxDepth = 256

// Options tune a single parse.
type Options struct {
	MaxDepth int // 0 = DefaultMaxDepth
}

// Parser is the state of one parse over one token slice.
type Parser struct {
	toks  []token.Token
	pos   int
	depth int
	opts  Options
}

// New creates a parser over toks. A trailing EOF is added when missing.
func New(toks []token.Token, opts Options) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		var eof token.Token
		if n := len(toks); n > 0 {
			last := toks[n-1]
			eof = token.Token{
				Kind:   token.EOF,
				Span:   source.Span{File: last.Span.File, Start: last.Span.End, End: last.Span.End},
				Line:   last.Line,
				Column: last.Column,
			}
		} else {
			eof = token.Token{Kind: token.EOF, Line: 1, Column: 1}
		}
		toks = append(toks[:len(toks):len(toks)], eof)
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{toks: toks, opts: opts}
}

// ParseProgram parses a whole file.
func ParseProgram(toks []token.Token) (*ast.Program, error) {
	return New(toks, Options{}).ParseProgram()
}

// ParseElement parses a single standalone markup element.
func ParseElement(toks []token.Token) (*ast.Element, error) {
	return New(toks, Options{}).ParseElement()
}

// ParseExpr parses a single standalone expression.
func ParseExpr(toks []token.Token) (ast.Expr, error) {
	return New(toks, Options{}).ParseExpr()
}

// ParseProgram parses imports and declarations until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	start := p.peek()
	seen := make(map[string]struct{})

	for !p.at(token.EOF) {
		switch {
		case p.at(token.KwImport):
			im, err := p.parseImport()
			if err != nil {
				return nil, err
			}
			prog.Imports = append(prog.Imports, im)
		case p.atOr(token.KwExport, token.KwComponent, token.KwPage, token.KwLayout):
			nameTok := p.peekDeclName()
			d, err := p.parseDecl()
			if err != nil {
				return nil, err
			}
			name := d.Header().Name
			if _, dup := seen[name]; dup {
				return nil, errorAt(ErrDuplicateDecl, nameTok, "unique declaration name", describe(nameTok),
					"duplicate declaration "+name)
			}
			seen[name] = struct{}{}
			prog.Decls = append(prog.Decls, d)
		case p.at(token.Semicolon):
			p.advance()
		default:
			return nil, p.unexpected("'component', 'page', 'layout', 'import' or 'export'")
		}
	}
	prog.Span = start.Span.Cover(p.peek().Span)
	return prog, nil
}

// ParseElement parses one element followed by EOF.
func (p *Parser) ParseElement() (*ast.Element, error) {
	el, err := p.parseElement()
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.unexpected("end of file")
	}
	return el, nil
}

// ParseExpr parses one expression followed by EOF.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.EOF) {
		return nil, p.unexpected("end of file")
	}
	return e, nil
}
