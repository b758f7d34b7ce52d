package parser

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/token"
)

// <tag attrs/> | <tag attrs> children </tag>
func (p *Parser) parseElement() (*ast.Element, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start, err := p.expect(token.TagOpen)
	if err != nil {
		return nil, err
	}
	tagTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	el := &ast.Element{Tag: tagTok.Text}

	if el.Attrs, err = p.parseAttributes(); err != nil {
		return nil, err
	}

	if p.eat(token.TagSelfClose) {
		el.SelfClosing = true
		el.Loc = p.loc(start)
		return el, nil
	}
	if _, err := p.expect(token.TagEnd); err != nil {
		return nil, err
	}

	if el.Children, err = p.parseChildren(el.Tag); err != nil {
		return nil, err
	}

	// </tag>
	p.advance()
	closeTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if closeTok.Text != el.Tag {
		want, got := "</"+el.Tag+">", "</"+closeTok.Text+">"
		return nil, errorAt(ErrMismatchedTag, closeTok, want, got,
			fmt.Sprintf("mismatched closing tag: expected %s, found %s", want, got))
	}
	if _, err := p.expect(token.TagEnd); err != nil {
		return nil, err
	}
	el.Loc = p.loc(start)
	return el, nil
}

// name="text" | name={expr} | name
func (p *Parser) parseAttributes() ([]*ast.Attribute, error) {
	var attrs []*ast.Attribute
	for p.at(token.Ident) {
		nameTok := p.advance()
		attr := &ast.Attribute{Name: nameTok.Text}

		if !p.eat(token.Assign) {
			attr.Value = &ast.BoolLit{Loc: ast.At(nameTok.Span), Value: true, Implicit: true}
			attr.Loc = p.loc(nameTok)
			attrs = append(attrs, attr)
			continue
		}

		switch tok := p.peek(); tok.Kind {
		case token.StringLit:
			p.advance()
			attr.Value = &ast.StringLit{Loc: ast.At(tok.Span), Value: tok.Value}
		case token.LBrace:
			p.advance()
			if p.at(token.RBrace) {
				return nil, p.errorf(ErrInvalidStructure, p.peek(), "expression", "attribute %q has an empty expression", attr.Name)
			}
			v, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBrace); err != nil {
				return nil, err
			}
			attr.Value = v
		default:
			return nil, p.unexpected("string or '{'")
		}
		attr.Loc = p.loc(nameTok)
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// parseChildren stops in front of the closing "</".
func (p *Parser) parseChildren(tag string) ([]ast.Child, error) {
	var children []ast.Child
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.TagClose:
			return children, nil
		case token.Text:
			p.advance()
			children = append(children, &ast.Text{Loc: ast.At(tok.Span), Value: tok.Value})
		case token.TagOpen:
			child, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case token.LBrace:
			p.advance()
			if p.eat(token.RBrace) {
				continue // {} or {/* comment */}
			}
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBrace); err != nil {
				return nil, err
			}
			children = append(children, &ast.ExprContainer{Loc: p.loc(tok), X: x})
		case token.EOF:
			return nil, p.errorf(ErrUnclosedElement, tok, "</"+tag+">", "element <%s> is not closed: expected </%s>, found end of file", tag, tag)
		default:
			return nil, p.unexpected("markup content or </" + tag + ">")
		}
	}
}
