package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// import "m"
// import A from "m"
// import { A, B } from "m"
// import A, { B } from "m"
func (p *Parser) parseImport() (*ast.Import, error) {
	start := p.advance() // import
	im := &ast.Import{}

	if p.at(token.StringLit) {
		im.From = p.advance().Value
		p.eat(token.Semicolon)
		im.Loc = p.loc(start)
		return im, nil
	}

	if p.at(token.Ident) {
		tok, err := p.binding("imported name")
		if err != nil {
			return nil, err
		}
		im.Default = tok.Text
		if !p.eat(token.Comma) {
			return p.finishImport(start, im)
		}
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	for !p.at(token.RBrace) {
		nameTok, err := p.binding("imported name")
		if err != nil {
			return nil, err
		}
		im.Names = append(im.Names, nameTok.Text)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	if len(im.Names) == 0 && im.Default == "" {
		return nil, p.errorf(ErrInvalidStructure, p.prev(), "imported name", "import list is empty")
	}
	return p.finishImport(start, im)
}

func (p *Parser) finishImport(start token.Token, im *ast.Import) (*ast.Import, error) {
	if _, err := p.expect(token.KwFrom); err != nil {
		return nil, err
	}
	from, err := p.expect(token.StringLit)
	if err != nil {
		return nil, err
	}
	im.From = from.Value
	p.eat(token.Semicolon)
	im.Loc = p.loc(start)
	return im, nil
}
