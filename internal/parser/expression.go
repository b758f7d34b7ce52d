package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

func (p *Parser) parseExpr() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseTernary()
}

// cond ? then : else, right-associative.
func (p *Parser) parseTernary() (ast.Expr, error) {
	start := p.peek()
	cond, err := p.parseBinaryExpr(1)
	if err != nil {
		return nil, err
	}
	if !p.eat(token.Question) {
		return cond, nil
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.CondExpr{Loc: p.loc(start), Cond: cond, Then: then, Else: els}, nil
}

// parseBinaryExpr is a precedence-climbing loop over binary operators
// binding at least as tight as minPrec.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, error) {
	start := p.peek()
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOp(p.peek().Kind)
		if !ok || op.Prec() < minPrec {
			return left, nil
		}
		p.advance()
		right, err := p.parseBinaryExpr(op.Prec() + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Loc: p.loc(start), Op: op, X: left, Y: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	start := p.peek()
	var op ast.UnaryOp
	switch start.Kind {
	case token.Bang:
		op = ast.OpNot
	case token.Minus:
		op = ast.OpNeg
	default:
		return p.parsePostfix()
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.advance()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Loc: p.loc(start), Op: op, X: x}, nil
}

// primary { "(" args ")" | "." name | "[" expr "]" }
func (p *Parser) parsePostfix() (ast.Expr, error) {
	start := p.peek()
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			p.advance()
			args, err := p.parseExprList(token.RParen)
			if err != nil {
				return nil, err
			}
			x = &ast.CallExpr{Loc: p.loc(start), Fun: x, Args: args}
		case token.Dot:
			p.advance()
			nameTok, err := p.name(true)
			if err != nil {
				return nil, err
			}
			x = &ast.MemberExpr{Loc: p.loc(start), X: x, Name: nameTok.Text}
		case token.LBracket:
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			x = &ast.IndexExpr{Loc: p.loc(start), X: x, Index: idx}
		default:
			return x, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		if p.peekN(1).Kind == token.FatArrow {
			return p.parseArrow()
		}
		p.advance()
		return &ast.Ident{Loc: ast.At(tok.Span), Name: tok.Text}, nil
	case token.NumberLit:
		p.advance()
		return &ast.NumberLit{Loc: ast.At(tok.Span), Raw: tok.Text}, nil
	case token.StringLit:
		p.advance()
		return &ast.StringLit{Loc: ast.At(tok.Span), Value: tok.Value}, nil
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.BoolLit{Loc: ast.At(tok.Span), Value: tok.Kind == token.KwTrue}, nil
	case token.LParen:
		if p.atArrowParams() {
			return p.parseArrow()
		}
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return x, nil
	case token.LBracket:
		p.advance()
		elems, err := p.parseExprList(token.RBracket)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLit{Loc: p.loc(tok), Elems: elems}, nil
	case token.LBrace:
		return p.parseObject()
	case token.TagOpen:
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		return &ast.ElementExpr{Loc: el.Loc, Elem: el}, nil
	default:
		return nil, p.unexpected("expression")
	}
}

// parseExprList reads `a, b, c` up to and including the closing token.
// A trailing comma is allowed.
func (p *Parser) parseExprList(closing token.Kind) ([]ast.Expr, error) {
	var list []ast.Expr
	for !p.at(closing) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(closing); err != nil {
		return nil, err
	}
	return list, nil
}

// { key: value, "quoted": value, short }
func (p *Parser) parseObject() (ast.Expr, error) {
	start := p.advance() // {
	obj := &ast.ObjectLit{}
	for !p.at(token.RBrace) {
		keyTok := p.peek()
		var key string
		switch {
		case keyTok.Kind == token.StringLit:
			key = keyTok.Value
		case keyTok.Kind == token.Ident || keyTok.IsKeyword():
			key = keyTok.Text
		default:
			return nil, p.unexpected("object key")
		}
		p.advance()

		field := &ast.ObjectField{Key: key}
		if p.eat(token.Colon) {
			v, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			field.Value = v
		} else {
			if keyTok.Kind != token.Ident {
				return nil, p.unexpected("':'")
			}
			field.Value = &ast.Ident{Loc: ast.At(keyTok.Span), Name: key}
			field.Shorthand = true
		}
		field.Loc = p.loc(keyTok)
		obj.Fields = append(obj.Fields, field)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	obj.Loc = p.loc(start)
	return obj, nil
}

// atArrowParams looks ahead for `( [ident {, ident}] ) =>`.
func (p *Parser) atArrowParams() bool {
	i := 1
	if p.peekN(i).Kind == token.RParen {
		return p.peekN(i+1).Kind == token.FatArrow
	}
	for {
		if p.peekN(i).Kind != token.Ident {
			return false
		}
		i++
		switch p.peekN(i).Kind {
		case token.Comma:
			i++
		case token.RParen:
			return p.peekN(i+1).Kind == token.FatArrow
		default:
			return false
		}
	}
}

// x => body | (a, b) => body; a '{' after the arrow opens a statement block.
func (p *Parser) parseArrow() (ast.Expr, error) {
	start := p.peek()
	fn := &ast.ArrowFunc{}
	if p.at(token.Ident) {
		tok, err := p.binding("parameter")
		if err != nil {
			return nil, err
		}
		fn.Params = []string{tok.Text}
	} else {
		p.advance() // (
		params, err := p.parseParamList()
		if err != nil {
			return nil, err
		}
		fn.Params = params
	}
	if _, err := p.expect(token.FatArrow); err != nil {
		return nil, err
	}
	if p.at(token.LBrace) {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		fn.Block = block
		if fn.Block == nil {
			fn.Block = []ast.Stmt{}
		}
	} else {
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fn.Body = body
	}
	fn.Loc = p.loc(start)
	return fn, nil
}
