package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// parseBlock reads `{ stmt* }`.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	var stmts []ast.Stmt
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			return nil, p.unexpected("'}'")
		}
		if p.eat(token.Semicolon) {
			continue
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	p.advance() // }
	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	var (
		s   ast.Stmt
		err error
	)
	switch p.peek().Kind {
	case token.KwLet:
		s, err = p.parseLet()
	case token.KwIf:
		s, err = p.parseIf()
	case token.KwFor:
		s, err = p.parseFor()
	case token.KwReturn:
		s, err = p.parseReturn()
	default:
		s, err = p.parseSimpleStmt()
	}
	if err != nil {
		return nil, err
	}
	p.eat(token.Semicolon)
	return s, nil
}

// let name = value
func (p *Parser) parseLet() (ast.Stmt, error) {
	start := p.advance()
	nameTok, err := p.binding("variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LetStmt{Loc: p.loc(start), Name: nameTok.Text, Value: v}, nil
}

// if cond { } [else if ... | else { }]
func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.advance()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	s := &ast.IfStmt{Cond: cond, Then: then}
	if p.eat(token.KwElse) {
		if p.at(token.KwIf) {
			if err := p.enter(); err != nil {
				return nil, err
			}
			elif, err := p.parseIf()
			p.leave()
			if err != nil {
				return nil, err
			}
			s.Else = []ast.Stmt{elif}
		} else if s.Else, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	s.Loc = p.loc(start)
	return s, nil
}

// for x in items { }
func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.advance()
	varTok, err := p.binding("loop variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwIn); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Loc: p.loc(start), Var: varTok.Text, Iter: iter, Body: body}, nil
}

// return [value]
func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.advance()
	s := &ast.ReturnStmt{}
	if !p.atOr(token.RBrace, token.Semicolon, token.EOF) {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		s.Value = v
	}
	s.Loc = p.loc(start)
	return s, nil
}

// expr | target (= | += | -=) value
func (p *Parser) parseSimpleStmt() (ast.Stmt, error) {
	start := p.peek()
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	op, ok := assignOp(p.peek().Kind)
	if !ok {
		return &ast.ExprStmt{Loc: p.loc(start), X: x}, nil
	}
	switch x.(type) {
	case *ast.Ident, *ast.MemberExpr, *ast.IndexExpr:
	default:
		return nil, p.errorf(ErrInvalidTarget, start, "assignable expression", "cannot assign to %s", exprKind(x))
	}
	p.advance()
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Loc: p.loc(start), Target: x, Op: op, Value: v}, nil
}
