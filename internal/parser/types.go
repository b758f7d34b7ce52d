package parser

import (
	"fmt"

	"lumen/internal/ast"
	"lumen/internal/token"
)

// type := name ["[" "]"]
func (p *Parser) parseType() (ast.TypeRef, error) {
	tok := p.peek()
	if tok.Kind != token.Ident {
		return ast.TypeRef{}, p.unexpected("type name")
	}
	if !ast.IsKnownType(tok.Text) {
		return ast.TypeRef{}, p.errorf(ErrUnknownType, tok, "type name",
			"unknown type %q (want string, number, boolean, array, object, any, function, node or T[])", tok.Text)
	}
	p.advance()
	t := ast.TypeRef{Name: tok.Text}
	if p.at(token.LBracket) {
		p.advance()
		if _, err := p.expect(token.RBracket); err != nil {
			return ast.TypeRef{}, err
		}
		t.Array = true
	}
	return t, nil
}

// parseDefault parses a default value and checks that it can seed a value
// of type t.
func (p *Parser) parseDefault(name string, t ast.TypeRef) (ast.Expr, error) {
	start := p.peek()
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !representable(t, e) {
		return nil, &ParseError{
			Kind:     ErrBadDefault,
			Expected: t.String() + " value",
			Found:    exprKind(e),
			Line:     start.Line,
			Column:   start.Column,
			Span:     e.Pos(),
			Msg:      fmt.Sprintf("default value of %q is not a valid %s: found %s", name, t, exprKind(e)),
		}
	}
	return e, nil
}

// representable reports whether the literal e fits type t.
func representable(t ast.TypeRef, e ast.Expr) bool {
	if t.Array {
		arr, ok := e.(*ast.ArrayLit)
		if !ok {
			return false
		}
		for _, el := range arr.Elems {
			if !representable(t.Elem(), el) {
				return false
			}
		}
		return true
	}
	switch t.Name {
	case ast.TypeString:
		_, ok := e.(*ast.StringLit)
		return ok
	case ast.TypeNumber:
		if u, ok := e.(*ast.UnaryExpr); ok && u.Op == ast.OpNeg {
			e = u.X
		}
		_, ok := e.(*ast.NumberLit)
		return ok
	case ast.TypeBoolean:
		_, ok := e.(*ast.BoolLit)
		return ok
	case ast.TypeArray:
		_, ok := e.(*ast.ArrayLit)
		return ok && ast.IsLiteral(e)
	case ast.TypeObject:
		_, ok := e.(*ast.ObjectLit)
		return ok && ast.IsLiteral(e)
	case ast.TypeAny:
		return ast.IsLiteral(e)
	case ast.TypeFunction:
		_, ok := e.(*ast.ArrowFunc)
		return ok
	case ast.TypeNode:
		switch e.(type) {
		case *ast.ElementExpr, *ast.StringLit:
			return true
		}
		return false
	default:
		return false
	}
}

func exprKind(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.StringLit:
		return "string"
	case *ast.NumberLit:
		return "number"
	case *ast.BoolLit:
		return "boolean"
	case *ast.ArrayLit:
		return "array"
	case *ast.ObjectLit:
		return "object"
	case *ast.ArrowFunc:
		return "function"
	case *ast.ElementExpr:
		return "markup"
	case *ast.Ident:
		return fmt.Sprintf("identifier %q", e.Name)
	case *ast.UnaryExpr:
		if _, ok := e.X.(*ast.NumberLit); ok && e.Op == ast.OpNeg {
			return "number"
		}
		return "expression"
	default:
		return "expression"
	}
}
