package parser

import (
	"lumen/internal/ast"
	"lumen/internal/token"
)

// binaryOp maps a token to its binary operator; all are left-associative.
func binaryOp(kind token.Kind) (ast.BinaryOp, bool) {
	switch kind {
	case token.OrOr:
		return ast.OpOr, true
	case token.AndAnd:
		return ast.OpAnd, true
	case token.EqEq:
		return ast.OpEq, true
	case token.BangEq:
		return ast.OpNotEq, true
	case token.Lt:
		return ast.OpLt, true
	case token.LtEq:
		return ast.OpLtEq, true
	case token.Gt:
		return ast.OpGt, true
	case token.GtEq:
		return ast.OpGtEq, true
	case token.Plus:
		return ast.OpAdd, true
	case token.Minus:
		return ast.OpSub, true
	case token.Star:
		return ast.OpMul, true
	case token.Slash:
		return ast.OpDiv, true
	case token.Percent:
		return ast.OpMod, true
	default:
		return 0, false
	}
}

func assignOp(kind token.Kind) (ast.AssignOp, bool) {
	switch kind {
	case token.Assign:
		return ast.Assign, true
	case token.PlusAssign:
		return ast.AddAssign, true
	case token.MinusAssign:
		return ast.SubAssign, true
	default:
		return 0, false
	}
}
