package codegen

import (
	"strings"

	"lumen/internal/ast"
)

// Printing precedences, loosest first.
const (
	precLowest = iota
	precAssign // arrow functions, defaults
	precCond
	precBinaryBase // + BinaryOp.Prec()
	precUnary      = precBinaryBase + 7
	precPostfix    = precUnary + 1
	precPrimary    = precPostfix + 1
)

func exprPrec(e ast.Expr) int {
	switch e := e.(type) {
	case *ast.ArrowFunc:
		return precAssign
	case *ast.CondExpr:
		return precCond
	case *ast.BinaryExpr:
		return precBinaryBase + e.Op.Prec()
	case *ast.UnaryExpr:
		return precUnary
	case *ast.CallExpr, *ast.MemberExpr, *ast.IndexExpr:
		return precPostfix
	default:
		return precPrimary
	}
}

// expr renders e, wrapping it in parentheses when it binds looser than minPrec.
func (g *generator) expr(e ast.Expr, minPrec int) string {
	if e == nil {
		return "undefined"
	}
	s := g.exprRaw(e)
	if exprPrec(e) < minPrec {
		return "(" + s + ")"
	}
	return s
}

func (g *generator) exprRaw(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StringLit:
		return jsQuote(e.Value)
	case *ast.NumberLit:
		return e.Raw
	case *ast.BoolLit:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.BinaryExpr:
		p := exprPrec(e)
		return g.expr(e.X, p) + " " + jsBinaryOp(e.Op) + " " + g.expr(e.Y, p+1)
	case *ast.UnaryExpr:
		operand := g.expr(e.X, precUnary)
		if e.Op == ast.OpNeg && strings.HasPrefix(operand, "-") {
			operand = "(" + operand + ")"
		}
		return e.Op.String() + operand
	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = g.expr(a, precAssign)
		}
		return g.expr(e.Fun, precPostfix) + "(" + strings.Join(args, ", ") + ")"
	case *ast.MemberExpr:
		x := g.expr(e.X, precPostfix)
		if _, isNum := e.X.(*ast.NumberLit); isNum {
			x = "(" + x + ")"
		}
		return x + "." + e.Name
	case *ast.IndexExpr:
		return g.expr(e.X, precPostfix) + "[" + g.expr(e.Index, precLowest) + "]"
	case *ast.ArrayLit:
		elems := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = g.expr(el, precAssign)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *ast.ObjectLit:
		return g.object(e)
	case *ast.CondExpr:
		return g.expr(e.Cond, precCond+1) + " ? " + g.expr(e.Then, precAssign) + " : " + g.expr(e.Else, precAssign)
	case *ast.ArrowFunc:
		return g.arrow(e)
	case *ast.ElementExpr:
		if e.Elem == nil {
			return "null"
		}
		return g.inlineElement(e.Elem)
	default:
		return unsupported(e)
	}
}

func jsBinaryOp(op ast.BinaryOp) string {
	switch op {
	case ast.OpEq:
		return "==="
	case ast.OpNotEq:
		return "!=="
	default:
		return op.String()
	}
}

func (g *generator) object(o *ast.ObjectLit) string {
	if len(o.Fields) == 0 {
		return "{}"
	}
	fields := make([]string, len(o.Fields))
	for i, f := range o.Fields {
		if f.Shorthand {
			if id, ok := f.Value.(*ast.Ident); ok && id.Name == f.Key {
				fields[i] = f.Key
				continue
			}
		}
		fields[i] = objectKey(f.Key) + ": " + g.expr(f.Value, precAssign)
	}
	return "{ " + strings.Join(fields, ", ") + " }"
}

func (g *generator) arrow(fn *ast.ArrowFunc) string {
	var params string
	if len(fn.Params) == 1 {
		params = fn.Params[0]
	} else {
		params = "(" + strings.Join(fn.Params, ", ") + ")"
	}

	if fn.Body != nil {
		g.pushScope(fn.Params...)
		defer g.popScope()
		body := g.expr(fn.Body, precAssign)
		if _, isObj := fn.Body.(*ast.ObjectLit); isObj {
			body = "(" + body + ")"
		}
		return params + " => " + body
	}

	if len(fn.Block) == 0 {
		return params + " => {}"
	}
	sub := g.sub(g.indent + 1)
	sub.pushScope(fn.Params...)
	sub.stmts(fn.Block)
	return params + " => {\n" + sub.buf.String() + g.indentString() + "}"
}
