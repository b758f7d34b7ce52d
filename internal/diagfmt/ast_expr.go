package diagfmt

import (
	"fmt"
	"strconv"
	"strings"

	"lumen/internal/ast"
)

// exprString renders e in source syntax with every binary, unary and
// conditional expression parenthesized, so the tree shows how it grouped.
func exprString(e ast.Expr) string {
	switch e := e.(type) {
	case nil:
		return "<nil>"
	case *ast.Ident:
		return e.Name
	case *ast.StringLit:
		return strconv.Quote(e.Value)
	case *ast.NumberLit:
		return e.Raw
	case *ast.BoolLit:
		return strconv.FormatBool(e.Value)
	case *ast.BinaryExpr:
		return "(" + exprString(e.X) + " " + e.Op.String() + " " + exprString(e.Y) + ")"
	case *ast.UnaryExpr:
		return "(" + e.Op.String() + exprString(e.X) + ")"
	case *ast.CallExpr:
		return exprString(e.Fun) + "(" + exprList(e.Args) + ")"
	case *ast.MemberExpr:
		return exprString(e.X) + "." + e.Name
	case *ast.IndexExpr:
		return exprString(e.X) + "[" + exprString(e.Index) + "]"
	case *ast.ArrayLit:
		return "[" + exprList(e.Elems) + "]"
	case *ast.ObjectLit:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			if f.Shorthand {
				parts[i] = f.Key
			} else {
				parts[i] = f.Key + ": " + exprString(f.Value)
			}
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *ast.ArrowFunc:
		params := "(" + strings.Join(e.Params, ", ") + ")"
		if e.Body != nil {
			return params + " => " + exprString(e.Body)
		}
		return fmt.Sprintf("%s => { %d stmt(s) }", params, len(e.Block))
	case *ast.CondExpr:
		return "(" + exprString(e.Cond) + " ? " + exprString(e.Then) + " : " + exprString(e.Else) + ")"
	case *ast.ElementExpr:
		if e.Elem == nil {
			return "<nil element>"
		}
		return elementSummary(e.Elem)
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func exprList(list []ast.Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = exprString(e)
	}
	return strings.Join(parts, ", ")
}

func elementSummary(el *ast.Element) string {
	if el.SelfClosing {
		return "<" + el.Tag + " />"
	}
	return fmt.Sprintf("<%s>…</%s>", el.Tag, el.Tag)
}
