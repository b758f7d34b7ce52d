package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/parser"
)

// sexpr renders an expression fully parenthesized for shape comparisons.
func sexpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.NumberLit:
		return e.Raw
	case *ast.StringLit:
		return fmt.Sprintf("%q", e.Value)
	case *ast.BoolLit:
		return fmt.Sprint(e.Value)
	case *ast.BinaryExpr:
		return "(" + sexpr(e.X) + " " + e.Op.String() + " " + sexpr(e.Y) + ")"
	case *ast.UnaryExpr:
		return "(" + e.Op.String() + sexpr(e.X) + ")"
	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = sexpr(a)
		}
		return sexpr(e.Fun) + "(" + strings.Join(args, ", ") + ")"
	case *ast.MemberExpr:
		return sexpr(e.X) + "." + e.Name
	case *ast.IndexExpr:
		return sexpr(e.X) + "[" + sexpr(e.Index) + "]"
	case *ast.CondExpr:
		return "(" + sexpr(e.Cond) + " ? " + sexpr(e.Then) + " : " + sexpr(e.Else) + ")"
	case *ast.ArrayLit:
		parts := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			parts[i] = sexpr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.ObjectLit:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Key + ": " + sexpr(f.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *ast.ArrowFunc:
		if e.Body != nil {
			return "(" + strings.Join(e.Params, ", ") + ") => " + sexpr(e.Body)
		}
		return "(" + strings.Join(e.Params, ", ") + fmt.Sprintf(") => {%d stmts}", len(e.Block))
	case *ast.ElementExpr:
		return "<" + e.Elem.Tag + ">"
	default:
		return fmt.Sprintf("?%T", e)
	}
}

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a - b - c", "((a - b) - c)"},
		{"a || b && c", "(a || (b && c))"},
		{"a == b != c", "((a == b) != c)"},
		{"a < b == c >= d", "((a < b) == (c >= d))"},
		{"x % 2 == 0", "((x % 2) == 0)"},
		{"!a && -b < 3", "((!a) && ((-b) < 3))"},
		{"--x", "(-(-x))"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"a && b ? 1 : 2", "((a && b) ? 1 : 2)"},
		{"user.name.length", "user.name.length"},
		{"items[0].title", "items[0].title"},
		{"f(1, g(x), )", "f(1, g(x))"},
		{"obj.in.for", "obj.in.for"},
		{"list.map(x => x * 2)", "list.map((x) => (x * 2))"},
		{"(a, b) => a + b", "(a, b) => (a + b)"},
		{"() => go()", "() => go()"},
		{"() => { a = 1; b() }", "() => {2 stmts}"},
		{"[1, 'two', [3]]", `[1, "two", [3]]`},
		{`{ a: 1, "b-c": x, if: true, short }`, `{a: 1, b-c: x, if: true, short: short}`},
		{"ok && <b/>", "(ok && <b>)"},
		{"xs.map(x => <li>{x}</li>)", "xs.map((x) => <li>)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := sexpr(parseExpr(t, tt.src)); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestShorthandField(t *testing.T) {
	obj := parseExpr(t, "{ a }").(*ast.ObjectLit)
	if !obj.Fields[0].Shorthand {
		t.Fatal("expected shorthand field")
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"1 +", "expression"},
		{"f(1", "')'"},
		{"a ? b", "':'"},
		{"[1, 2", "']'"},
		{`{ "a" }`, "':'"},
		{"a b", "end of file"},
		{"x.1", "identifier"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parser.ParseExpr(tokens(t, tt.src))
			perr, ok := err.(*parser.ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Expected != tt.expected {
				t.Fatalf("expected = %q, want %q (%v)", perr.Expected, tt.expected, perr)
			}
		})
	}
}
