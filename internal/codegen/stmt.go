package codegen

import (
	"strings"

	"lumen/internal/ast"
)

func (g *generator) stmts(list []ast.Stmt) {
	for _, s := range list {
		g.stmt(s)
	}
}

func (g *generator) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		x := g.expr(s.X, precLowest)
		if strings.HasPrefix(x, "{") {
			// a leading brace would open a block
			x = "(" + x + ")"
		}
		g.writeln(x + ";")
	case *ast.AssignStmt:
		g.assign(s)
	case *ast.LetStmt:
		g.writeln("let " + s.Name + " = " + g.expr(s.Value, precAssign) + ";")
		g.declareLocal(s.Name)
	case *ast.IfStmt:
		g.writeIndent()
		g.ifChain(s)
		g.write("\n")
	case *ast.ForStmt:
		g.writeln("for (const " + s.Var + " of " + g.expr(s.Iter, precAssign) + ") {")
		g.block(s.Body, s.Var)
		g.writeln("}")
	case *ast.ReturnStmt:
		if s.Value == nil {
			g.writeln("return;")
		} else {
			g.writeln("return " + g.expr(s.Value, precLowest) + ";")
		}
	default:
		g.writeln(unsupported(s))
	}
}

// assign turns writes to state variables into setter calls:
// count = e → setCount(e); count += e → setCount(count + e).
func (g *generator) assign(s *ast.AssignStmt) {
	if id, ok := s.Target.(*ast.Ident); ok && g.isState(id.Name) {
		value := s.Value
		if op, compound := s.Op.Binary(); compound {
			value = &ast.BinaryExpr{Op: op, X: id, Y: s.Value}
		}
		g.writeln(g.setterName(id.Name) + "(" + g.expr(value, precAssign) + ");")
		return
	}
	g.writeln(g.expr(s.Target, precPostfix) + " " + s.Op.String() + " " + g.expr(s.Value, precAssign) + ";")
}

// ifChain writes an if statement starting at the current column, without
// the trailing newline, so "else if" can continue on the same line.
func (g *generator) ifChain(s *ast.IfStmt) {
	g.write("if (" + g.expr(s.Cond, precLowest) + ") {\n")
	g.block(s.Then)
	g.writeIndent()
	g.write("}")
	if len(s.Else) == 0 {
		return
	}
	if elif, ok := s.Else[0].(*ast.IfStmt); ok && len(s.Else) == 1 {
		g.write(" else ")
		g.ifChain(elif)
		return
	}
	g.write(" else {\n")
	g.block(s.Else)
	g.writeIndent()
	g.write("}")
}

func (g *generator) block(list []ast.Stmt, locals ...string) {
	g.indent++
	g.pushScope(locals...)
	g.stmts(list)
	g.popScope()
	g.indent--
}
