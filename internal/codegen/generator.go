package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"lumen/internal/ast"
)

// DefaultRuntime is the module hooks are imported from.
const DefaultRuntime = "react"

// Options control the rendered module.
type Options struct {
	Runtime string // "" = DefaultRuntime
	Header  bool   // emit a "Code generated" first line
	Source  string // source name shown in the header
	Indent  string // "" = two spaces
}

func (o Options) withDefaults() Options {
	if o.Runtime == "" {
		o.Runtime = DefaultRuntime
	}
	if o.Indent == "" {
		o.Indent = "  "
	}
	return o
}

// Generate renders prog.
func Generate(prog *ast.Program, opts Options) string {
	g := newGenerator(opts.withDefaults())
	g.program(prog)
	return g.buf.String()
}

// FormatElement renders a single element as JSX.
func FormatElement(el *ast.Element, opts Options) string {
	g := newGenerator(opts.withDefaults())
	g.element(el)
	return strings.TrimSuffix(g.buf.String(), "\n")
}

// FormatExpr renders a single expression.
func FormatExpr(e ast.Expr, opts Options) string {
	g := newGenerator(opts.withDefaults())
	return g.expr(e, precLowest)
}

type generator struct {
	buf    bytes.Buffer
	indent int
	opts   Options

	state  map[string]struct{} // state names of the current declaration
	scopes []map[string]struct{}
}

func newGenerator(opts Options) *generator {
	return &generator{opts: opts}
}

// sub returns a generator sharing configuration and scopes, writing to a
// fresh buffer at the given indentation.
func (g *generator) sub(indent int) *generator {
	return &generator{
		indent: indent,
		opts:   g.opts,
		state:  g.state,
		scopes: g.scopes,
	}
}

func (g *generator) write(s string) {
	g.buf.WriteString(s)
}

func (g *generator) writef(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) writeln(s string) {
	if s == "" {
		g.buf.WriteByte('\n')
		return
	}
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *generator) writeIndent() {
	for range g.indent {
		g.buf.WriteString(g.opts.Indent)
	}
}

func (g *generator) indentString() string {
	return strings.Repeat(g.opts.Indent, g.indent)
}

func (g *generator) program(prog *ast.Program) {
	if prog == nil {
		return
	}
	if g.opts.Header {
		src := g.opts.Source
		if src == "" {
			src = "source"
		}
		g.writeln(fmt.Sprintf("// Code generated by lumen from %s. DO NOT EDIT.", src))
		g.writeln("")
	}

	imports := false
	if usesState(prog) {
		g.writef("import { useState } from %s;\n", jsQuote(g.opts.Runtime))
		imports = true
	}
	for _, im := range prog.Imports {
		g.importDecl(im)
		imports = true
	}

	for i, d := range prog.Decls {
		if i > 0 || imports {
			g.writeln("")
		}
		g.decl(d)
	}
}

func usesState(prog *ast.Program) bool {
	for _, d := range prog.Decls {
		if d != nil && len(d.Header().State) > 0 {
			return true
		}
	}
	return false
}

func (g *generator) importDecl(im *ast.Import) {
	if im == nil {
		return
	}
	from := jsQuote(im.From)
	var clause []string
	if im.Default != "" {
		clause = append(clause, im.Default)
	}
	if len(im.Names) > 0 {
		clause = append(clause, "{ "+strings.Join(im.Names, ", ")+" }")
	}
	if len(clause) == 0 {
		g.writef("import %s;\n", from)
		return
	}
	g.writef("import %s from %s;\n", strings.Join(clause, ", "), from)
}

func (g *generator) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.Component, *ast.Page, *ast.Layout:
		g.function(d.Kind(), d.Header())
	default:
		g.writeln(unsupported(d))
	}
}

func (g *generator) function(kind ast.DeclKind, d *ast.DeclBody) {
	g.state = make(map[string]struct{}, len(d.State))
	for _, st := range d.State {
		g.state[st.Name] = struct{}{}
	}
	g.scopes = nil
	defer func() { g.state = nil }()

	export := ""
	if d.Exported {
		export = "export "
	}
	g.writef("%sfunction %s(%s) {\n", export, d.Name, g.params(kind, d))
	g.indent++

	for _, st := range d.State {
		g.writef("const [%s, %s] = useState(%s);\n", st.Name, g.setterName(st.Name), g.stateInit(st))
	}

	for i, ev := range d.Events {
		if i > 0 || len(d.State) > 0 {
			g.writeln("")
		}
		g.event(ev)
	}

	if len(d.State) > 0 || len(d.Events) > 0 {
		g.writeln("")
	}
	g.returnBody(d.Body)

	g.indent--
	g.writeln("}")
}

// params renders the destructured props parameter.
func (g *generator) params(kind ast.DeclKind, d *ast.DeclBody) string {
	var names []string
	for _, p := range d.Props {
		if p.Default != nil {
			names = append(names, p.Name+" = "+g.expr(p.Default, precAssign))
		} else {
			names = append(names, p.Name)
		}
	}
	if kind == ast.DeclLayout {
		names = append(names, ast.ChildrenProp)
	}
	if len(names) == 0 {
		return ""
	}
	return "{ " + strings.Join(names, ", ") + " }"
}

func (g *generator) event(ev *ast.EventDecl) {
	g.writef("function %s(%s) {\n", ev.Name, strings.Join(ev.Params, ", "))
	g.indent++
	g.pushScope(ev.Params...)
	g.stmts(ev.Body)
	g.popScope()
	g.indent--
	g.writeln("}")
}

func (g *generator) returnBody(body *ast.Element) {
	if body == nil {
		g.writeln("return null;")
		return
	}
	g.writeln("return (")
	g.indent++
	g.element(body)
	g.indent--
	g.writeln(");")
}

// stateInit renders the useState argument. useState calls a function
// argument to get the initial value, so function-typed state is wrapped
// in one more arrow to keep the function itself.
func (g *generator) stateInit(st *ast.StateDecl) string {
	if st.Type.Name == ast.TypeFunction && !st.Type.Array {
		return "() => " + g.expr(st.Default, precAssign)
	}
	return g.expr(st.Default, precLowest)
}

func (g *generator) setterName(name string) string {
	return ast.SetterName(name)
}

func (g *generator) pushScope(names ...string) {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	g.scopes = append(g.scopes, s)
}

func (g *generator) popScope() {
	g.scopes = g.scopes[:len(g.scopes)-1]
}

func (g *generator) declareLocal(name string) {
	if len(g.scopes) == 0 {
		g.pushScope()
	}
	g.scopes[len(g.scopes)-1][name] = struct{}{}
}

// isState reports whether name refers to a state variable that no
// parameter or local shadows.
func (g *generator) isState(name string) bool {
	if _, ok := g.state[name]; !ok {
		return false
	}
	for _, s := range g.scopes {
		if _, ok := s[name]; ok {
			return false
		}
	}
	return true
}

func unsupported(n any) string {
	return fmt.Sprintf("/* lumen: unsupported %T */", n)
}
