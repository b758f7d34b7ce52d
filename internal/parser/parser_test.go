package parser_test

import (
	"testing"

	"lumen/internal/ast"
	"lumen/internal/parser"
)

func TestPageWithState(t *testing.T) {
	prog := parseOK(t, `page Home { state { count: number = 0 } <div>{count}</div> }`)
	if len(prog.Decls) != 1 {
		t.Fatalf("decls = %d", len(prog.Decls))
	}
	page, ok := prog.Decls[0].(*ast.Page)
	if !ok {
		t.Fatalf("decl is %T, want *ast.Page", prog.Decls[0])
	}
	if page.Name != "Home" || len(page.Props) != 0 || len(page.Events) != 0 {
		t.Fatalf("unexpected header: %+v", page.DeclBody)
	}
	if len(page.State) != 1 {
		t.Fatalf("state = %d", len(page.State))
	}
	st := page.State[0]
	if st.Name != "count" || st.Type.Name != "number" {
		t.Fatalf("state entry = %+v", st)
	}
	if n, ok := st.Default.(*ast.NumberLit); !ok || n.Raw != "0" {
		t.Fatalf("default = %#v", st.Default)
	}
	if page.Body.Tag != "div" || len(page.Body.Children) != 1 {
		t.Fatalf("body = %+v", page.Body)
	}
	c, ok := page.Body.Children[0].(*ast.ExprContainer)
	if !ok {
		t.Fatalf("child is %T", page.Body.Children[0])
	}
	if id, ok := c.X.(*ast.Ident); !ok || id.Name != "count" {
		t.Fatalf("child expr = %#v", c.X)
	}
}

func TestComponentFull(t *testing.T) {
	src := `
import { Button } from "./button"
export component Counter {
  props {
    label: string = "Clicks",
    step?: number = 1,
    tags: string[] = ["a", "b"]
    onDone?: function
  }
  state {
    count: number = 0;
    open: boolean = false
  }
  event increment() {
    count += step
  }
  event toggle(e) {
    open = !open
  }
  <div class="counter">
    <span>{label}: {count}</span>
    <Button onClick={increment} disabled />
  </div>
}
`
	prog := parseOK(t, src)
	if len(prog.Imports) != 1 || prog.Imports[0].From != "./button" || prog.Imports[0].Names[0] != "Button" {
		t.Fatalf("imports = %+v", prog.Imports)
	}
	c, ok := prog.Decls[0].(*ast.Component)
	if !ok || !c.Exported || c.Name != "Counter" {
		t.Fatalf("decl = %#v", prog.Decls[0])
	}
	if len(c.Props) != 4 || len(c.State) != 2 || len(c.Events) != 2 {
		t.Fatalf("sections: %d props, %d state, %d events", len(c.Props), len(c.State), len(c.Events))
	}
	if !c.Props[1].Optional || c.Props[0].Optional {
		t.Fatal("optional flags mismatch")
	}
	if !c.Props[2].Type.Array || c.Props[2].Type.Name != "string" {
		t.Fatalf("tags type = %v", c.Props[2].Type)
	}
	if c.Props[3].Default != nil {
		t.Fatal("onDone must have no default")
	}
	if got := c.Events[1].Params; len(got) != 1 || got[0] != "e" {
		t.Fatalf("params = %v", got)
	}
	btn := c.Body.Children[3].(*ast.Element)
	if btn.Tag != "Button" || !btn.SelfClosing || len(btn.Attrs) != 2 {
		t.Fatalf("button = %+v", btn)
	}
	if b, ok := btn.Attrs[1].Value.(*ast.BoolLit); !ok || !b.Value || !b.Implicit {
		t.Fatalf("bare attribute = %#v", btn.Attrs[1].Value)
	}
}

func TestMismatchedClosingTag(t *testing.T) {
	_, err := parser.ParseElement(tokens(t, `<div><span></div>`))
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*parser.ParseError)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if perr.Expected != "</span>" || perr.Found != "</div>" {
		t.Fatalf("expected/found = %q/%q", perr.Expected, perr.Found)
	}
	expectMsg(t, perr, "expected </span>")
	if perr.Line != 1 || perr.Column != 14 {
		t.Fatalf("position = %d:%d, want 1:14", perr.Line, perr.Column)
	}
}

func TestMismatchedClosingTagInDecl(t *testing.T) {
	perr := parseErr(t, "component A {\n  <ul><li>x</ul>\n}")
	if perr.Expected != "</li>" || perr.Line != 2 {
		t.Fatalf("got %v (expected %q)", perr, perr.Expected)
	}
}

func TestSelfClosingElement(t *testing.T) {
	el := parseElement(t, `<img src="/a.png" />`)
	if el.Tag != "img" || !el.SelfClosing || len(el.Children) != 0 {
		t.Fatalf("element = %+v", el)
	}
	if len(el.Attrs) != 1 || el.Attrs[0].Name != "src" {
		t.Fatalf("attrs = %+v", el.Attrs)
	}
	if s, ok := el.Attrs[0].Value.(*ast.StringLit); !ok || s.Value != "/a.png" {
		t.Fatalf("src = %#v", el.Attrs[0].Value)
	}
}

func TestBraceChildWithMarkup(t *testing.T) {
	el := parseElement(t, `<p>{condition && <span>x</span>}</p>`)
	if len(el.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(el.Children))
	}
	c, ok := el.Children[0].(*ast.ExprContainer)
	if !ok {
		t.Fatalf("child = %T", el.Children[0])
	}
	bin, ok := c.X.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpAnd {
		t.Fatalf("expr = %#v", c.X)
	}
	inner, ok := bin.Y.(*ast.ElementExpr)
	if !ok || inner.Elem.Tag != "span" {
		t.Fatalf("rhs = %#v", bin.Y)
	}
	if txt := inner.Elem.Children[0].(*ast.Text); txt.Value != "x" {
		t.Fatalf("span text = %q", txt.Value)
	}
}

func TestEmptyBraceChildIsDropped(t *testing.T) {
	el := parseElement(t, `<p>{}a{/* note */}</p>`)
	if len(el.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(el.Children))
	}
}

func TestUnclosedElement(t *testing.T) {
	_, err := parser.ParseElement(tokens(t, `<div><p>hi</p>`))
	perr, ok := err.(*parser.ParseError)
	if !ok {
		t.Fatalf("error = %v", err)
	}
	if perr.Expected != "</div>" || perr.Found != "end of file" {
		t.Fatalf("expected/found = %q/%q", perr.Expected, perr.Found)
	}
}

func TestDuplicateNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"props", `component A { props { x: string, x: number } <div/> }`},
		{"state", `component A { state { x: number = 1, x: number = 2 } <div/> }`},
		{"events", `component A { event go() {} event go() {} <div/> }`},
		{"prop and state", `component A { props { x: string } state { x: number = 1 } <div/> }`},
		{"state and event", `page A { state { go: number = 1 } event go() {} <div/> }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.src)
			expectMsg(t, perr, "duplicate name")
		})
	}
}

func TestStateSettersShareTheScope(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		col  uint32
	}{
		{"event named like a setter", `component C { state { count: number = 0 } event setCount() {} <div/> }`,
			`name "setCount" collides with the setter of state "count"`, 49},
		{"prop named like a setter", `component C { props { setCount: function } state { count: number = 0 } <div/> }`,
			`the setter of state "count" is named "setCount", which is already declared`, 52},
		{"two states, one setter", `component C { state { count: number = 0, Count: number = 1 } <div/> }`,
			`the setter of state "Count" is named "setCount"`, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.src)
			expectMsg(t, perr, tt.want)
			if perr.Kind != parser.ErrDuplicateName {
				t.Fatalf("kind = %s, want DuplicateName", perr.Kind)
			}
			if perr.Line != 1 || perr.Column != tt.col {
				t.Fatalf("position = %d:%d, want 1:%d", perr.Line, perr.Column, tt.col)
			}
		})
	}
	parseOK(t, `component C { state { count: number = 0 } event reset() { count = 0 } <div/> }`)
}

func TestReservedNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"component", `component class { <div/> }`, `component name "class"`},
		{"state", `component C { state { new: number = 1 } <div/> }`, `state "new"`},
		{"prop", `component C { props { default: string } <div/> }`, `prop "default"`},
		{"runtime import", `component C { state { useState: number = 1 } <div/> }`, `state "useState"`},
		{"event", `component C { event delete() {} <div/> }`, `event "delete"`},
		{"event parameter", `component C { event go(this) {} <div/> }`, `parameter "this"`},
		{"let", `component C { event go() { let var = 1 } <div/> }`, `variable "var"`},
		{"loop variable", `component C { event go(xs) { for case in xs { } } <div/> }`, `loop variable "case"`},
		{"arrow parameter", `component C { <ul>{xs.map(new => <li/>)}</ul> }`, `parameter "new"`},
		{"import", `import { useState } from "react"` + "\n" + `component C { <div/> }`, `imported name "useState"`},
		{"default import", `import void from "x"` + "\n" + `component C { <div/> }`, `imported name "void"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := parseErr(t, tt.src)
			expectMsg(t, perr, tt.want+" is a reserved name")
			if perr.Kind != parser.ErrReservedName {
				t.Fatalf("kind = %s, want ReservedName", perr.Kind)
			}
		})
	}
}

func TestDuplicateDeclaration(t *testing.T) {
	perr := parseErr(t, `component A { <div/> } page A { <div/> }`)
	expectMsg(t, perr, "duplicate declaration A")
}

func TestDefaultCoercion(t *testing.T) {
	ok := []string{
		`state { x: number = 5 }`,
		`state { x: number = -2.5 }`,
		`state { x: string = "a" }`,
		`state { x: boolean = false }`,
		`state { x: array = [1, "two"] }`,
		`state { x: object = { a: 1, "b c": [true] } }`,
		`state { x: number[] = [1, 2, -3] }`,
		`state { x: any = "s" }`,
		`props { render?: function = (x) => x }`,
		`props { icon: node = <i/> }`,
	}
	for _, body := range ok {
		parseOK(t, "component A { "+body+" <div/> }")
	}

	bad := []struct {
		body string
		want string
	}{
		{`state { x: number = "5" }`, `default value of "x" is not a valid number`},
		{`state { x: string = 5 }`, `not a valid string`},
		{`state { x: boolean = 1 }`, `not a valid boolean`},
		{`state { x: number[] = [1, "a"] }`, `not a valid number[]`},
		{`state { x: array = [y] }`, `not a valid array`},
		{`state { x: object = { a: f() } }`, `not a valid object`},
		{`state { x: any = y }`, `identifier "y"`},
		{`props { x: number = "z" }`, `not a valid number`},
	}
	for _, tt := range bad {
		perr := parseErr(t, "component A { "+tt.body+" <div/> }")
		expectMsg(t, perr, tt.want)
	}
}

func TestStateNeedsDefault(t *testing.T) {
	perr := parseErr(t, `component A { state { x: number } <div/> }`)
	expectMsg(t, perr, `state "x" needs a default value`)
}

func TestUnknownType(t *testing.T) {
	perr := parseErr(t, `component A { props { x: int } <div/> }`)
	expectMsg(t, perr, `unknown type "int"`)
}

func TestSectionRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"page props", `page P { props { a: string } <div/> }`, "pages cannot declare props"},
		{"paren props", `component C(a: string) { <div/> }`, "props are declared in a block"},
		{"props after state", `component C { state { a: number = 1 } props { b: string } <div/> }`, "props block must come before the state block"},
		{"second state", `component C { state { a: number = 1 } state { b: number = 1 } <div/> }`, "duplicate state block"},
		{"event after body", `component C { <div/> event e() {} }`, "events must come before the markup body"},
		{"missing body", `component C { state { a: number = 1 } }`, "missing markup body"},
		{"two roots", `component C { <div/> <p/> }`, "exactly one root element"},
		{"layout children", `layout L { props { children: node } <main/> }`, `"children" is reserved`},
		{"garbage at top", `let x = 1`, "expected 'component', 'page', 'layout', 'import' or 'export'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectMsg(t, parseErr(t, tt.src), tt.want)
		})
	}
}

func TestLayout(t *testing.T) {
	prog := parseOK(t, `layout Main { props { title: string } <main><h1>{title}</h1>{children}</main> }`)
	if prog.Decls[0].Kind() != ast.DeclLayout {
		t.Fatalf("kind = %v", prog.Decls[0].Kind())
	}
}

func TestImports(t *testing.T) {
	prog := parseOK(t, `
import "./styles.css"
import Card from "./card";
import { A, B, } from "lib"
import X, { Y } from "mix"
component C { <div/> }
`)
	if len(prog.Imports) != 4 {
		t.Fatalf("imports = %d", len(prog.Imports))
	}
	im := prog.Imports
	if im[0].From != "./styles.css" || im[0].Default != "" || len(im[0].Names) != 0 {
		t.Fatalf("side-effect import = %+v", im[0])
	}
	if im[1].Default != "Card" || im[1].From != "./card" {
		t.Fatalf("default import = %+v", im[1])
	}
	if len(im[2].Names) != 2 || im[2].Names[1] != "B" {
		t.Fatalf("named import = %+v", im[2])
	}
	if im[3].Default != "X" || im[3].Names[0] != "Y" {
		t.Fatalf("mixed import = %+v", im[3])
	}
}

func TestMaxDepth(t *testing.T) {
	src := ""
	for range parser.DefaultMaxDepth + 10 {
		src += "("
	}
	src += "1"
	for range parser.DefaultMaxDepth + 10 {
		src += ")"
	}
	_, err := parser.ParseExpr(tokens(t, src))
	if err == nil {
		t.Fatal("expected nesting error")
	}
	expectMsg(t, err.(*parser.ParseError), "nesting deeper than")
}

func TestMissingEOFAppended(t *testing.T) {
	toks := tokens(t, "a + 1")
	toks = toks[:len(toks)-1]
	if _, err := parser.ParseExpr(toks); err != nil {
		t.Fatalf("ParseExpr without EOF: %v", err)
	}
}
