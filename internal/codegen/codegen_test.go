package codegen_test

import (
	"errors"
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/codegen"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
)

func compile(t *testing.T, src string, opts codegen.Options) string {
	t.Helper()
	return codegen.Generate(parse(t, src), opts)
}

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lumen", []byte(src))
	toks, err := lexer.Tokenize(fs.Get(id))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	prog, err := parser.ParseProgram(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := codegen.Check(prog); err != nil {
		t.Fatalf("check: %v", err)
	}
	return prog
}

func expectOutput(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Fatalf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestPageWithState(t *testing.T) {
	got := compile(t, `page Home { state { count: number = 0 } <div>{count}</div> }`, codegen.Options{})
	want := `import { useState } from "react";

function Home() {
  const [count, setCount] = useState(0);

  return (
    <div>{count}</div>
  );
}
`
	expectOutput(t, got, want)
}

func TestCounterComponent(t *testing.T) {
	src := `
import { Button } from "./button"
export component Counter {
  props { label: string = "Clicks", step?: number = 1 }
  state { count: number = 0, open: boolean = false }
  event increment() {
    count += step
  }
  event toggle(e) {
    open = !open
    if count > 10 { count = 0 } else if count > 5 { log("half") } else { return }
  }
  <div class="counter">
    <span>{label}: {count}</span>
    <Button onClick={increment} disabled />
    {open && <p>Open</p>}
  </div>
}
`
	want := `import { useState } from "react";
import { Button } from "./button";

export function Counter({ label = "Clicks", step = 1 }) {
  const [count, setCount] = useState(0);
  const [open, setOpen] = useState(false);

  function increment() {
    setCount(count + step);
  }

  function toggle(e) {
    setOpen(!open);
    if (count > 10) {
      setCount(0);
    } else if (count > 5) {
      log("half");
    } else {
      return;
    }
  }

  return (
    <div className="counter">
      <span>{label}: {count}</span>
      <Button onClick={increment} disabled />
      {open && <p>Open</p>}
    </div>
  );
}
`
	expectOutput(t, compile(t, src, codegen.Options{}), want)
}

func TestLayoutReceivesChildren(t *testing.T) {
	got := compile(t, `layout Main { props { title: string } <main><h1>{title}</h1>{children}</main> }`, codegen.Options{})
	want := `function Main({ title, children }) {
  return (
    <main>
      <h1>{title}</h1>
      {children}
    </main>
  );
}
`
	expectOutput(t, got, want)
}

func TestIdempotence(t *testing.T) {
	src := `component A { props { xs: string[] = ["a"] } state { n: number = 1, o: object = { k: [1, 2], "x-y": true } }
	event e(v) { n = n * 2 } <ul>{xs.map(x => <li key={x}>{x}</li>)}</ul> }`
	first := compile(t, src, codegen.Options{Header: true, Source: "a.lumen"})
	for range 5 {
		if again := compile(t, src, codegen.Options{Header: true, Source: "a.lumen"}); again != first {
			t.Fatalf("non-deterministic output:\n%s\n---\n%s", first, again)
		}
	}
	if !strings.Contains(first, `useState({ k: [1, 2], "x-y": true })`) {
		t.Fatalf("object default not serialized canonically:\n%s", first)
	}
}

func TestDefaultCoercion(t *testing.T) {
	got := compile(t, `component A { state { x: number = 5, y: string = "a", z: number = -1 } <p/> }`, codegen.Options{})
	for _, want := range []string{
		"const [x, setX] = useState(5);",
		`const [y, setY] = useState("a");`,
		"const [z, setZ] = useState(-1);",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestSelfClosingRoundTrip(t *testing.T) {
	toks, err := lexer.Tokenize(virtual(`<img src="/a.png" />`))
	if err != nil {
		t.Fatal(err)
	}
	el, err := parser.ParseElement(toks)
	if err != nil {
		t.Fatal(err)
	}
	if got := codegen.FormatElement(el, codegen.Options{}); got != `<img src="/a.png" />` {
		t.Fatalf("got %q", got)
	}
}

func TestAttributeOrderAndQuoting(t *testing.T) {
	got := compile(t, `component F { <form><input type="text" value={name} placeholder='Say "hi"' required /><label for="n">N</label></form> }`, codegen.Options{})
	for _, want := range []string{
		`<input type="text" value={name} placeholder={"Say \"hi\""} required />`,
		`<label htmlFor="n">N</label>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestComponentAttributesAreNotRenamed(t *testing.T) {
	got := compile(t, `component F { <Card class="x" /> }`, codegen.Options{})
	if !strings.Contains(got, `<Card class="x" />`) {
		t.Fatalf("component prop renamed:\n%s", got)
	}
}

func TestSettersRespectShadowing(t *testing.T) {
	got := compile(t, `component S {
  state { open: boolean = false, count: number = 0 }
  event set(count) { count = 1 }
  event local() { let open = true; open = false }
  event real() { count -= 2 - 1 }
  <p/>
}`, codegen.Options{})
	for _, want := range []string{
		"    count = 1;\n",
		"    let open = true;\n    open = false;\n",
		"    setCount(count - (2 - 1));\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestStatements(t *testing.T) {
	got := compile(t, `component T {
  event sum(xs) { let total = 0; for x in xs { total += x } return total }
  <p/>
}`, codegen.Options{})
	want := `  function sum(xs) {
    let total = 0;
    for (const x of xs) {
      total += x;
    }
    return total;
  }
`
	if !strings.Contains(got, want) {
		t.Fatalf("missing\n%s\nin\n%s", want, got)
	}
}

func TestObjectStatementIsParenthesized(t *testing.T) {
	got := compile(t, `component O {
  event e() { { a: 1, b: 2 }; { a: 1 }.a }
  <p/>
}`, codegen.Options{})
	for _, want := range []string{
		"    ({ a: 1, b: 2 });\n",
		"    ({ a: 1 }.a);\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestFunctionStateKeepsTheFunction(t *testing.T) {
	got := compile(t, `component F {
  state { cb: function = () => 1, cbs: function[] = [], n: number = 1 }
  <p/>
}`, codegen.Options{})
	for _, want := range []string{
		"  const [cb, setCb] = useState(() => () => 1);\n",
		"  const [cbs, setCbs] = useState([]);\n",
		"  const [n, setN] = useState(1);\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestArrowBlockInAttribute(t *testing.T) {
	got := compile(t, `component C { state { count: number = 0 } <button onClick={() => { count += 1 }}>+</button> }`, codegen.Options{})
	want := "    <button onClick={() => {\n      setCount(count + 1);\n    }}>+</button>\n"
	if !strings.Contains(got, want) {
		t.Fatalf("missing %q in\n%s", want, got)
	}
}

func TestTextWhitespace(t *testing.T) {
	got := compile(t, "component W { <div>\n  <p>\n    Hello\n    world\n  </p>\n  <b>a</b> <i>b</i>\n</div> }", codegen.Options{})
	if !strings.Contains(got, "<div><p>Hello world</p><b>a</b> <i>b</i></div>") {
		t.Fatalf("text not normalized:\n%s", got)
	}
}

func TestImports(t *testing.T) {
	got := compile(t, `
import "./app.css"
import Card from "./card"
import { A, B } from "lib"
import X, { Y } from "mix"
component C { <div/> }`, codegen.Options{})
	want := `import "./app.css";
import Card from "./card";
import { A, B } from "lib";
import X, { Y } from "mix";

function C() {
  return (
    <div />
  );
}
`
	expectOutput(t, got, want)
}

func TestHeaderAndRuntime(t *testing.T) {
	got := compile(t, `page P { state { a: string = "" } <p/> }`, codegen.Options{Header: true, Source: "src/p.lumen", Runtime: "preact/hooks"})
	if !strings.HasPrefix(got, "// Code generated by lumen from src/p.lumen. DO NOT EDIT.\n\nimport { useState } from \"preact/hooks\";\n") {
		t.Fatalf("unexpected prelude:\n%s", got)
	}
}

func TestFormatExprPrecedence(t *testing.T) {
	id := func(n string) ast.Expr { return &ast.Ident{Name: n} }
	bin := func(op ast.BinaryOp, x, y ast.Expr) ast.Expr { return &ast.BinaryExpr{Op: op, X: x, Y: y} }
	tests := []struct {
		e    ast.Expr
		want string
	}{
		{bin(ast.OpMul, bin(ast.OpAdd, id("a"), id("b")), id("c")), "(a + b) * c"},
		{bin(ast.OpSub, id("a"), bin(ast.OpSub, id("b"), id("c"))), "a - (b - c)"},
		{bin(ast.OpAdd, id("a"), bin(ast.OpMul, id("b"), id("c"))), "a + b * c"},
		{bin(ast.OpEq, id("a"), id("b")), "a === b"},
		{bin(ast.OpNotEq, id("a"), id("b")), "a !== b"},
		{&ast.UnaryExpr{Op: ast.OpNeg, X: &ast.UnaryExpr{Op: ast.OpNeg, X: id("x")}}, "-(-x)"},
		{&ast.UnaryExpr{Op: ast.OpNot, X: bin(ast.OpAnd, id("a"), id("b"))}, "!(a && b)"},
		{&ast.CondExpr{Cond: &ast.CondExpr{Cond: id("a"), Then: id("b"), Else: id("c")}, Then: id("d"), Else: id("e")}, "(a ? b : c) ? d : e"},
		{&ast.ArrowFunc{Params: []string{"x"}, Body: &ast.ObjectLit{Fields: []*ast.ObjectField{{Key: "a", Value: id("x")}}}}, "x => ({ a: x })"},
		{&ast.ArrowFunc{Params: nil, Body: &ast.CallExpr{Fun: id("go")}}, "() => go()"},
		{&ast.ObjectLit{Fields: []*ast.ObjectField{
			{Key: "class", Value: &ast.NumberLit{Raw: "1"}},
			{Key: "a-b", Value: &ast.NumberLit{Raw: "2"}},
			{Key: "ok", Value: id("ok"), Shorthand: true},
		}}, `{ "class": 1, "a-b": 2, ok }`},
		{&ast.StringLit{Value: "a\nb\t\"c\"\\"}, `"a\nb\t\"c\"\\"`},
		{&ast.MemberExpr{X: &ast.CallExpr{Fun: id("f")}, Name: "x"}, "f().x"},
		{&ast.CallExpr{Fun: &ast.ArrowFunc{Body: id("y")}}, "(() => y)()"},
		{nil, "undefined"},
	}
	for _, tt := range tests {
		if got := codegen.FormatExpr(tt.e, codegen.Options{}); got != tt.want {
			t.Errorf("FormatExpr = %s, want %s", got, tt.want)
		}
	}
}

func TestUnsupportedNodeIsCommented(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{nil}}
	if got := codegen.Generate(prog, codegen.Options{}); !strings.Contains(got, "/* lumen: unsupported") {
		t.Fatalf("expected unsupported marker, got %q", got)
	}
	var cgErr *codegen.CodeGenError
	if err := codegen.Check(prog); !errors.As(err, &cgErr) {
		t.Fatalf("Check = %v, want *CodeGenError", err)
	}
}

func TestCheckRejectsMalformedTrees(t *testing.T) {
	body := &ast.Element{Tag: "div", SelfClosing: true}
	tests := []struct {
		name string
		decl ast.Decl
		want string
	}{
		{"page props", &ast.Page{DeclBody: ast.DeclBody{Name: "P", Props: []*ast.PropDecl{{Name: "a"}}, Body: body}}, "page declares props"},
		{"no body", &ast.Component{DeclBody: ast.DeclBody{Name: "C"}}, "missing body"},
		{"self-closing with children", &ast.Component{DeclBody: ast.DeclBody{Name: "C", Body: &ast.Element{
			Tag: "br", SelfClosing: true, Children: []ast.Child{&ast.Text{Value: "x"}},
		}}}, "self-closing <br> has children"},
		{"setter collision", &ast.Component{DeclBody: ast.DeclBody{
			Name:  "C",
			Props: []*ast.PropDecl{{Name: "setX"}},
			State: []*ast.StateDecl{{Name: "x", Default: &ast.NumberLit{Raw: "0"}}},
			Body:  body,
		}}, `setter "setX" collides with prop`},
		{"keyword name", &ast.Component{DeclBody: ast.DeclBody{Name: "class", Body: body}}, `invalid name "class"`},
		{"runtime import as state", &ast.Component{DeclBody: ast.DeclBody{
			Name:  "C",
			State: []*ast.StateDecl{{Name: "useState", Default: &ast.NumberLit{Raw: "0"}}},
			Body:  body,
		}}, `state "useState" is not a valid binding`},
		{"missing default", &ast.Component{DeclBody: ast.DeclBody{
			Name:  "C",
			State: []*ast.StateDecl{{Name: "x"}},
			Body:  body,
		}}, `state "x" has no default`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := codegen.Check(&ast.Program{Decls: []ast.Decl{tt.decl}})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Check = %v, want %q", err, tt.want)
			}
			// Generate stays total even for trees Check rejects.
			_ = codegen.Generate(&ast.Program{Decls: []ast.Decl{tt.decl}}, codegen.Options{})
		})
	}
}

func virtual(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("snippet.lumen", []byte(src)))
}
