package ast_test

import (
	"slices"
	"testing"

	"lumen/internal/ast"
)

func TestInspectVisitsInSourceOrder(t *testing.T) {
	body := &ast.Element{
		Tag: "div",
		Attrs: []*ast.Attribute{
			{Name: "id", Value: &ast.StringLit{Value: "root"}},
		},
		Children: []ast.Child{
			&ast.Text{Value: "n = "},
			&ast.ExprContainer{X: &ast.Ident{Name: "count"}},
		},
	}
	page := &ast.Page{DeclBody: ast.DeclBody{
		Name:  "Home",
		State: []*ast.StateDecl{{Name: "count", Type: ast.TypeRef{Name: "number"}, Default: &ast.NumberLit{Raw: "0"}}},
		Events: []*ast.EventDecl{{
			Name: "inc",
			Body: []ast.Stmt{&ast.AssignStmt{
				Target: &ast.Ident{Name: "count"},
				Op:     ast.AddAssign,
				Value:  &ast.NumberLit{Raw: "1"},
			}},
		}},
		Body: body,
	}}
	prog := &ast.Program{Decls: []ast.Decl{page}}

	var idents []string
	var count int
	ast.Inspect(prog, func(n ast.Node) bool {
		count++
		if id, ok := n.(*ast.Ident); ok {
			idents = append(idents, id.Name)
		}
		return true
	})
	if !slices.Equal(idents, []string{"count", "count"}) {
		t.Fatalf("idents = %v", idents)
	}
	// program, page, state, 0, event, assign, count, 1, div, attr, "root", text, container, count
	if count != 14 {
		t.Fatalf("visited %d nodes, want 14", count)
	}
}

func TestInspectPrune(t *testing.T) {
	el := &ast.Element{Tag: "ul", Children: []ast.Child{
		&ast.Element{Tag: "li", Children: []ast.Child{&ast.Text{Value: "x"}}},
	}}
	var tags []string
	ast.Inspect(el, func(n ast.Node) bool {
		if e, ok := n.(*ast.Element); ok {
			tags = append(tags, e.Tag)
			return e.Tag != "li"
		}
		if _, ok := n.(*ast.Text); ok {
			t.Fatal("pruned subtree must not be visited")
		}
		return true
	})
	if !slices.Equal(tags, []string{"ul", "li"}) {
		t.Fatalf("tags = %v", tags)
	}
}

func TestIsLiteral(t *testing.T) {
	tests := []struct {
		name string
		e    ast.Expr
		want bool
	}{
		{"string", &ast.StringLit{Value: "a"}, true},
		{"negative", &ast.UnaryExpr{Op: ast.OpNeg, X: &ast.NumberLit{Raw: "1"}}, true},
		{"not", &ast.UnaryExpr{Op: ast.OpNot, X: &ast.BoolLit{Value: true}}, false},
		{"array", &ast.ArrayLit{Elems: []ast.Expr{&ast.NumberLit{Raw: "1"}, &ast.StringLit{Value: "b"}}}, true},
		{"array with ident", &ast.ArrayLit{Elems: []ast.Expr{&ast.Ident{Name: "x"}}}, false},
		{"object", &ast.ObjectLit{Fields: []*ast.ObjectField{{Key: "k", Value: &ast.BoolLit{}}}}, true},
		{"shorthand", &ast.ObjectLit{Fields: []*ast.ObjectField{{Key: "k", Value: &ast.Ident{Name: "k"}, Shorthand: true}}}, false},
		{"call", &ast.CallExpr{Fun: &ast.Ident{Name: "f"}}, false},
	}
	for _, tt := range tests {
		if got := ast.IsLiteral(tt.e); got != tt.want {
			t.Errorf("%s: IsLiteral = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDeclKinds(t *testing.T) {
	decls := []ast.Decl{
		&ast.Component{DeclBody: ast.DeclBody{Name: "A"}},
		&ast.Page{DeclBody: ast.DeclBody{Name: "B"}},
		&ast.Layout{DeclBody: ast.DeclBody{Name: "C"}},
	}
	want := []string{"component", "page", "layout"}
	for i, d := range decls {
		if got := d.Kind().String(); got != want[i] {
			t.Fatalf("kind %d = %q, want %q", i, got, want[i])
		}
	}
	prog := &ast.Program{Decls: decls}
	if prog.Decl("B") != decls[1] || prog.Decl("Z") != nil {
		t.Fatal("Program.Decl lookup failed")
	}
}

func TestTypeRef(t *testing.T) {
	tr := ast.TypeRef{Name: "string", Array: true}
	if tr.String() != "string[]" || tr.Elem().String() != "string" {
		t.Fatalf("TypeRef: %s / %s", tr, tr.Elem())
	}
	if !ast.IsKnownType("node") || ast.IsKnownType("int") {
		t.Fatal("IsKnownType mismatch")
	}
}
