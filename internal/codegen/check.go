package codegen

import (
	"fmt"

	"lumen/internal/ast"
)

// CodeGenError reports a tree the parser could never have produced.
type CodeGenError struct {
	Decl      string // empty for program-level problems
	Msg       string
	Collision bool // two generated names clash
}

func (e *CodeGenError) Error() string {
	if e.Decl == "" {
		return "codegen: " + e.Msg
	}
	return fmt.Sprintf("codegen: %s: %s", e.Decl, e.Msg)
}

// Check validates the invariants Generate relies on for well-formed
// output. The parser enforces the same rules while building the tree, so
// only hand-built trees can fail.
func Check(prog *ast.Program) error {
	if prog == nil {
		return &CodeGenError{Msg: "nil program"}
	}
	decls := make(map[string]struct{}, len(prog.Decls))
	for _, d := range prog.Decls {
		if d == nil {
			return &CodeGenError{Msg: "nil declaration"}
		}
		h := d.Header()
		if _, dup := decls[h.Name]; dup {
			return &CodeGenError{Decl: h.Name, Msg: "duplicate declaration", Collision: true}
		}
		decls[h.Name] = struct{}{}
		if err := checkDecl(d); err != nil {
			return err
		}
	}
	return nil
}

func checkDecl(d ast.Decl) error {
	h := d.Header()
	fail := func(format string, args ...any) *CodeGenError {
		return &CodeGenError{Decl: h.Name, Msg: fmt.Sprintf(format, args...)}
	}

	if !isJSIdent(h.Name) || ast.IsReservedName(h.Name) {
		return fail("invalid name %q", h.Name)
	}
	if d.Kind() == ast.DeclPage && len(h.Props) > 0 {
		return fail("page declares props")
	}
	if h.Body == nil {
		return fail("missing body")
	}

	names := make(map[string]string)
	claim := func(name, what string) error {
		if !isJSIdent(name) || ast.IsReservedName(name) {
			return fail("%s %q is not a valid binding", what, name)
		}
		if prev, dup := names[name]; dup {
			err := fail("%s %q collides with %s", what, name, prev)
			err.Collision = true
			return err
		}
		names[name] = what
		return nil
	}
	if d.Kind() == ast.DeclLayout {
		_ = claim(ast.ChildrenProp, "children prop")
	}
	for _, p := range h.Props {
		if err := claim(p.Name, "prop"); err != nil {
			return err
		}
	}
	for _, s := range h.State {
		if s.Default == nil {
			return fail("state %q has no default", s.Name)
		}
		if err := claim(s.Name, "state"); err != nil {
			return err
		}
	}
	for _, s := range h.State {
		if err := claim(ast.SetterName(s.Name), "setter"); err != nil {
			return err
		}
	}
	for _, e := range h.Events {
		if err := claim(e.Name, "event"); err != nil {
			return err
		}
	}

	var err error
	ast.Inspect(h.Body, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		switch n := n.(type) {
		case *ast.Element:
			switch {
			case n.Tag == "":
				err = fail("element without tag")
			case n.SelfClosing && len(n.Children) > 0:
				err = fail("self-closing <%s> has children", n.Tag)
			}
		case *ast.Attribute:
			if n.Value == nil {
				err = fail("attribute %q has no value", n.Name)
			}
		case *ast.ExprContainer:
			if n.X == nil {
				err = fail("empty expression container")
			}
		}
		return err == nil
	})
	return err
}
