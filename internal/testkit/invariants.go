// Package testkit holds structural checks shared by parser, driver and
// fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/ast"
	"lumen/internal/source"
)

// CheckSpanInvariants verifies the spans of a parsed program:
//  1. every span points into sf and lies within its content
//  2. every node's span is contained in its parent's span
//  3. declarations appear in source order without overlapping
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	check := func(sp source.Span) error {
		if sp.File != sf.ID {
			return fmt.Errorf("span %v points to file %d, want %d", sp, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("span %v is outside content of length %d", sp, lenContent)
		}
		return nil
	}
	if err := check(prog.Pos()); err != nil {
		return fmt.Errorf("program: %w", err)
	}

	var prev source.Span
	for i, d := range prog.Decls {
		sp := d.Pos()
		if sp.Empty() {
			return fmt.Errorf("declaration %s has an empty span", d.Header().Name)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("declaration %s at %v overlaps the previous one at %v", d.Header().Name, sp, prev)
		}
		prev = sp
	}

	var walk func(parent ast.Node) error
	walk = func(parent ast.Node) error {
		outer := parent.Pos()
		var failure error
		ast.Inspect(parent, func(n ast.Node) bool {
			if failure != nil {
				return false
			}
			if n == parent {
				return true
			}
			sp := n.Pos()
			if lit, ok := n.(*ast.BoolLit); ok && lit.Implicit && sp.Empty() {
				return false
			}
			if err := check(sp); err != nil {
				failure = fmt.Errorf("%T: %w", n, err)
				return false
			}
			if sp.Start < outer.Start || sp.End > outer.End {
				failure = fmt.Errorf("%T span %v is outside its parent %T span %v", n, sp, parent, outer)
				return false
			}
			failure = walk(n)
			return false
		})
		return failure
	}
	return walk(prog)
}

// CheckStructure verifies tree shape rules the generator relies on:
// self-closing elements have no children, every declaration has a body,
// and prop, state and event names are unique within a declaration.
func CheckStructure(prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	for _, d := range prog.Decls {
		h := d.Header()
		if h.Body == nil {
			return fmt.Errorf("%s %s has no body", d.Kind(), h.Name)
		}
		seen := make(map[string]struct{})
		add := func(name string) error {
			if _, dup := seen[name]; dup {
				return fmt.Errorf("%s %s declares %q twice", d.Kind(), h.Name, name)
			}
			seen[name] = struct{}{}
			return nil
		}
		for _, p := range h.Props {
			if err := add(p.Name); err != nil {
				return err
			}
		}
		for _, s := range h.State {
			if err := add(s.Name); err != nil {
				return err
			}
		}
		for _, e := range h.Events {
			if err := add(e.Name); err != nil {
				return err
			}
		}
	}

	var failure error
	ast.Inspect(prog, func(n ast.Node) bool {
		if failure != nil {
			return false
		}
		if el, ok := n.(*ast.Element); ok && el.SelfClosing && len(el.Children) > 0 {
			failure = fmt.Errorf("self-closing <%s> has %d children", el.Tag, len(el.Children))
		}
		return failure == nil
	})
	return failure
}
