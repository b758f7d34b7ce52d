package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"lumen/internal/ast"
	"lumen/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func (n *treeNode) add(label string, children ...*treeNode) *treeNode {
	c := &treeNode{label: label, children: children}
	n.children = append(n.children, c)
	return c
}

// FormatASTTree prints prog as an indented tree:
//
//	Program (span: 1:1-3:2)
//	└─ component Counter (span: 1:1-3:2)
//	   ├─ State
//	   │  └─ count: number = 0
//	   └─ <div>
//	      └─ {count}
func FormatASTTree(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	root := buildProgramTree(prog, fs)
	var b strings.Builder
	b.WriteString(root.label)
	b.WriteByte('\n')
	renderChildren(&b, root, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func renderChildren(b *strings.Builder, n *treeNode, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(c.label)
		b.WriteByte('\n')
		renderChildren(b, c, prefix+next)
	}
}

func buildProgramTree(prog *ast.Program, fs *source.FileSet) *treeNode {
	root := &treeNode{label: fmt.Sprintf("Program (span: %s)", formatSpan(prog.Pos(), fs))}
	for _, im := range prog.Imports {
		root.add(importLabel(im))
	}
	for _, d := range prog.Decls {
		if d == nil {
			root.add("<nil decl>")
			continue
		}
		root.children = append(root.children, declTree(d, fs))
	}
	return root
}

func importLabel(im *ast.Import) string {
	var clause []string
	if im.Default != "" {
		clause = append(clause, im.Default)
	}
	if len(im.Names) > 0 {
		clause = append(clause, "{ "+strings.Join(im.Names, ", ")+" }")
	}
	if len(clause) == 0 {
		return "import " + strconv.Quote(im.From)
	}
	return "import " + strings.Join(clause, ", ") + " from " + strconv.Quote(im.From)
}

func declTree(d ast.Decl, fs *source.FileSet) *treeNode {
	h := d.Header()
	label := fmt.Sprintf("%s %s", d.Kind(), h.Name)
	if h.Exported {
		label = "export " + label
	}
	node := &treeNode{label: fmt.Sprintf("%s (span: %s)", label, formatSpan(d.Pos(), fs))}

	if len(h.Props) > 0 {
		props := node.add("Props")
		for _, p := range h.Props {
			name := p.Name
			if p.Optional {
				name += "?"
			}
			l := name + ": " + p.Type.String()
			if p.Default != nil {
				l += " = " + exprString(p.Default)
			}
			props.add(l)
		}
	}
	if len(h.State) > 0 {
		state := node.add("State")
		for _, s := range h.State {
			state.add(s.Name + ": " + s.Type.String() + " = " + exprString(s.Default))
		}
	}
	for _, ev := range h.Events {
		node.add(fmt.Sprintf("Event %s(%s)", ev.Name, strings.Join(ev.Params, ", ")), stmtTrees(ev.Body)...)
	}
	if h.Body != nil {
		node.children = append(node.children, elementTree(h.Body))
	} else {
		node.add("Body: <none>")
	}
	return node
}

func stmtTrees(list []ast.Stmt) []*treeNode {
	out := make([]*treeNode, 0, len(list))
	for _, s := range list {
		out = append(out, stmtTree(s))
	}
	return out
}

func stmtTree(s ast.Stmt) *treeNode {
	switch s := s.(type) {
	case *ast.ExprStmt:
		return &treeNode{label: "Expr " + exprString(s.X)}
	case *ast.AssignStmt:
		return &treeNode{label: fmt.Sprintf("Assign %s %s %s", exprString(s.Target), s.Op, exprString(s.Value))}
	case *ast.LetStmt:
		return &treeNode{label: fmt.Sprintf("Let %s = %s", s.Name, exprString(s.Value))}
	case *ast.IfStmt:
		n := &treeNode{label: "If " + exprString(s.Cond)}
		n.add("Then", stmtTrees(s.Then)...)
		if len(s.Else) > 0 {
			n.add("Else", stmtTrees(s.Else)...)
		}
		return n
	case *ast.ForStmt:
		return &treeNode{label: fmt.Sprintf("For %s in %s", s.Var, exprString(s.Iter)), children: stmtTrees(s.Body)}
	case *ast.ReturnStmt:
		if s.Value == nil {
			return &treeNode{label: "Return"}
		}
		return &treeNode{label: "Return " + exprString(s.Value)}
	default:
		return &treeNode{label: fmt.Sprintf("<%T>", s)}
	}
}

func elementTree(el *ast.Element) *treeNode {
	label := "<" + el.Tag + ">"
	if el.SelfClosing {
		label = "<" + el.Tag + " />"
	}
	node := &treeNode{label: label}
	for _, a := range el.Attrs {
		node.add(attrLabel(a))
	}
	for _, c := range el.Children {
		switch c := c.(type) {
		case *ast.Element:
			node.children = append(node.children, elementTree(c))
		case *ast.Text:
			node.add("Text " + strconv.Quote(c.Value))
		case *ast.ExprContainer:
			n := node.add("{" + exprString(c.X) + "}")
			if ee, ok := c.X.(*ast.ElementExpr); ok && ee.Elem != nil {
				n.children = append(n.children, elementTree(ee.Elem))
			}
		}
	}
	return node
}

func attrLabel(a *ast.Attribute) string {
	switch v := a.Value.(type) {
	case *ast.BoolLit:
		if v.Implicit {
			return "@" + a.Name
		}
	case *ast.StringLit:
		return "@" + a.Name + "=" + strconv.Quote(v.Value)
	}
	return "@" + a.Name + "={" + exprString(a.Value) + "}"
}
