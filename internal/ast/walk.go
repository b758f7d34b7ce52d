package ast

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for every node. If f returns false, the children of that node
// are skipped. Nil nodes are not visited.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		for _, im := range n.Imports {
			Inspect(im, f)
		}
		for _, d := range n.Decls {
			Inspect(d, f)
		}
	case *Component:
		inspectDecl(&n.DeclBody, f)
	case *Page:
		inspectDecl(&n.DeclBody, f)
	case *Layout:
		inspectDecl(&n.DeclBody, f)
	case *PropDecl:
		inspectExpr(n.Default, f)
	case *StateDecl:
		inspectExpr(n.Default, f)
	case *EventDecl:
		inspectStmts(n.Body, f)
	case *Element:
		for _, a := range n.Attrs {
			Inspect(a, f)
		}
		for _, c := range n.Children {
			Inspect(c, f)
		}
	case *Attribute:
		inspectExpr(n.Value, f)
	case *ExprContainer:
		inspectExpr(n.X, f)
	case *BinaryExpr:
		inspectExpr(n.X, f)
		inspectExpr(n.Y, f)
	case *UnaryExpr:
		inspectExpr(n.X, f)
	case *CallExpr:
		inspectExpr(n.Fun, f)
		for _, a := range n.Args {
			inspectExpr(a, f)
		}
	case *MemberExpr:
		inspectExpr(n.X, f)
	case *IndexExpr:
		inspectExpr(n.X, f)
		inspectExpr(n.Index, f)
	case *ArrayLit:
		for _, e := range n.Elems {
			inspectExpr(e, f)
		}
	case *ObjectLit:
		for _, fl := range n.Fields {
			Inspect(fl, f)
		}
	case *ObjectField:
		inspectExpr(n.Value, f)
	case *ArrowFunc:
		inspectExpr(n.Body, f)
		inspectStmts(n.Block, f)
	case *CondExpr:
		inspectExpr(n.Cond, f)
		inspectExpr(n.Then, f)
		inspectExpr(n.Else, f)
	case *ElementExpr:
		if n.Elem != nil {
			Inspect(n.Elem, f)
		}
	case *ExprStmt:
		inspectExpr(n.X, f)
	case *AssignStmt:
		inspectExpr(n.Target, f)
		inspectExpr(n.Value, f)
	case *LetStmt:
		inspectExpr(n.Value, f)
	case *IfStmt:
		inspectExpr(n.Cond, f)
		inspectStmts(n.Then, f)
		inspectStmts(n.Else, f)
	case *ForStmt:
		inspectExpr(n.Iter, f)
		inspectStmts(n.Body, f)
	case *ReturnStmt:
		inspectExpr(n.Value, f)
	}
}

func inspectDecl(d *DeclBody, f func(Node) bool) {
	for _, p := range d.Props {
		Inspect(p, f)
	}
	for _, s := range d.State {
		Inspect(s, f)
	}
	for _, e := range d.Events {
		Inspect(e, f)
	}
	if d.Body != nil {
		Inspect(d.Body, f)
	}
}

// Typed nils inside interfaces would reach f otherwise.
func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectStmts(list []Stmt, f func(Node) bool) {
	for _, s := range list {
		if s != nil {
			Inspect(s, f)
		}
	}
}
