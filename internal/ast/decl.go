package ast

// DeclKind distinguishes component, page and layout declarations.
type DeclKind uint8

const (
	DeclComponent DeclKind = iota
	DeclPage
	DeclLayout
)

func (k DeclKind) String() string {
	switch k {
	case DeclComponent:
		return "component"
	case DeclPage:
		return "page"
	case DeclLayout:
		return "layout"
	default:
		return "decl(?)"
	}
}

// Program is one parsed source file.
type Program struct {
	Loc
	Imports []*Import
	Decls   []Decl
}

// Decl returns the declaration called name, or nil.
func (p *Program) Decl(name string) Decl {
	for _, d := range p.Decls {
		if d.Header().Name == name {
			return d
		}
	}
	return nil
}

// Import is `import "m"`, `import A from "m"` or `import { A, B } from "m"`.
// A default and a named list may appear together: `import A, { B } from "m"`.
type Import struct {
	Loc
	Default string
	Names   []string
	From    string
}

// Decl is a top-level declaration: *Component, *Page or *Layout.
type Decl interface {
	Node
	Kind() DeclKind
	Header() *DeclBody
	declNode()
}

// DeclBody is shared by every declaration kind.
type DeclBody struct {
	Loc
	Name     string
	Exported bool
	Props    []*PropDecl
	State    []*StateDecl
	Events   []*EventDecl
	Body     *Element
}

// Header returns the shared part of a declaration.
func (d *DeclBody) Header() *DeclBody { return d }

func (*DeclBody) declNode() {}

type (
	Component struct{ DeclBody }
	Page      struct{ DeclBody }
	// Layout receives a synthesized children prop.
	Layout struct{ DeclBody }
)

func (*Component) Kind() DeclKind { return DeclComponent }
func (*Page) Kind() DeclKind      { return DeclPage }
func (*Layout) Kind() DeclKind    { return DeclLayout }

// ChildrenProp is the prop name synthesized for layouts.
const ChildrenProp = "children"

// PropDecl is one entry of a props block.
type PropDecl struct {
	Loc
	Name     string
	Type     TypeRef
	Optional bool
	Default  Expr // nil when absent
}

// StateDecl is one entry of a state block. Default is always set.
type StateDecl struct {
	Loc
	Name    string
	Type    TypeRef
	Default Expr
}

// EventDecl is `event name(params) { body }`.
type EventDecl struct {
	Loc
	Name   string
	Params []string
	Body   []Stmt
}
