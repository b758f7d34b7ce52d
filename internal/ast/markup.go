package ast

// Child is an element child: *Element, *Text or *ExprContainer.
type Child interface {
	Node
	childNode()
}

// Element is a markup element. SelfClosing elements have no children.
type Element struct {
	Loc
	Tag         string
	Attrs       []*Attribute
	Children    []Child
	SelfClosing bool
}

// Attr returns the attribute called name, or nil.
func (e *Element) Attr(name string) *Attribute {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Attribute is name="text", name={expr} or a bare name.
// Value is *StringLit, *BoolLit{Implicit: true} or any Expr.
type Attribute struct {
	Loc
	Name  string
	Value Expr
}

// Text is a run of markup text, kept verbatim.
type Text struct {
	Loc
	Value string
}

// ExprContainer is a `{expr}` child.
type ExprContainer struct {
	Loc
	X Expr
}

func (*Element) childNode()       {}
func (*Text) childNode()          {}
func (*ExprContainer) childNode() {}
