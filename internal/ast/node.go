package ast

import "lumen/internal/source"

// Node is any syntax tree node.
type Node interface {
	Pos() source.Span
}

// Loc carries the source span of a node.
type Loc struct {
	Span source.Span
}

// Pos returns the span of the node.
func (l Loc) Pos() source.Span { return l.Span }

// At returns a Loc for sp.
func At(sp source.Span) Loc { return Loc{Span: sp} }
