package codegen

import (
	"strings"

	"lumen/internal/ast"
)

// element writes el on its own lines at the current indentation.
//
// Children go one per line when the element holds only elements and
// expressions. Any non-blank text child keeps the whole element on one
// line, since line breaks next to text would change the rendered spaces.
func (g *generator) element(el *ast.Element) {
	if el == nil {
		g.writeln("null")
		return
	}
	children := cleanChildren(el.Children)
	if el.SelfClosing || len(children) == 0 || !blockLayout(children) {
		g.writeln(g.inlineElement(el))
		return
	}

	g.writeln(g.openTag(el))
	g.indent++
	for _, c := range children {
		switch c := c.(type) {
		case *ast.Element:
			g.element(c)
		default:
			g.writeln(g.inlineChild(c))
		}
	}
	g.indent--
	g.writeln("</" + el.Tag + ">")
}

// blockLayout reports whether children can be placed on separate lines.
func blockLayout(children []ast.Child) bool {
	hasElement := false
	for _, c := range children {
		switch c.(type) {
		case *ast.Text:
			return false
		case *ast.Element:
			hasElement = true
		}
	}
	return hasElement
}

func (g *generator) inlineElement(el *ast.Element) string {
	if el.SelfClosing {
		return g.openTagWith(el, " />")
	}
	var sb strings.Builder
	sb.WriteString(g.openTag(el))
	for _, c := range cleanChildren(el.Children) {
		sb.WriteString(g.inlineChild(c))
	}
	sb.WriteString("</" + el.Tag + ">")
	return sb.String()
}

func (g *generator) inlineChild(c ast.Child) string {
	switch c := c.(type) {
	case *ast.Text:
		return escapeJSXText(c.Value)
	case *ast.ExprContainer:
		return "{" + g.expr(c.X, precLowest) + "}"
	case *ast.Element:
		return g.inlineElement(c)
	default:
		return "{" + unsupported(c) + "}"
	}
}

func (g *generator) openTag(el *ast.Element) string {
	return g.openTagWith(el, ">")
}

func (g *generator) openTagWith(el *ast.Element, end string) string {
	var sb strings.Builder
	sb.WriteString("<" + el.Tag)
	for _, a := range el.Attrs {
		if a == nil {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(g.attribute(el.Tag, a))
	}
	sb.WriteString(end)
	return sb.String()
}

func (g *generator) attribute(tag string, a *ast.Attribute) string {
	name := jsxAttrName(tag, a.Name)
	switch v := a.Value.(type) {
	case nil:
		return name
	case *ast.BoolLit:
		if v.Implicit && v.Value {
			return name
		}
	case *ast.StringLit:
		if jsxStringSafe(v.Value) {
			return name + `="` + v.Value + `"`
		}
	}
	return name + "={" + g.expr(a.Value, precLowest) + "}"
}

// jsxStringSafe reports whether s can sit verbatim between the double
// quotes of a JSX attribute.
func jsxStringSafe(s string) bool {
	for _, r := range s {
		if r == '"' || r == '\\' || r < 0x20 {
			return false
		}
	}
	return true
}

// cleanChildren applies JSX whitespace rules to text children and drops
// those that render nothing.
func cleanChildren(children []ast.Child) []ast.Child {
	out := make([]ast.Child, 0, len(children))
	for _, c := range children {
		switch c := c.(type) {
		case nil:
			continue
		case *ast.Text:
			if v := cleanJSXText(c.Value); v != "" {
				out = append(out, &ast.Text{Loc: c.Loc, Value: v})
			}
		case *ast.ExprContainer:
			if c.X != nil {
				out = append(out, c)
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

// cleanJSXText collapses text the way JSX does: lines are trimmed at the
// line breaks, blank lines vanish and the remaining lines join with one
// space. Text without a line break is kept as is.
func cleanJSXText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	lastNonEmpty := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lastNonEmpty = i
		}
	}

	var sb strings.Builder
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		if i > 0 {
			line = strings.TrimLeft(line, " ")
		}
		if i < len(lines)-1 {
			line = strings.TrimRight(line, " ")
		}
		if line == "" {
			continue
		}
		sb.WriteString(line)
		if i != lastNonEmpty {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

var jsxTextEscaper = strings.NewReplacer(">", "&gt;", "}", "&#125;", "<", "&lt;", "{", "&#123;")

func escapeJSXText(s string) string {
	return jsxTextEscaper.Replace(s)
}
