package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lumen/internal/ast"
	"lumen/internal/source"
)

// ASTNodeOutput is one node of the JSON AST dump.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON writes prog as a JSON tree.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(programJSON(prog))
}

func programJSON(prog *ast.Program) ASTNodeOutput {
	out := ASTNodeOutput{Type: "Program", Span: prog.Pos()}
	for _, im := range prog.Imports {
		fields := map[string]any{"from": im.From}
		if im.Default != "" {
			fields["default"] = im.Default
		}
		if len(im.Names) > 0 {
			fields["names"] = im.Names
		}
		out.Children = append(out.Children, ASTNodeOutput{Type: "Import", Span: im.Pos(), Fields: fields})
	}
	for _, d := range prog.Decls {
		if d == nil {
			continue
		}
		out.Children = append(out.Children, declJSON(d))
	}
	return out
}

func declJSON(d ast.Decl) ASTNodeOutput {
	h := d.Header()
	out := ASTNodeOutput{
		Type:   d.Kind().String(),
		Span:   d.Pos(),
		Text:   h.Name,
		Fields: map[string]any{"exported": h.Exported},
	}
	for _, p := range h.Props {
		n := ASTNodeOutput{
			Type:   "Prop",
			Span:   p.Pos(),
			Text:   p.Name,
			Fields: map[string]any{"type": p.Type.String(), "optional": p.Optional},
		}
		if p.Default != nil {
			n.Fields["default"] = exprString(p.Default)
		}
		out.Children = append(out.Children, n)
	}
	for _, s := range h.State {
		out.Children = append(out.Children, ASTNodeOutput{
			Type:   "State",
			Span:   s.Pos(),
			Text:   s.Name,
			Fields: map[string]any{"type": s.Type.String(), "default": exprString(s.Default)},
		})
	}
	for _, ev := range h.Events {
		n := ASTNodeOutput{
			Type:   "Event",
			Span:   ev.Pos(),
			Text:   ev.Name,
			Fields: map[string]any{"params": ev.Params},
		}
		for _, s := range ev.Body {
			n.Children = append(n.Children, stmtJSON(s))
		}
		out.Children = append(out.Children, n)
	}
	if h.Body != nil {
		out.Children = append(out.Children, elementJSON(h.Body))
	}
	return out
}

func stmtJSON(s ast.Stmt) ASTNodeOutput {
	out := ASTNodeOutput{Span: s.Pos()}
	switch s := s.(type) {
	case *ast.ExprStmt:
		out.Type, out.Text = "ExprStmt", exprString(s.X)
	case *ast.AssignStmt:
		out.Type = "Assign"
		out.Fields = map[string]any{"target": exprString(s.Target), "op": s.Op.String(), "value": exprString(s.Value)}
	case *ast.LetStmt:
		out.Type, out.Text = "Let", s.Name
		out.Fields = map[string]any{"value": exprString(s.Value)}
	case *ast.IfStmt:
		out.Type, out.Text = "If", exprString(s.Cond)
		then := ASTNodeOutput{Type: "Then", Span: s.Pos()}
		for _, c := range s.Then {
			then.Children = append(then.Children, stmtJSON(c))
		}
		out.Children = append(out.Children, then)
		if len(s.Else) > 0 {
			els := ASTNodeOutput{Type: "Else", Span: s.Pos()}
			for _, c := range s.Else {
				els.Children = append(els.Children, stmtJSON(c))
			}
			out.Children = append(out.Children, els)
		}
	case *ast.ForStmt:
		out.Type, out.Text = "For", s.Var
		out.Fields = map[string]any{"iter": exprString(s.Iter)}
		for _, c := range s.Body {
			out.Children = append(out.Children, stmtJSON(c))
		}
	case *ast.ReturnStmt:
		out.Type = "Return"
		if s.Value != nil {
			out.Text = exprString(s.Value)
		}
	default:
		out.Type = fmt.Sprintf("%T", s)
	}
	return out
}

func elementJSON(el *ast.Element) ASTNodeOutput {
	out := ASTNodeOutput{Type: "Element", Span: el.Pos(), Text: el.Tag}
	if el.SelfClosing {
		out.Fields = map[string]any{"self_closing": true}
	}
	for _, a := range el.Attrs {
		out.Children = append(out.Children, ASTNodeOutput{
			Type: "Attribute",
			Span: a.Pos(),
			Text: a.Name,
			Fields: map[string]any{
				"value": attrLabel(a),
			},
		})
	}
	for _, c := range el.Children {
		switch c := c.(type) {
		case *ast.Element:
			out.Children = append(out.Children, elementJSON(c))
		case *ast.Text:
			out.Children = append(out.Children, ASTNodeOutput{Type: "Text", Span: c.Pos(), Text: c.Value})
		case *ast.ExprContainer:
			out.Children = append(out.Children, ASTNodeOutput{Type: "ExprContainer", Span: c.Pos(), Text: exprString(c.X)})
		}
	}
	return out
}
