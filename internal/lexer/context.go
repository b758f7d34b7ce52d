package lexer

import (
	"slices"
	"strings"

	"lumen/internal/token"
)

// Mode selects the scanning rules for the next token.
type Mode uint8

const (
	// ModeExpr scans declarations, statements and expressions.
	ModeExpr Mode = iota
	// ModeTag scans inside "<name ...>" or "</name>".
	ModeTag
	// ModeChildren scans raw text between an opening and a closing tag.
	ModeChildren
)

func (m Mode) String() string {
	switch m {
	case ModeExpr:
		return "expr"
	case ModeTag:
		return "tag"
	case ModeChildren:
		return "children"
	default:
		return "mode(?)"
	}
}

type frame struct {
	mode    Mode
	closing bool   // ModeTag: "</name>"
	brace   bool   // ModeExpr: opened by '{' inside markup
	depth   uint32 // ModeExpr: nested '{' inside a brace frame
}

// Context is the explicit lexing state threaded between Scan calls.
// The zero value is expression position at the top of a file.
//
// Contexts are values: Scan never mutates the frames of the context it
// receives, so a caller may keep an old context and scan from it again.
type Context struct {
	frames []frame
	prev   token.Kind
}

// ChildrenContext returns a context positioned inside element children,
// as if right after the '>' of an opening tag.
func ChildrenContext() Context {
	return Context{frames: []frame{{mode: ModeChildren}}, prev: token.TagEnd}
}

// Mode reports the mode of the innermost frame.
func (c Context) Mode() Mode {
	if len(c.frames) == 0 {
		return ModeExpr
	}
	return c.frames[len(c.frames)-1].mode
}

// Depth is the number of open markup and brace frames.
func (c Context) Depth() int { return len(c.frames) }

// Prev is the kind of the last significant token scanned.
func (c Context) Prev() token.Kind { return c.prev }

// InClosingTag reports whether the scanner is inside "</name>".
func (c Context) InClosingTag() bool {
	if len(c.frames) == 0 {
		return false
	}
	f := c.frames[len(c.frames)-1]
	return f.mode == ModeTag && f.closing
}

func (c Context) String() string {
	var sb strings.Builder
	sb.WriteString("expr")
	for _, f := range c.frames {
		sb.WriteByte('/')
		switch {
		case f.mode == ModeTag && f.closing:
			sb.WriteString("closetag")
		case f.mode == ModeExpr && f.brace:
			sb.WriteString("brace")
		default:
			sb.WriteString(f.mode.String())
		}
	}
	return sb.String()
}

func (c Context) top() (frame, bool) {
	if len(c.frames) == 0 {
		return frame{}, false
	}
	return c.frames[len(c.frames)-1], true
}

func (c Context) push(f frame) Context {
	c.frames = append(slices.Clip(c.frames), f)
	return c
}

func (c Context) pop() Context {
	if len(c.frames) > 0 {
		c.frames = c.frames[:len(c.frames)-1]
	}
	return c
}

func (c Context) replaceTop(f frame) Context {
	if len(c.frames) == 0 {
		return c
	}
	c.frames = slices.Clone(c.frames)
	c.frames[len(c.frames)-1] = f
	return c
}
