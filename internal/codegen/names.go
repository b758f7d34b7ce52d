package codegen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"lumen/internal/ast"
)

// jsQuote renders s as a double-quoted JavaScript string literal.
func jsQuote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\x%02x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isJSIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// objectKey renders an object literal key. Keywords are quoted for older
// engines that reject them as bare keys.
func objectKey(k string) string {
	if !ast.IsJSKeyword(k) && isJSIdent(k) {
		return k
	}
	return jsQuote(k)
}

// jsxAttrName maps DOM attribute names to their React spelling on
// intrinsic elements.
func jsxAttrName(tag, name string) string {
	if !isIntrinsic(tag) {
		return name
	}
	switch name {
	case "class":
		return "className"
	case "for":
		return "htmlFor"
	default:
		return name
	}
}

// isIntrinsic reports whether tag names a host element (lowercase first
// letter, no member access) rather than a component.
func isIntrinsic(tag string) bool {
	r, _ := utf8.DecodeRuneInString(tag)
	return unicode.IsLower(r) && !strings.Contains(tag, ".")
}
