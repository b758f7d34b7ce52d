package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"component": KwComponent,
		"page":      KwPage,
		"layout":    KwLayout,
		"props":     KwProps,
		"state":     KwState,
		"event":     KwEvent,
		"import":    KwImport,
		"export":    KwExport,
		"from":      KwFrom,
		"if":        KwIf,
		"else":      KwElse,
		"for":       KwFor,
		"in":        KwIn,
		"let":       KwLet,
		"return":    KwReturn,
		"true":      KwTrue,
		"false":     KwFalse,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Component", "PAGE", "Props", // case-sensitive
		"string", "number", "boolean", "array", "object", // type names stay identifiers
		"children", "className", "div",
	}
	for _, s := range notKw {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want !ok", s, k)
		}
	}
}

func TestDescribeKeyword(t *testing.T) {
	if got := KwProps.Describe(); got != "'props'" {
		t.Fatalf("KwProps.Describe() = %q", got)
	}
	if got := TagClose.Describe(); got != "'</'" {
		t.Fatalf("TagClose.Describe() = %q", got)
	}
	if got := Ident.Describe(); got != "identifier" {
		t.Fatalf("Ident.Describe() = %q", got)
	}
}
