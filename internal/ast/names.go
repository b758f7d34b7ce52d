package ast

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// jsKeywords are the JavaScript reserved words that are not already
// keywords of the DSL.
var jsKeywords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "export": {},
	"extends": {}, "finally": {}, "for": {}, "function": {}, "if": {}, "import": {},
	"in": {}, "instanceof": {}, "new": {}, "return": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {}, "let": {}, "static": {}, "enum": {},
	"await": {}, "null": {}, "true": {}, "false": {},
}

// RuntimeImports are the names every generated module imports from the
// runtime.
var RuntimeImports = []string{"useState"}

// IsJSKeyword reports whether name is reserved in JavaScript.
func IsJSKeyword(name string) bool {
	_, ok := jsKeywords[name]
	return ok
}

// IsReservedName reports whether name cannot be declared in a source
// file: it is a JavaScript keyword or shadows a runtime import.
func IsReservedName(name string) bool {
	if IsJSKeyword(name) {
		return true
	}
	for _, r := range RuntimeImports {
		if r == name {
			return true
		}
	}
	return false
}

// SetterName is the state setter generated for a state entry:
// "count" becomes "setCount".
func SetterName(state string) string {
	return "set" + cases.Title(language.Und, cases.NoLower).String(state)
}
