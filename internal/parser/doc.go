// Package parser turns a token slice into an *ast.Program.
//
// The parser is recursive descent and fails fast: the first grammar
// violation is returned as a *ParseError and no partial tree is produced.
// Checks that need the whole declaration (duplicate names, default value
// types, tag matching) run while parsing, so every tree it returns is
// well-formed.
package parser
