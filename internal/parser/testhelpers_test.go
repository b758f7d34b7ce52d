package parser_test

import (
	"errors"
	"strings"
	"testing"

	"lumen/internal/ast"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
	"lumen/internal/token"
)

func tokens(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lumen", []byte(src))
	toks, err := lexer.Tokenize(fs.Get(id))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.ParseProgram(tokens(t, src))
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	return prog
}

func parseErr(t *testing.T, src string) *parser.ParseError {
	t.Helper()
	prog, err := parser.ParseProgram(tokens(t, src))
	if err == nil {
		t.Fatalf("ParseProgram(%q) succeeded, want error", src)
	}
	if prog != nil {
		t.Fatalf("partial program returned with error")
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	return perr
}

func expectMsg(t *testing.T, perr *parser.ParseError, substr string) {
	t.Helper()
	if !strings.Contains(perr.Error(), substr) {
		t.Fatalf("error %q does not mention %q", perr.Error(), substr)
	}
}

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := parser.ParseExpr(tokens(t, src))
	if err != nil {
		t.Fatalf("ParseExpr(%q): %v", src, err)
	}
	return e
}

func parseElement(t *testing.T, src string) *ast.Element {
	t.Helper()
	el, err := parser.ParseElement(tokens(t, src))
	if err != nil {
		t.Fatalf("ParseElement(%q): %v", src, err)
	}
	return el
}

// eventBody parses a component with one event and returns its statements.
func eventBody(t *testing.T, body string) []ast.Stmt {
	t.Helper()
	prog := parseOK(t, "component C { event run(e) {"+body+"} <div/> }")
	return prog.Decls[0].Header().Events[0].Body
}
