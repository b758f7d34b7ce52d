package driver

import (
	"lumen/internal/ast"
	"lumen/internal/codegen"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
)

// ElementResult is a standalone element compiled from memory.
type ElementResult struct {
	FileSet *source.FileSet
	File    *source.File
	Element *ast.Element // nil when lexing or parsing failed
	Output  string
	Bag     *diag.Bag
}

// CompileElement parses src as exactly one element and renders it as
// JSX. Surrounding whitespace must already be trimmed. A failed compile
// returns the stage error with a result whose Bag describes it.
func CompileElement(name string, src []byte, opts codegen.Options, maxDiagnostics int) (*ElementResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	file := fs.Get(id)
	res := &ElementResult{FileSet: fs, File: file, Bag: newBag(maxDiagnostics)}

	toks, err := lexer.Tokenize(file)
	if err == nil {
		res.Element, err = parser.ParseElement(toks)
	}
	if err != nil {
		res.Element = nil
		res.Bag.Add(toDiagnostic(err, id))
		return res, err
	}
	res.Output = codegen.FormatElement(res.Element, opts)
	return res, nil
}
