package driver

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program // nil when lexing or parsing failed
	Bag     *diag.Bag
}

// Parse loads path and builds its syntax tree. Only I/O failures are
// returned as errors.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := newBag(maxDiagnostics)

	res := &ParseResult{FileSet: fs, File: file, Bag: bag}
	prog, err := parseFile(file)
	if err != nil {
		bag.Add(toDiagnostic(err, fileID))
		return res, nil
	}
	res.Program = prog
	return res, nil
}

func parseFile(file *source.File) (*ast.Program, error) {
	toks, err := lexer.Tokenize(file)
	if err != nil {
		return nil, err
	}
	return parser.ParseProgram(toks)
}
