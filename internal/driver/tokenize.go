package driver

import (
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/source"
	"lumen/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // up to the first lexical error
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it. Only I/O failures are returned as
// errors; lexical errors land in the Bag.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := newBag(maxDiagnostics)

	var tokens []token.Token
	lx := lexer.New(file)
	for {
		tok, err := lx.Next()
		if err != nil {
			bag.Add(toDiagnostic(err, fileID))
			break
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
