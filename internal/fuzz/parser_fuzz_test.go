package fuzztests

import (
	"testing"
	"time"

	"lumen/internal/codegen"
	"lumen/internal/lexer"
	"lumen/internal/parser"
	"lumen/internal/source"
	"lumen/internal/testkit"
)

// parseTimeout bounds a single compile; exceeding it means a loop.
const parseTimeout = 5 * time.Second

// FuzzCompileInvariants runs the full pipeline. Every accepted program must
// satisfy the tree invariants and generate the same output twice.
func FuzzCompileInvariants(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.lumen", clampInput(input)))

		toks, err := lexer.Tokenize(file)
		if err != nil {
			return
		}
		prog, err := parser.ParseProgram(toks)
		if err != nil {
			if _, ok := err.(*parser.ParseError); !ok {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		if err := testkit.CheckSpanInvariants(prog, file); err != nil {
			t.Fatalf("span invariants: %v", err)
		}
		if err := testkit.CheckStructure(prog); err != nil {
			t.Fatalf("structure: %v", err)
		}
		if err := codegen.Check(prog); err != nil {
			return
		}
		first := codegen.Generate(prog, codegen.Options{})
		if second := codegen.Generate(prog, codegen.Options{}); first != second {
			t.Fatalf("generation is not deterministic:\n%s\n---\n%s", first, second)
		}
	})
}

// FuzzParserNoHang fails when a single parse exceeds parseTimeout.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("component A { " + repeat("<div>", 300) + " }"))
	f.Add([]byte("component A { event e() { " + repeat("(", 500) + " } <p/> }"))
	f.Add([]byte("component A { <p>{a ? b ? c ? d : e : f : g}</p> }"))
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.lumen", input))
			toks, err := lexer.Tokenize(file)
			if err != nil {
				return
			}
			_, _ = parser.ParseProgram(toks)
		}()
		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hung on %d bytes of input", len(input))
		}
	})
}

func repeat(s string, n int) string {
	b := make([]byte, 0, len(s)*n)
	for range n {
		b = append(b, s...)
	}
	return string(b)
}
