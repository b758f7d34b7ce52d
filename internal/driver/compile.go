package driver

import (
	"context"
	"path/filepath"
	"strconv"
	"time"

	"lumen/internal/ast"
	"lumen/internal/codegen"
	"lumen/internal/diag"
	"lumen/internal/lexer"
	"lumen/internal/observ"
	"lumen/internal/parser"
	"lumen/internal/project"
	"lumen/internal/source"
	"lumen/internal/token"
	"lumen/internal/trace"
)

// DefaultMaxDiagnostics is the bag limit used when a caller passes none.
const DefaultMaxDiagnostics = 100

func newBag(limit int) *diag.Bag {
	if limit <= 0 {
		limit = DefaultMaxDiagnostics
	}
	return diag.NewBag(limit)
}

// Options configure a compile.
type Options struct {
	Codegen        codegen.Options
	MaxDiagnostics int           // <= 0 means DefaultMaxDiagnostics
	Jobs           int           // CompileDir parallelism; <= 0 means GOMAXPROCS
	Cache          Cache         // nil disables caching
	Timer          *observ.Timer // nil disables timings
	PhaseObserver  PhaseObserver
}

type CompileResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program // nil on cache hits and failures
	Output  string
	Imports []string       // module specifiers of the import declarations
	Key     project.Digest // zero when caching is off
	Cached  bool
	Bag     *diag.Bag
}

// CompileSource compiles DSL text held in memory. name is used for
// diagnostics and the generated header. A failed compile returns the
// stage error (*lexer.LexError, *parser.ParseError or
// *codegen.CodeGenError) along with a result whose Bag describes it.
func CompileSource(name string, src []byte, opts Options) (*CompileResult, error) {
	return CompileSourceContext(context.Background(), name, src, opts)
}

// CompileSourceContext is CompileSource with a context carrying a tracer.
func CompileSourceContext(ctx context.Context, name string, src []byte, opts Options) (*CompileResult, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return CompileFile(ctx, fs, id, opts)
}

// Compile loads and compiles the file at path. I/O failures return a nil
// result.
func Compile(path string, opts Options) (*CompileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return CompileFile(context.Background(), fs, id, opts)
}

// CompileFile compiles a file already loaded into fs.
func CompileFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) (*CompileResult, error) {
	file := fs.Get(id)
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+file.Path)
	res := &CompileResult{
		FileSet: fs,
		File:    file,
		Bag:     newBag(opts.MaxDiagnostics),
	}

	cg := opts.Codegen
	if cg.Source == "" {
		cg.Source = filepath.Base(file.Path)
	}

	if opts.Cache != nil {
		res.Key = CacheKey(file.Content, cg)
		entry, ok, err := opts.Cache.Get(res.Key)
		switch {
		case err != nil:
			res.Bag.Add(diag.NewWarning(diag.IOCacheError, source.Span{File: id}, "cache read failed: "+err.Error()))
		case ok:
			res.Output, res.Imports, res.Cached = entry.Output, entry.Imports, true
			trace.Point(trace.FromContext(ctx), trace.ScopeDetail, "cache", "hit", span.ID())
			span.End("cached")
			return res, nil
		}
	}

	p := passRunner{ctx: ctx, file: file.Path, timer: opts.Timer, observe: opts.PhaseObserver}
	var (
		toks []token.Token
		prog *ast.Program
	)
	err := p.run(PassLex, func() (err error) {
		toks, err = lexer.Tokenize(file)
		return err
	})
	if err == nil {
		err = p.run(PassParse, func() (err error) {
			prog, err = parser.ParseProgram(toks)
			return err
		})
	}
	if err == nil {
		err = p.run(PassCheck, func() error { return codegen.Check(prog) })
	}
	if err != nil {
		res.Bag.Add(toDiagnostic(err, id))
		span.End("error")
		return res, err
	}

	_ = p.run(PassGenerate, func() error {
		res.Output = codegen.Generate(prog, cg)
		return nil
	})
	res.Program = prog
	res.Imports = importSpecs(prog)

	if opts.Cache != nil {
		if err := opts.Cache.Put(res.Key, Entry{Output: res.Output, Imports: res.Imports}); err != nil {
			res.Bag.Add(diag.NewWarning(diag.IOCacheError, source.Span{File: id}, "cache write failed: "+err.Error()))
		}
	}
	span.WithExtra("decls", strconv.Itoa(len(prog.Decls))).End("ok")
	return res, nil
}

func importSpecs(prog *ast.Program) []string {
	if len(prog.Imports) == 0 {
		return nil
	}
	specs := make([]string, len(prog.Imports))
	for i, im := range prog.Imports {
		specs[i] = im.From
	}
	return specs
}

// passRunner reports one pass to the tracer, the timer and the observer.
type passRunner struct {
	ctx     context.Context
	file    string
	timer   *observ.Timer
	observe PhaseObserver
}

func (p passRunner) run(name string, fn func() error) error {
	_, span := trace.StartSpan(p.ctx, trace.ScopePass, name)
	idx := -1
	if p.timer != nil {
		idx = p.timer.Begin(name)
	}
	if p.observe != nil {
		p.observe(PhaseEvent{File: p.file, Name: name, Status: PhaseStart})
	}
	start := time.Now()

	err := fn()

	if p.timer != nil {
		p.timer.End(idx, "")
	}
	if p.observe != nil {
		p.observe(PhaseEvent{File: p.file, Name: name, Status: PhaseEnd, Elapsed: time.Since(start), Err: err})
	}
	detail := ""
	if err != nil {
		detail = "error"
	}
	span.End(detail)
	return err
}
