package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"lumen/internal/diag"
	"lumen/internal/source"
)

// SourceExt is the extension of DSL source files.
const SourceExt = ".lumen"

// DirResult is the outcome of compiling one file of a directory.
type DirResult struct {
	Path   string // slash-separated, relative to the directory
	FileID source.FileID
	Result *CompileResult // nil when the file could not be loaded
	Bag    *diag.Bag
	Err    error // load or stage error
}

// Failed reports whether the file produced no output.
func (r DirResult) Failed() bool { return r.Err != nil }

// ListSources returns every *.lumen file under dir in sorted order.
// Directories whose names start with '.' are skipped.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every source file under dir in parallel. A failing
// file never affects the others; the returned error is reserved for
// listing failures and cancellation.
func CompileDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []DirResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading mutates the FileSet, so it happens before the workers start.
	results := make([]DirResult, len(files))
	for i, path := range files {
		results[i].Path = relPath(dir, path)
		id, err := fileSet.Load(path)
		if err != nil {
			bag := newBag(opts.MaxDiagnostics)
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, err.Error()))
			results[i].Bag, results[i].Err = bag, err
			continue
		}
		results[i].FileID = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns one slot of results.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := CompileFile(gctx, fileSet, results[i].FileID, opts)
			results[i].Result, results[i].Bag, results[i].Err = res, res.Bag, err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func relPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
