// Package buildpipeline compiles a source tree into an output tree.
package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lumen/internal/diag"
	"lumen/internal/driver"
	"lumen/internal/observ"
	"lumen/internal/source"
	"lumen/internal/trace"
)

// DefaultExtension is the output file extension.
const DefaultExtension = ".jsx"

// ErrBuildFailed is returned when at least one file failed to compile or
// write. Per-file details are in BuildResult.Files.
var ErrBuildFailed = errors.New("build failed")

// BuildRequest configures a directory build.
type BuildRequest struct {
	SrcDir    string
	OutDir    string
	Extension string // "" = DefaultExtension
	Options   driver.Options
	Progress  ProgressSink
}

// FileOutcome is the result of building one source file.
type FileOutcome struct {
	Path    string // relative to SrcDir, slash-separated
	OutPath string // empty when nothing was written
	Cached  bool
	Bag     *diag.Bag
	Err     error
}

// BuildResult summarizes a build.
type BuildResult struct {
	FileSet *source.FileSet
	Files   []FileOutcome
	Written int
	Cached  int
	Failed  int
	Timings Timings
}

// Diagnostics merges the diagnostics of every file into one sorted bag.
func (r BuildResult) Diagnostics(maxItems int) *diag.Bag {
	bag := diag.NewBag(maxItems)
	for _, f := range r.Files {
		if f.Bag != nil {
			bag.Merge(f.Bag)
		}
	}
	bag.Sort()
	return bag
}

// Build compiles every source file under req.SrcDir and writes
// <OutDir>/<rel>.jsx for each success, dependencies before their
// importers. Outputs of failed files are left as they were.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing build request")
	}
	if req.SrcDir == "" || req.OutDir == "" {
		return result, fmt.Errorf("build request needs both a source and an output directory")
	}
	ext := req.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	ctx, span := trace.StartSpan(ctx, trace.ScopeDriver, "build")
	defer func() { span.End(fmt.Sprintf("%d written, %d failed", result.Written, result.Failed)) }()

	files, err := driver.ListSources(req.SrcDir)
	if err != nil {
		return result, fmt.Errorf("failed to list sources: %w", err)
	}
	rels := make([]string, len(files))
	for i, f := range files {
		rels[i] = relFile(req.SrcDir, f)
	}
	emitQueued(req.Progress, rels)

	opts := req.Options
	if opts.Timer == nil {
		opts.Timer = observ.NewTimer()
	}
	obs := &phaseObserver{sink: req.Progress, srcDir: req.SrcDir}
	opts.PhaseObserver = chainObservers(opts.PhaseObserver, obs.OnPhase)

	fileSet, dirResults, err := driver.CompileDir(ctx, req.SrcDir, opts)
	result.FileSet = fileSet
	recordTimings(&result.Timings, opts.Timer.Report())
	if err != nil {
		emitStage(req.Progress, "", StageParse, StatusError, err, 0)
		return result, err
	}

	writeStart := time.Now()
	result.Files = make([]FileOutcome, len(dirResults))
	for _, i := range checkImports(dirResults) {
		dr := dirResults[i]
		out := FileOutcome{Path: dr.Path, Bag: dr.Bag, Err: dr.Err}
		if dr.Result != nil {
			out.Cached = dr.Result.Cached
		}
		switch {
		case dr.Err != nil:
			result.Failed++
			if dr.Result == nil {
				emitStage(req.Progress, dr.Path, StageParse, StatusError, dr.Err, 0)
			}
		default:
			if out.Cached {
				result.Cached++
				emitStage(req.Progress, dr.Path, StageGenerate, StatusCached, nil, 0)
			}
			out.OutPath = outputPath(req.OutDir, dr.Path, ext)
			emitStage(req.Progress, dr.Path, StageWrite, StatusWorking, nil, 0)
			start := time.Now()
			if err := writeAtomic(out.OutPath, []byte(dr.Result.Output)); err != nil {
				err = fmt.Errorf("failed to write %s: %w", out.OutPath, err)
				out.Err, out.OutPath = err, ""
				if out.Bag != nil {
					out.Bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: dr.FileID}, err.Error()))
				}
				result.Failed++
				emitStage(req.Progress, dr.Path, StageWrite, StatusError, err, time.Since(start))
				break
			}
			result.Written++
			emitStage(req.Progress, dr.Path, StageWrite, StatusDone, nil, time.Since(start))
		}
		result.Files[i] = out
	}
	result.Timings.Add(StageWrite, time.Since(writeStart))

	if result.Failed > 0 {
		emitStage(req.Progress, "", StageWrite, StatusError, ErrBuildFailed, 0)
		return result, ErrBuildFailed
	}
	emitStage(req.Progress, "", StageWrite, StatusDone, nil, result.Timings.Sum(StageParse, StageGenerate, StageWrite))
	return result, nil
}

// outputPath maps "pages/home.lumen" to "<out>/pages/home.jsx".
func outputPath(outDir, rel, ext string) string {
	base := strings.TrimSuffix(rel, driver.SourceExt)
	return filepath.Join(outDir, filepath.FromSlash(base)+ext)
}

// writeAtomic replaces path with data via a temp file in the same directory.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".lumen-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func relFile(root, path string) string {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.FromSlash(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func recordTimings(t *Timings, report observ.Report) {
	for _, p := range report.Phases {
		d := time.Duration(p.DurationMS * float64(time.Millisecond))
		switch p.Name {
		case driver.PassLex, driver.PassParse:
			t.Add(StageParse, d)
		case driver.PassCheck, driver.PassGenerate:
			t.Add(StageGenerate, d)
		}
	}
}
