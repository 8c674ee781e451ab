// Package driver implements skim's Parallel Driver and Streaming Emitter
// (spec.md §4.C9/C10): a reader/worker/collector goroutine pipeline that
// fans a file list across a worker pool, consults and populates the Result
// Cache, and reassembles output in input order. Grounded on
// internal/ingest/engine.go's ingestSQLiteStreaming pipeline (jobs channel
// of depth numWorkers*2, a WaitGroup-joined worker pool, a single collector
// goroutine), adapted from that pipeline's unordered graph-node apply to a
// pre-sized result slot buffer so output preserves input order.
package driver

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/agentic-research/skim/internal/cache"
	"github.com/agentic-research/skim/internal/transform"
)

// DefaultWorkers is runtime.NumCPU(), the spec.md §4.C9 default pool size.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// ClampWorkers enforces the spec.md §4.C9 configurable range [1, 128].
func ClampWorkers(n int) int {
	if n < 1 {
		return 1
	}
	if n > 128 {
		return 128
	}
	return n
}

// Options configures a Run.
type Options struct {
	Mode         transform.Mode
	Language     string // explicit language tag, or "" to resolve by extension
	Workers      int
	Cache        *cache.Cache // nil or NoCache disables caching entirely (e.g. stdin input)
	NoCache      bool
	ComputeStats bool
}

// FileResult is one unit's outcome. Index is its position in the input
// list, used to reassemble output in input order once workers finish out
// of order.
type FileResult struct {
	Index  int
	Path   string
	Result transform.Result
	Err    error
	Cached bool
}

// job is one unit of work handed to a pool worker.
type job struct {
	index int
	path  string
}

// Run transforms every file in paths according to opts and returns results
// in input order. A per-file error is captured on that file's FileResult
// rather than aborting the run (spec.md §4.C10 "a per-file error is
// reported to the side channel... the overall run continues").
func Run(paths []string, opts Options) []FileResult {
	numWorkers := opts.Workers
	if numWorkers == 0 {
		numWorkers = DefaultWorkers()
	}
	numWorkers = ClampWorkers(numWorkers)

	results := make([]FileResult, len(paths))

	jobs := make(chan job, numWorkers*2)
	out := make(chan FileResult, numWorkers*2)

	var workerWg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for j := range jobs {
				out <- processOne(j, opts)
			}
		}()
	}

	var collectWg sync.WaitGroup
	collectWg.Add(1)
	go func() {
		defer collectWg.Done()
		for r := range out {
			results[r.Index] = r
		}
	}()

	for i, p := range paths {
		jobs <- job{index: i, path: p}
	}
	close(jobs)
	workerWg.Wait()
	close(out)
	collectWg.Wait()

	return results
}

func processOne(j job, opts Options) FileResult {
	fr := FileResult{Index: j.index, Path: j.path}

	source, err := os.ReadFile(j.path)
	if err != nil {
		fr.Err = err
		return fr
	}

	var mtimeNS int64
	if info, statErr := os.Stat(j.path); statErr == nil {
		mtimeNS = info.ModTime().UnixNano()
	}
	modeTag := string(opts.Mode)

	// The cache is keyed by absolute path so entries do not depend on the
	// working directory the path was given relative to.
	absPath := j.path
	if abs, absErr := filepath.Abs(j.path); absErr == nil {
		absPath = abs
	}

	useCache := opts.Cache != nil && !opts.NoCache
	if useCache {
		if entry, ok := opts.Cache.Get(absPath, mtimeNS, modeTag); ok {
			fr.Result = transform.Result{
				Output:            entry.Content,
				OriginalTokens:    entry.OriginalTokens,
				TransformedTokens: entry.TransformedTokens,
			}
			fr.Cached = true
			return fr
		}
	}

	res, err := transform.TransformAuto(j.path, source, opts.Mode, opts.Language, transform.Options{
		ComputeStats: opts.ComputeStats,
	})
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Result = res

	if useCache {
		if err := opts.Cache.Put(absPath, mtimeNS, modeTag, cache.Entry{
			Path:              absPath,
			Mode:              modeTag,
			MtimeNS:           mtimeNS,
			OriginalTokens:    res.OriginalTokens,
			TransformedTokens: res.TransformedTokens,
			Content:           res.Output,
		}); err != nil {
			log.Print(err)
		}
	}

	return fr
}
