package project

import (
	"context"
	"runtime"
	"sync"

	"github.com/forgebuild/xcfs/internal/vfs"
)

// filterExistingSpecs concurrently probes each spec's source against fs and
// returns the subset whose source exists, preserving the input order. A
// large spec list may name sources scattered across a slow physical
// filesystem, so the existence probe itself runs worker-parallel; the
// copies that follow still run one at a time; concurrent copies would race
// each other for progress/manifest bookkeeping.
func filterExistingSpecs(ctx context.Context, fs vfs.Filesystem, specs []CopyFileSpec) []CopyFileSpec {
	type result struct {
		index int
		ok    bool
	}

	results := make(chan result, len(specs))

	var wg sync.WaitGroup

	maxWorkers := runtime.NumCPU()
	semaphore := make(chan struct{}, maxWorkers)

	for i, spec := range specs {
		select {
		case <-ctx.Done():
		case semaphore <- struct{}{}:
			wg.Add(1)

			go func(i int, spec CopyFileSpec) {
				defer wg.Done()
				defer func() { <-semaphore }()

				results <- result{index: i, ok: fs.Exists(spec.Source)}
			}(i, spec)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	keep := make([]bool, len(specs))
	for r := range results {
		keep[r.index] = r.ok
	}

	filtered := make([]CopyFileSpec, 0, len(specs))

	for i, spec := range specs {
		if keep[i] {
			filtered = append(filtered, spec)
		}
	}

	return filtered
}
