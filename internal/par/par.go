// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package par provides the fixed worker pool primitive shared by the
// selection engine, the encoder and the generator. Workers cooperate only
// through the barrier at the end of each region.
package par

import (
	"runtime"
	"sync"
)

// Workers resolves a requested worker count. Zero or negative means one
// worker per hardware thread.
func Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	return runtime.NumCPU()
}

// ForEach splits [0, n) into one contiguous chunk per worker and runs fn on
// each chunk, returning after every chunk has finished. Chunk boundaries are
// n*w/workers, so a given (n, workers) pair always yields the same split.
func ForEach(n, workers int, fn func(worker, lo, hi int)) {
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, 0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			fn(w, n*w/workers, n*(w+1)/workers)
		}(w)
	}
	wg.Wait()
}
