// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package par

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkers(t *testing.T) {
	assert.Equal(t, 4, Workers(4))
	assert.Equal(t, runtime.NumCPU(), Workers(0))
	assert.Equal(t, runtime.NumCPU(), Workers(-3))
}

func TestForEachCoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 4, 16} {
		n := 1000
		seen := make([]int32, n)
		ForEach(n, workers, func(_, lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, c := range seen {
			require.Equal(t, int32(1), c, "workers=%d index=%d", workers, i)
		}
	}
}

func TestForEachChunksAreStable(t *testing.T) {
	n, workers := 103, 7
	bounds := make([][2]int, workers)
	ForEach(n, workers, func(w, lo, hi int) {
		bounds[w] = [2]int{lo, hi}
	})
	for w := 0; w < workers; w++ {
		assert.Equal(t, n*w/workers, bounds[w][0])
		assert.Equal(t, n*(w+1)/workers, bounds[w][1])
	}
}

func TestForEachClampsWorkers(t *testing.T) {
	var calls atomic.Int32
	ForEach(2, 8, func(w, lo, hi int) {
		calls.Add(1)
		require.Less(t, w, 2)
		require.Equal(t, 1, hi-lo)
	})
	require.Equal(t, int32(2), calls.Load())
}

func TestForEachZero(t *testing.T) {
	called := false
	ForEach(0, 4, func(_, _, _ int) { called = true })
	require.False(t, called)
}
