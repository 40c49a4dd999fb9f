// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package cover

import "github.com/rrcover/rrcover/internal/par"

// Swapping fewer slice headers than this is cheaper on one goroutine.
const swapSeqThreshold = 1 << 13

// partitionSets reorders sets in place so every set containing v sits behind
// the returned boundary and every set without it sits in front. Each worker
// partitions one contiguous chunk, then adjacent chunk pairs are joined by
// swapping the smaller of the misplaced blocks, halving the block count per
// round. Inner set order is never touched.
func partitionSets(sets [][]uint32, v uint32, workers int) int {
	nw := workers
	if nw > len(sets) {
		nw = len(sets)
	}
	if nw <= 1 {
		return seqPartition(sets, v)
	}
	bounds := make([]int, nw+1)
	for w := 0; w <= nw; w++ {
		bounds[w] = len(sets) * w / nw
	}
	pivots := make([]int, nw)
	par.ForEach(len(sets), nw, func(w, lo, hi int) {
		pivots[w] = lo + seqPartition(sets[lo:hi], v)
	})
	for step := 1; step < nw; step <<= 1 {
		for i := 0; i+step < nw; i += 2 * step {
			j := i + step
			pivots[i] = joinBlocks(sets, pivots[i], bounds[j], pivots[j], workers)
		}
	}
	return pivots[0]
}

func seqPartition(sets [][]uint32, v uint32) int {
	b := 0
	for i := range sets {
		if !containsSorted(sets[i], v) {
			sets[b], sets[i] = sets[i], sets[b]
			b++
		}
	}
	return b
}

// joinBlocks merges two adjacent partitioned blocks, [.., b2) split at p1 and
// [b2, ..) split at p2, into one partitioned region and returns its pivot.
// Only min(matched tail, unmatched head) headers move.
func joinBlocks(sets [][]uint32, p1, b2, p2, workers int) int {
	lenTail := b2 - p1
	lenHead := p2 - b2
	switch {
	case lenTail == 0 || lenHead == 0:
	case lenTail <= lenHead:
		swapRanges(sets, p1, p2-lenTail, lenTail, workers)
	default:
		swapRanges(sets, p1, b2, lenHead, workers)
	}
	return p1 + lenHead
}

func swapRanges(sets [][]uint32, a, b, n, workers int) {
	if n < swapSeqThreshold {
		for i := 0; i < n; i++ {
			sets[a+i], sets[b+i] = sets[b+i], sets[a+i]
		}
		return
	}
	par.ForEach(n, workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			sets[a+i], sets[b+i] = sets[b+i], sets[a+i]
		}
	})
}
