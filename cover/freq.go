// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package cover

import "github.com/rrcover/rrcover/internal/par"

// Below this many sets the binary searches cost more than a single
// sequential sweep.
const seqCountThreshold = 1024

// CountOccurrences counts, for every vertex id in [0, numVertices), the
// number of sets it appears in. Sets must be sorted ascending and hold no
// duplicates. Each worker owns a contiguous id range and scans every set's
// matching subrange, so no per-worker merge is needed and the result does not
// depend on the worker count.
func CountOccurrences(sets [][]uint32, numVertices, workers int) []uint32 {
	counts := make([]uint32, numVertices)
	countInto(sets, counts, workers)
	return counts
}

// countInto accumulates occurrence counts into an already zeroed vector.
func countInto(sets [][]uint32, counts []uint32, workers int) {
	if workers <= 1 || len(sets) < seqCountThreshold {
		for _, set := range sets {
			for _, v := range set {
				counts[v]++
			}
		}
		return
	}
	par.ForEach(len(counts), workers, func(_, lo, hi int) {
		countRange(sets, counts, uint32(lo), uint32(hi))
	})
}

func countRange(sets [][]uint32, counts []uint32, lo, hi uint32) {
	for _, set := range sets {
		for i := lowerBound(set, lo); i < len(set) && set[i] < hi; i++ {
			counts[set[i]]++
		}
	}
}

// subtractOccurrences removes the contribution of sets from counts, using the
// same id-range split as CountOccurrences.
func subtractOccurrences(sets [][]uint32, counts []uint32, workers int) {
	par.ForEach(len(counts), workers, func(_, lo, hi int) {
		for _, set := range sets {
			for i := lowerBound(set, uint32(lo)); i < len(set) && set[i] < uint32(hi); i++ {
				counts[set[i]]--
			}
		}
	})
}

// lowerBound returns the first index whose value is >= v.
func lowerBound(s []uint32, v uint32) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// containsSorted reports whether the ascending slice s holds v.
func containsSorted(s []uint32, v uint32) bool {
	i := lowerBound(s, v)
	return i < len(s) && s[i] == v
}
