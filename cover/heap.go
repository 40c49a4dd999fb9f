// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package cover

import "container/heap"

// seedCandidate pairs a vertex with the coverage count it had when pushed.
// The count may be stale; the pop loop re-checks against the live vector.
type seedCandidate struct {
	vertex   uint32
	coverage uint32
}

// candidateHeap is a max-heap by coverage, smaller vertex id on ties.
type candidateHeap []seedCandidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].coverage != h[j].coverage {
		return h[i].coverage > h[j].coverage
	}
	return h[i].vertex < h[j].vertex
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(seedCandidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// selectUncompressed is the greedy loop over raw sets. Covered sets migrate
// to the tail of the slice after every pick; the counter vector is refreshed
// by whichever of subtracting the covered sets or recounting the survivors
// touches fewer sets. Stale heap entries are lazily re-pushed with their
// current coverage instead of rebuilding the heap each pick.
func selectUncompressed(sets [][]uint32, numVertices, k, workers int, seeds *[]uint32) int {
	counts := CountOccurrences(sets, numVertices, workers)
	h := make(candidateHeap, 0, numVertices)
	for v, c := range counts {
		if c > 0 {
			h = append(h, seedCandidate{vertex: uint32(v), coverage: c})
		}
	}
	heap.Init(&h)
	activeEnd := len(sets)
	covered := 0
	for len(*seeds) < k && h.Len() > 0 {
		top := heap.Pop(&h).(seedCandidate)
		cur := counts[top.vertex]
		if cur != top.coverage {
			if cur > 0 {
				heap.Push(&h, seedCandidate{vertex: top.vertex, coverage: cur})
			}
			continue
		}
		*seeds = append(*seeds, top.vertex)
		covered += int(cur)
		b := partitionSets(sets[:activeEnd], top.vertex, workers)
		if activeEnd-b <= b {
			subtractOccurrences(sets[b:activeEnd], counts, workers)
		} else {
			clear(counts)
			countInto(sets[:b], counts, workers)
		}
		activeEnd = b
	}
	return covered
}
