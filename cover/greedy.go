// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package cover

import "github.com/rrcover/rrcover/internal/par"

// selectSeeds runs the compressed greedy loop, appending picks to seeds and
// returning the number of sets covered. Each iteration probes every still
// uncovered set for the latest pick; sets that miss are decoded in full and
// their symbols recounted, so the global count vector always reflects the
// surviving sets only. The count reduction is split by vertex id range, which
// keeps the result independent of the worker count.
func (e *Engine) selectSeeds(seeds *[]uint32) int {
	workers := e.workers
	locals := make([][]uint32, workers)
	scratch := make([][]uint32, workers)
	hits := make([]int, workers)
	for w := range locals {
		locals[w] = make([]uint32, e.numVerts)
		scratch[w] = make([]uint32, e.maxSyms)
	}
	active := make([]uint32, 0, len(e.sets))
	for i := range e.sets {
		if e.sets[i].Symbols() > 0 {
			active = append(active, uint32(i))
		}
	}
	isCovered := make([]bool, len(e.sets))
	counts := e.counts
	covered := 0
	for len(*seeds) < e.opts.K {
		// The codebook already knows the most frequent vertex, ties to the
		// highest id; later picks take the smallest id on ties.
		best := int(e.cb.MaxVertex)
		if len(*seeds) > 0 {
			best = 0
			for v := 1; v < e.numVerts; v++ {
				if counts[v] > counts[best] {
					best = v
				}
			}
		}
		if counts[best] == 0 {
			break
		}
		target := uint32(best)
		*seeds = append(*seeds, target)

		nw := workers
		if nw > len(active) {
			nw = len(active)
		}
		par.ForEach(len(active), workers, func(w, lo, hi int) {
			local := locals[w]
			clear(local)
			hits[w] = 0
			out := scratch[w]
			for _, idx := range active[lo:hi] {
				c := &e.sets[idx]
				found := scanCopy(c.Copy, target)
				if !found {
					var n int
					var ok bool
					found, n, ok = e.cb.Probe(c, target, out)
					if !found {
						if !ok {
							e.log.Warn("truncated code stream",
								"set", idx, "decoded", n, "want", c.CodeCount)
						}
						for _, v := range out[:n] {
							local[v]++
						}
						for _, v := range c.Copy {
							local[v]++
						}
						continue
					}
				}
				hits[w]++
				isCovered[idx] = true
				if e.opts.EagerRelease {
					c.Bytes, c.Copy = nil, nil
				}
			}
		})
		par.ForEach(e.numVerts, workers, func(_, lo, hi int) {
			for v := lo; v < hi; v++ {
				var sum uint32
				for w := 0; w < nw; w++ {
					sum += locals[w][v]
				}
				counts[v] = sum
			}
		})
		for w := 0; w < nw; w++ {
			covered += hits[w]
		}
		kept := active[:0]
		for _, idx := range active {
			if !isCovered[idx] {
				kept = append(kept, idx)
			}
		}
		active = kept
	}
	return covered
}

func scanCopy(entries []uint32, v uint32) bool {
	for _, x := range entries {
		if x == v {
			return true
		}
	}
	return false
}
