// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"github.com/rrcover/rrcover/cover/internal/bitio"
	"github.com/rrcover/rrcover/internal/par"
)

// Compressed is one RR set after encoding. Bytes carries CodeCount
// tree-delimited codes; Copy holds the vertices kept verbatim instead, those
// whose codes were longer than the inline threshold or that had no code.
type Compressed struct {
	Bytes     []byte
	CodeCount uint32
	Copy      []uint32
}

// Symbols reports how many vertices the set represents.
func (c *Compressed) Symbols() int {
	return int(c.CodeCount) + len(c.Copy)
}

// EncodeSet compresses one sorted set of vertex ids. If the set contains
// MaxVertex it is swapped to position 0 first, mutating set, so that decoding
// yields it before any other symbol. Vertices whose code is longer than
// inlineBits spill to Copy, or are dropped when lossy is true.
func (cb *Codebook) EncodeSet(set []uint32, lossy bool, inlineBits int) Compressed {
	if i := searchSorted(set, cb.MaxVertex); i >= 0 {
		set[0], set[i] = set[i], set[0]
	}
	w := bitio.NewWriter(len(set))
	single, isSingle := cb.singleLeaf()
	var count uint32
	var copied []uint32
	for _, v := range set {
		code := cb.codes[v]
		switch {
		case code.Len > 0 && int(code.Len) <= inlineBits:
			w.WriteCode(code.Hi, code.Lo, int(code.Len))
			count++
		case isSingle && v == single:
			count++
		case !lossy:
			copied = append(copied, v)
		}
	}
	return Compressed{Bytes: w.Bytes(), CodeCount: count, Copy: copied}
}

// EncodeAll compresses every set in parallel, releasing each raw set as soon
// as it has been encoded so peak memory stays near one copy of the data.
func (cb *Codebook) EncodeAll(sets [][]uint32, lossy bool, inlineBits, workers int) []Compressed {
	out := make([]Compressed, len(sets))
	par.ForEach(len(sets), workers, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = cb.EncodeSet(sets[i], lossy, inlineBits)
			sets[i] = nil
		}
	})
	return out
}

// searchSorted returns the index of v in the ascending slice s, or -1.
func searchSorted(s []uint32, v uint32) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s) && s[lo] == v {
		return lo
	}
	return -1
}
