// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/rrcover/rrcover/cover/internal/bitio"

// Decode expands the inline stream of c into out, which must have room for
// CodeCount symbols. It returns the number of symbols emitted and false when
// the stream ran out of bits with symbols still owed. Copy entries are not
// touched; callers append them separately.
func (cb *Codebook) Decode(c *Compressed, out []uint32) (int, bool) {
	if c.CodeCount == 0 {
		return 0, true
	}
	if sym, ok := cb.singleLeaf(); ok {
		for i := uint32(0); i < c.CodeCount; i++ {
			out[i] = sym
		}
		return int(c.CodeCount), true
	}
	r := bitio.NewReader(c.Bytes)
	emitted := 0
	for uint32(emitted) < c.CodeCount {
		sym, ok := cb.readSymbol(r)
		if !ok {
			return emitted, false
		}
		out[emitted] = sym
		emitted++
	}
	return emitted, true
}

// Probe decodes c only far enough to decide whether target is present,
// stopping at the first match. out[:n] receives the symbols emitted before
// the match (all of them when target is absent). ok is false when the stream
// was truncated before the answer was known.
func (cb *Codebook) Probe(c *Compressed, target uint32, out []uint32) (found bool, n int, ok bool) {
	if c.CodeCount == 0 {
		return false, 0, true
	}
	if sym, single := cb.singleLeaf(); single {
		if sym == target {
			return true, 0, true
		}
		for i := uint32(0); i < c.CodeCount; i++ {
			out[i] = sym
		}
		return false, int(c.CodeCount), true
	}
	r := bitio.NewReader(c.Bytes)
	for uint32(n) < c.CodeCount {
		sym, more := cb.readSymbol(r)
		if !more {
			return false, n, false
		}
		if sym == target {
			return true, n, true
		}
		out[n] = sym
		n++
	}
	return false, n, true
}

// readSymbol walks from the root to a leaf, consuming one bit per level.
func (cb *Codebook) readSymbol(r *bitio.Reader) (uint32, bool) {
	n := cb.root
	for !cb.nodes[n].leaf {
		bit, ok := r.ReadBit()
		if !ok {
			return 0, false
		}
		if bit == 0 {
			n = cb.nodes[n].left
		} else {
			n = cb.nodes[n].right
		}
	}
	return cb.nodes[n].sym, true
}
