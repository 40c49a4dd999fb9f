// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Code is one symbol's bit pattern. For Len <= 64 the code occupies the top
// Len bits of Hi; for longer codes Hi is full and the remaining Len-64 bits
// sit in the top of Lo. Len == 0 marks a symbol with no code.
type Code struct {
	Hi  uint64
	Lo  uint64
	Len uint8
}

// Codebook holds the tree arena and the per-vertex codes for one run.
type Codebook struct {
	nodes []node
	root  int32
	codes []Code

	// MaxVertex is the vertex with the highest frequency, the highest id on
	// ties. Encoding moves it to the front of each set that contains it.
	MaxVertex uint32

	symbols int
}

// Build constructs the codebook for the given per-vertex frequencies.
// Vertices with zero frequency get no code.
func Build(freq []uint32) *Codebook {
	cb := &Codebook{
		nodes: make([]node, 0, 2*len(freq)),
		root:  -1,
		codes: make([]Code, len(freq)),
	}
	heap := buildHeap{idx: make([]int32, 0, len(freq))}
	for v, f := range freq {
		if f == 0 {
			continue
		}
		cb.nodes = append(cb.nodes, node{
			freq: uint64(f),
			sym:  uint32(v),
			leaf: true,
		})
		cb.symbols++
		if f >= freq[cb.MaxVertex] {
			cb.MaxVertex = uint32(v)
		}
	}
	heap.nodes = cb.nodes
	for i := range cb.nodes {
		heap.push(int32(i))
	}
	for heap.size() > 1 {
		a := heap.pop()
		b := heap.pop()
		cb.nodes = append(cb.nodes, node{
			freq:  cb.nodes[a].freq + cb.nodes[b].freq,
			left:  a,
			right: b,
		})
		heap.nodes = cb.nodes
		next := int32(len(cb.nodes) - 1)
		heap.push(next)
	}
	if heap.size() == 1 {
		cb.root = heap.pop()
	}
	cb.assignCodes()
	return cb
}

// Symbols reports the number of vertices that received a code.
func (cb *Codebook) Symbols() int {
	return cb.symbols
}

type walkFrame struct {
	node  int32
	hi    uint64
	lo    uint64
	depth uint8
}

// assignCodes walks the tree emitting 0 on every left descent and 1 on every
// right descent. A lone leaf at the root keeps Len == 0; the decoder handles
// that shape without reading bits.
func (cb *Codebook) assignCodes() {
	if cb.root < 0 || cb.nodes[cb.root].leaf {
		return
	}
	stack := make([]walkFrame, 1, 64)
	stack[0] = walkFrame{node: cb.root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &cb.nodes[f.node]
		if n.leaf {
			cb.codes[n.sym] = Code{Hi: f.hi, Lo: f.lo, Len: f.depth}
			continue
		}
		left := f
		left.node = n.left
		left.depth++
		right := walkFrame{node: n.right, hi: f.hi, lo: f.lo, depth: f.depth + 1}
		if f.depth < 64 {
			right.hi |= 1 << (63 - f.depth)
		} else {
			right.lo |= 1 << (127 - f.depth)
		}
		stack = append(stack, right, left)
	}
}

// singleLeaf reports whether the tree is a lone leaf and, if so, its symbol.
func (cb *Codebook) singleLeaf() (uint32, bool) {
	if cb.root < 0 || !cb.nodes[cb.root].leaf {
		return 0, false
	}
	return cb.nodes[cb.root].sym, true
}
