// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package graph holds the compressed sparse row transpose of a directed
// graph. Reverse-reachability walks only ever follow edges backwards, so the
// adjacency is stored by edge target: row v lists the sources of the edges
// into v.
package graph

import (
	"fmt"
	"slices"

	gonumgraph "gonum.org/v1/gonum/graph"
)

// Edge is one directed edge from Src to Dst.
type Edge struct {
	Src uint32
	Dst uint32
}

// CSR is the transpose adjacency. In-neighbors of v occupy
// Targets[Offsets[v]:Offsets[v+1]].
type CSR struct {
	NumVertices int
	Offsets     []uint32
	Targets     []uint32
}

// InNeighbors returns the sources of all edges into v. The returned slice
// aliases the graph and must not be modified.
func (g *CSR) InNeighbors(v uint32) []uint32 {
	return g.Targets[g.Offsets[v]:g.Offsets[v+1]]
}

// NumEdges reports the edge count.
func (g *CSR) NumEdges() int {
	return len(g.Targets)
}

// FromEdges builds the transpose adjacency for a graph with n vertices by
// counting sort on edge targets. Rows come out sorted ascending; parallel
// edges are kept.
func FromEdges(n int, edges []Edge) (*CSR, error) {
	offsets := make([]uint32, n+1)
	for _, e := range edges {
		if int(e.Src) >= n || int(e.Dst) >= n {
			return nil, fmt.Errorf("graph: edge %d->%d outside vertex range [0, %d)", e.Src, e.Dst, n)
		}
		offsets[e.Dst+1]++
	}
	for v := 1; v <= n; v++ {
		offsets[v] += offsets[v-1]
	}
	targets := make([]uint32, len(edges))
	next := make([]uint32, n)
	copy(next, offsets[:n])
	for _, e := range edges {
		targets[next[e.Dst]] = e.Src
		next[e.Dst]++
	}
	// Canonical row order keeps sampling reproducible no matter how the
	// caller ordered the edges.
	for v := 0; v < n; v++ {
		slices.Sort(targets[offsets[v]:offsets[v+1]])
	}
	return &CSR{NumVertices: n, Offsets: offsets, Targets: targets}, nil
}

// FromDirected converts a gonum directed graph. Node ids must be dense
// enough to address by index; the vertex count is the highest id plus one.
func FromDirected(g gonumgraph.Directed) (*CSR, error) {
	var n int64
	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		if id < 0 {
			return nil, fmt.Errorf("graph: negative node id %d", id)
		}
		if id+1 > n {
			n = id + 1
		}
	}
	var edges []Edge
	nodes.Reset()
	for nodes.Next() {
		src := nodes.Node().ID()
		to := g.From(src)
		for to.Next() {
			edges = append(edges, Edge{Src: uint32(src), Dst: uint32(to.Node().ID())})
		}
	}
	return FromEdges(int(n), edges)
}
