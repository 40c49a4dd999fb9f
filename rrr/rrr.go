// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package rrr samples reverse-reachability sets from a transpose graph.
// Every set is the result of one backward walk from a uniformly random root
// under the chosen diffusion model, deduplicated and sorted ascending.
package rrr

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/rrcover/rrcover/graph"
	"github.com/rrcover/rrcover/internal/par"
)

// Model selects the diffusion process the walk samples.
type Model int

const (
	// IC keeps each in-edge live independently with Options.Probability.
	IC Model = iota
	// LT keeps exactly one uniformly chosen live in-edge per vertex.
	LT
)

func (m Model) String() string {
	switch m {
	case IC:
		return "ic"
	case LT:
		return "lt"
	}
	return fmt.Sprintf("model(%d)", int(m))
}

// ParseModel maps "ic" and "lt", case insensitively.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "ic":
		return IC, nil
	case "lt":
		return LT, nil
	}
	return 0, fmt.Errorf("rrr: unknown diffusion model %q", s)
}

// Options configures generation.
type Options struct {
	Model       Model
	Probability float64 // IC edge probability
	Seed        uint64
	Parallelism int
}

// Generate samples count sets. Each worker owns a contiguous range of set
// indices and a PCG stream derived from the base seed and its worker index,
// so a given (seed, parallelism) pair reproduces the same sets.
func Generate(g *graph.CSR, count int, opts Options) [][]uint32 {
	sets := make([][]uint32, count)
	if g.NumVertices == 0 {
		return sets
	}
	workers := par.Workers(opts.Parallelism)
	par.ForEach(count, workers, func(w, lo, hi int) {
		rng := rand.New(rand.NewPCG(opts.Seed, uint64(w)))
		walker := newWalker(g, opts.Model, opts.Probability, rng)
		for i := lo; i < hi; i++ {
			root := uint32(rng.IntN(g.NumVertices))
			sets[i] = walker.sample(root)
		}
	})
	return sets
}

// walker holds the per-worker scratch for backward walks. The visited stamp
// array avoids clearing between samples.
type walker struct {
	g     *graph.CSR
	model Model
	p     float64
	rng   *rand.Rand

	visited []int
	stamp   int
	queue   []uint32
}

func newWalker(g *graph.CSR, model Model, p float64, rng *rand.Rand) *walker {
	return &walker{
		g:       g,
		model:   model,
		p:       p,
		rng:     rng,
		visited: make([]int, g.NumVertices),
		stamp:   0,
	}
}

// sample runs one breadth-first backward walk from root and returns the
// visited vertices sorted ascending.
func (wk *walker) sample(root uint32) []uint32 {
	wk.stamp++
	wk.queue = wk.queue[:0]
	wk.visit(root)
	for qi := 0; qi < len(wk.queue); qi++ {
		v := wk.queue[qi]
		in := wk.g.InNeighbors(v)
		if len(in) == 0 {
			continue
		}
		switch wk.model {
		case IC:
			for _, u := range in {
				if wk.rng.Float64() < wk.p && wk.visited[u] != wk.stamp {
					wk.visit(u)
				}
			}
		case LT:
			u := in[wk.rng.IntN(len(in))]
			if wk.visited[u] != wk.stamp {
				wk.visit(u)
			}
		}
	}
	out := make([]uint32, len(wk.queue))
	copy(out, wk.queue)
	slices.Sort(out)
	return out
}

func (wk *walker) visit(v uint32) {
	wk.visited[v] = wk.stamp
	wk.queue = append(wk.queue, v)
}
