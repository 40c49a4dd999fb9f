// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package cover selects influential seed vertices from collections of
// reverse-reachability sets by greedy maximum coverage. The Engine keeps the
// sets Huffman-compressed in memory and decodes them on the fly inside the
// selection loop; FindMostInfluential is the plain path over raw sets.
package cover

import (
	"fmt"
	"log/slog"

	"github.com/rrcover/rrcover/cover/internal/huffman"
	"github.com/rrcover/rrcover/internal/par"
)

// DefaultInlineBits is the longest code kept in the bitstream when Options
// leaves InlineBits unset. Longer codes spill to per-set copy lists.
const DefaultInlineBits = 32

// Options configures an Engine.
type Options struct {
	// K is the number of seeds to select. Zero selects nothing.
	K int

	// Lossy drops vertices whose code exceeds InlineBits instead of keeping
	// them in copy lists. Coverage reported against lossy sets may diverge
	// from the exact answer.
	Lossy bool

	// EagerRelease frees a set's storage the moment it is covered rather
	// than holding everything until the run finishes.
	EagerRelease bool

	// InlineBits caps the code length kept inline. Zero means
	// DefaultInlineBits.
	InlineBits int

	// Parallelism is the worker count. Zero or negative means one worker
	// per hardware thread.
	Parallelism int

	// Logger receives debug and warn records. Nil means slog.Default().
	Logger *slog.Logger
}

// Result is the outcome of a selection run.
type Result struct {
	// Coverage is the fraction of sets hit by at least one seed.
	Coverage float64

	// Seeds are the selected vertices in pick order.
	Seeds []uint32
}

// Engine holds the compressed sets and the state of one selection run.
type Engine struct {
	opts    Options
	workers int
	log     *slog.Logger

	cb       *huffman.Codebook
	sets     []huffman.Compressed
	counts   []uint32
	numVerts int
	maxSyms  int
}

// New builds the codebook from the given sets and compresses them. Each set
// must be sorted ascending with no duplicates and ids below numVertices; the
// raw sets are released as they are encoded. Returned errors are option or
// input validation failures.
func New(sets [][]uint32, numVertices int, opts Options) (*Engine, error) {
	if opts.K < 0 {
		return nil, fmt.Errorf("cover: negative seed count %d", opts.K)
	}
	if opts.K > numVertices {
		return nil, fmt.Errorf("cover: seed count %d exceeds vertex count %d", opts.K, numVertices)
	}
	if opts.InlineBits == 0 {
		opts.InlineBits = DefaultInlineBits
	}
	if opts.InlineBits < 1 {
		return nil, fmt.Errorf("cover: inline bit threshold %d below 1", opts.InlineBits)
	}
	for i, set := range sets {
		if len(set) > 0 && int(set[len(set)-1]) >= numVertices {
			return nil, fmt.Errorf("cover: set %d holds vertex %d, want ids below %d", i, set[len(set)-1], numVertices)
		}
	}
	e := &Engine{
		opts:     opts,
		workers:  par.Workers(opts.Parallelism),
		log:      opts.Logger,
		numVerts: numVertices,
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	e.counts = CountOccurrences(sets, numVertices, e.workers)
	e.cb = huffman.Build(e.counts)
	e.sets = e.cb.EncodeAll(sets, opts.Lossy, opts.InlineBits, e.workers)
	var streamBytes int
	for i := range e.sets {
		if n := e.sets[i].Symbols(); n > e.maxSyms {
			e.maxSyms = n
		}
		streamBytes += len(e.sets[i].Bytes)
	}
	e.log.Debug("sets encoded",
		"sets", len(e.sets),
		"symbols", e.cb.Symbols(),
		"inline_bits", opts.InlineBits,
		"lossy", opts.Lossy,
		"stream_bytes", streamBytes)
	return e, nil
}

// Run executes the greedy selection loop and reports the seeds picked and
// the fraction of sets they cover. Running out of coverable sets before K
// picks is not an error. An Engine supports a single Run.
func (e *Engine) Run() (Result, error) {
	seeds := make([]uint32, 0, e.opts.K)
	if e.opts.K == 0 || len(e.sets) == 0 {
		return Result{Seeds: seeds}, nil
	}
	covered := e.selectSeeds(&seeds)
	return Result{
		Coverage: float64(covered) / float64(len(e.sets)),
		Seeds:    seeds,
	}, nil
}

// FindMostInfluential selects k seeds directly over the raw sets, without
// compression. Sets must be sorted ascending with no duplicates; the slice
// is reordered in place.
func FindMostInfluential(sets [][]uint32, numVertices, k, parallelism int) (Result, error) {
	if k < 0 {
		return Result{}, fmt.Errorf("cover: negative seed count %d", k)
	}
	if k > numVertices {
		return Result{}, fmt.Errorf("cover: seed count %d exceeds vertex count %d", k, numVertices)
	}
	workers := par.Workers(parallelism)
	seeds := make([]uint32, 0, k)
	if k == 0 || len(sets) == 0 {
		return Result{Seeds: seeds}, nil
	}
	covered := selectUncompressed(sets, numVertices, k, workers, &seeds)
	return Result{
		Coverage: float64(covered) / float64(len(sets)),
		Seeds:    seeds,
	}, nil
}
