// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

package rrr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrcover/rrcover/graph"
)

// lineGraph is the path 0 -> 1 -> ... -> n-1, so exactly the vertices at or
// below the root can reach it.
func lineGraph(t *testing.T, n int) *graph.CSR {
	t.Helper()
	edges := make([]graph.Edge, 0, n-1)
	for v := 0; v < n-1; v++ {
		edges = append(edges, graph.Edge{Src: uint32(v), Dst: uint32(v + 1)})
	}
	g, err := graph.FromEdges(n, edges)
	require.NoError(t, err)
	return g
}

func checkSets(t *testing.T, sets [][]uint32, numVertices int) {
	t.Helper()
	for i, set := range sets {
		require.NotEmpty(t, set, "set %d", i)
		for j := range set {
			require.Less(t, int(set[j]), numVertices, "set %d", i)
			if j > 0 {
				require.Greater(t, set[j], set[j-1], "set %d is not sorted or has duplicates", i)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := lineGraph(t, 32)
	opts := Options{Model: IC, Probability: 0.3, Seed: 9, Parallelism: 4}
	a := Generate(g, 200, opts)
	b := Generate(g, 200, opts)
	require.Equal(t, a, b)

	opts.Seed = 10
	c := Generate(g, 200, opts)
	assert.NotEqual(t, a, c)
}

func TestGenerateCertainEdges(t *testing.T) {
	// With probability one the walk collects everything that reaches the
	// root, which on a path is the full prefix up to it.
	g := lineGraph(t, 16)
	sets := Generate(g, 100, Options{Model: IC, Probability: 1, Seed: 3, Parallelism: 2})
	checkSets(t, sets, 16)
	for i, set := range sets {
		for j, v := range set {
			require.Equal(t, uint32(j), v, "set %d must be the prefix ending at its root", i)
		}
	}
}

func TestGenerateLinearThreshold(t *testing.T) {
	// Every vertex on the path has at most one in-edge, so LT follows it
	// always and the sets match the certain-edge case.
	g := lineGraph(t, 16)
	sets := Generate(g, 100, Options{Model: LT, Seed: 3, Parallelism: 2})
	checkSets(t, sets, 16)
	for i, set := range sets {
		for j, v := range set {
			require.Equal(t, uint32(j), v, "set %d", i)
		}
	}
}

func TestGenerateIsolatedVertices(t *testing.T) {
	g, err := graph.FromEdges(8, nil)
	require.NoError(t, err)
	sets := Generate(g, 50, Options{Model: IC, Probability: 0.5, Seed: 1})
	checkSets(t, sets, 8)
	for i, set := range sets {
		require.Len(t, set, 1, "set %d holds only its root", i)
	}
}

func TestGenerateEmptyGraph(t *testing.T) {
	g, err := graph.FromEdges(0, nil)
	require.NoError(t, err)
	sets := Generate(g, 10, Options{Model: IC, Probability: 0.5})
	require.Len(t, sets, 10)
	for _, set := range sets {
		assert.Nil(t, set)
	}
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("IC")
	require.NoError(t, err)
	assert.Equal(t, IC, m)
	m, err = ParseModel("lt")
	require.NoError(t, err)
	assert.Equal(t, LT, m)
	_, err = ParseModel("pagerank")
	assert.Error(t, err)

	assert.Equal(t, "ic", IC.String())
	assert.Equal(t, "lt", LT.String())
}
