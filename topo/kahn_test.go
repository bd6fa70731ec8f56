// SPDX-License-Identifier: MIT

package topo_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buildtrack/core"
	"github.com/katalvlaran/buildtrack/topo"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func build(t *testing.T, edges [][2]string, vertices ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	return g
}

func TestSort_NilGraph(t *testing.T) {
	order, err := topo.Sort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, topo.ErrGraphNil)
}

func TestSort_EmptyGraph(t *testing.T) {
	order, err := topo.Sort(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_NoEdgesKeepsInsertionOrder checks the tie-break is insertion order, not alphabetical.
func TestSort_NoEdgesKeepsInsertionOrder(t *testing.T) {
	g := build(t, nil, "C", "A", "B")
	order, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, order)
}

func TestSort_SimpleChain(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"B", "C"}})
	order, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestSort_FIFOQueue(t *testing.T) {
	// Roots R1, R2 are queued first; R1's children follow R2 (FIFO, not DFS).
	g := build(t, [][2]string{{"R1", "X"}, {"R1", "Y"}, {"R2", "Z"}}, "R1", "R2")
	order, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1", "R2", "X", "Y", "Z"}, order)
}

func TestSort_DuplicateEdgesCountOnce(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}, {"A", "B"}})
	order, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestSort_TwoCycle(t *testing.T) {
	g := build(t, [][2]string{{"B", "A"}, {"A", "B"}}, "A", "B")
	order, err := topo.Sort(g)
	assert.Nil(t, order)
	require.ErrorIs(t, err, topo.ErrCycleDetected)

	var ce *topo.CycleDetectedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"A", "B"}, ce.Remaining)
	assert.Equal(t, []string{"A", "B", "A"}, ce.Cycle)
	assert.Equal(t, "topo: cycle detected: A → B → A", err.Error())
}

func TestSort_SelfLoop(t *testing.T) {
	g := build(t, [][2]string{{"A", "A"}})
	_, err := topo.Sort(g)
	var ce *topo.CycleDetectedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"A", "A"}, ce.Cycle)
}

func TestSort_CycleWithDownstreamAndUpstream(t *testing.T) {
	// Root → B → C → D → B, and D → Tail. Root sorts; B, C, D, Tail remain.
	g := build(t, [][2]string{
		{"Root", "B"}, {"B", "C"}, {"C", "D"}, {"D", "B"}, {"D", "Tail"},
	})
	_, err := topo.Sort(g)
	var ce *topo.CycleDetectedError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []string{"B", "C", "D", "Tail"}, ce.Remaining)
	assert.Equal(t, []string{"B", "C", "D", "B"}, ce.Cycle)
	for i := 0; i+1 < len(ce.Cycle); i++ {
		assert.True(t, g.HasEdge(ce.Cycle[i], ce.Cycle[i+1]), "cycle step %d", i)
	}
}

func TestSort_Cancelled(t *testing.T) {
	g := build(t, [][2]string{{"A", "B"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := topo.Sort(g, topo.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSort_RandomDAGProperty generates DAGs whose edges always point from a
// lower to a higher index, then checks every edge is respected and the
// result is repeatable.
func TestSort_RandomDAGProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 2 + rng.Intn(20)
		g := core.NewGraph()
		perm := rng.Perm(n)
		for _, i := range perm {
			require.NoError(t, g.AddVertex(fmt.Sprintf("T%d", i)))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.3 {
					require.NoError(t, g.AddEdge(fmt.Sprintf("T%d", i), fmt.Sprintf("T%d", j), 0))
				}
			}
		}

		order, err := topo.Sort(g)
		require.NoError(t, err)
		require.Len(t, order, n)
		assert.ElementsMatch(t, g.Vertices(), order)
		for _, e := range g.Edges() {
			assert.Less(t, position(order, e.From), position(order, e.To), "edge %s→%s", e.From, e.To)
		}

		again, err := topo.Sort(g)
		require.NoError(t, err)
		assert.Equal(t, order, again)
	}
}
