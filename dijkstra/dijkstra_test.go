// SPDX-License-Identifier: MIT

// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation order, basic distances and paths, thresholds, tie-breaking and
// an optimality check against exhaustive search.
package dijkstra_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buildtrack/core"
	"github.com/katalvlaran/buildtrack/dijkstra"
)

type wedge struct {
	U, V string
	W    float64
}

func weighted(t *testing.T, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.U, e.V, e.W))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	_, err := dijkstra.Dijkstra(core.NewGraph(core.WithWeighted()))
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// Empty source has priority over a nil graph.
	_, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnknownSource(t *testing.T) {
	g := weighted(t, wedge{"X", "Y", 3})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("W"))
	assert.Nil(t, res)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	var ue *dijkstra.UnknownSourceError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "W", ue.Source)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	// The negative edge is unreachable from the source; it must still be rejected.
	g := weighted(t, wedge{"A", "B", 1}, wedge{"C", "D", -5})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.Nil(t, res)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	var we *dijkstra.InvalidWeightError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, "C", we.From)
	assert.Equal(t, "D", we.To)
	assert.Equal(t, -5.0, we.Weight)
}

func TestDijkstra_NegativeDuplicateStillRejected(t *testing.T) {
	g := weighted(t, wedge{"A", "B", -1}, wedge{"A", "B", 2})
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

// TestDijkstra_ViaIntermediate: (X,Y,5), (Y,Z,2), (X,Z,10) from X.
func TestDijkstra_ViaIntermediate(t *testing.T) {
	g := weighted(t, wedge{"X", "Y", 5}, wedge{"Y", "Z", 2}, wedge{"X", "Z", 10})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.NoError(t, err)

	want := dijkstra.Result{
		"X": {Distance: 0, Nodes: []string{"X"}},
		"Y": {Distance: 5, Nodes: []string{"X", "Y"}},
		"Z": {Distance: 7, Nodes: []string{"X", "Y", "Z"}},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Dijkstra mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]float64{"X": 0, "Y": 5, "Z": 7}, res.Distances())
}

func TestDijkstra_UnreachableAbsent(t *testing.T) {
	g := weighted(t, wedge{"X", "Y", 3})
	require.NoError(t, g.AddVertex("W"))
	require.NoError(t, g.AddEdge("W", "X", 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.NotContains(t, res, "W")
}

func TestDijkstra_DirectedOnly(t *testing.T) {
	g := weighted(t, wedge{"A", "B", 1})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Result{"B": {Distance: 0, Nodes: []string{"B"}}}, res)
}

func TestDijkstra_DuplicateEdgeUsesLastWeight(t *testing.T) {
	g := weighted(t, wedge{"A", "B", 1}, wedge{"A", "B", 9})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 9.0, res["B"].Distance)
}

func TestDijkstra_FractionalAndZeroWeights(t *testing.T) {
	g := weighted(t, wedge{"A", "B", 0}, wedge{"B", "C", 1.5}, wedge{"A", "C", 1.75})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, res["C"].Distance, 1e-12)
	assert.Equal(t, []string{"A", "B", "C"}, res["C"].Nodes)
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g := weighted(t, wedge{"A", "A", 1}, wedge{"A", "B", 2})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res["A"].Nodes)
	assert.Equal(t, 2.0, res["B"].Distance)
}

// TestDijkstra_TieBreakDeterministic: two equal-cost routes to D; the one
// discovered first (via B, inserted first) wins every time.
func TestDijkstra_TieBreakDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		g := weighted(t,
			wedge{"A", "B", 1}, wedge{"A", "C", 1},
			wedge{"B", "D", 1}, wedge{"C", "D", 1},
		)
		res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, res["D"].Nodes)
	}
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := weighted(t, wedge{"A", "B", 2}, wedge{"B", "C", 4}, wedge{"A", "C", 10}, wedge{"C", "D", 7})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res["C"].Distance)
	assert.NotContains(t, res, "D", "C→D is a wall")
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t, wedge{"A", "B", 2}, wedge{"B", "C", 2}, wedge{"C", "D", 2})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Contains(t, res, "C")
	assert.NotContains(t, res, "D")
}

func TestDijkstra_OverflowingSumNotTraversable(t *testing.T) {
	g := weighted(t, wedge{"A", "B", 1e308}, wedge{"B", "C", 1e308}, wedge{"A", "D", 1})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 1e308, res["B"].Distance)
	assert.NotContains(t, res, "C")
	for id, p := range res {
		assert.False(t, math.IsInf(p.Distance, 0), id)
	}
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// bruteForce returns the minimum path cost from src to every reachable
// vertex by exhaustive simple-path enumeration.
func bruteForce(g *core.Graph, src string) map[string]float64 {
	best := map[string]float64{}
	onPath := map[string]bool{}
	var walk func(u string, d float64)
	walk = func(u string, d float64) {
		if cur, ok := best[u]; !ok || d < cur {
			best[u] = d
		}
		onPath[u] = true
		for v, w := range g.Neighbors(u) {
			if !onPath[v] {
				walk(v, d+w)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

func TestDijkstra_RandomGraphsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 40; round++ {
		n := 2 + rng.Intn(7)
		g := core.NewGraph(core.WithWeighted())
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("N%d", i)))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.35 {
					w := float64(rng.Intn(10))
					require.NoError(t, g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", j), w))
				}
			}
		}

		res, err := dijkstra.Dijkstra(g, dijkstra.Source("N0"))
		require.NoError(t, err)
		assert.Equal(t, bruteForce(g, "N0"), res.Distances())

		for dest, p := range res {
			require.Equal(t, "N0", p.Nodes[0])
			require.Equal(t, dest, p.Nodes[len(p.Nodes)-1])
			sum := 0.0
			for i := 0; i+1 < len(p.Nodes); i++ {
				w, ok := g.Weight(p.Nodes[i], p.Nodes[i+1])
				require.True(t, ok, "path step %s→%s must be an edge", p.Nodes[i], p.Nodes[i+1])
				sum += w
			}
			assert.Equal(t, p.Distance, sum)
		}
	}
}
