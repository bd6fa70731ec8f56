// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns every recorded edge in insertion order, duplicates kept.
// Concurrency:
//   - AddEdge holds muVert then muEdgeAdj for the whole mutation.

package core

import (
	"fmt"
	"math"
)

// AddEdge records a directed edge from→to with the given weight, creating
// both endpoints if absent.
//
// Steps:
//  1. Validate IDs and weight (finite; zero unless WithWeighted).
//  2. Under both write locks, enforce WithMaxEdges and check that every
//     missing endpoint fits WithMaxVertices before inserting either one.
//  3. Insert missing endpoints.
//  4. Append to the edge log and upsert the adjacency views (last write wins).
//
// A rejected edge leaves the graph unchanged.
//
// Every failure is returned as *InvalidEdgeError carrying From/To, so callers
// can test errors.Is(err, ErrInvalidEdge) as well as the specific cause.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return &InvalidEdgeError{From: from, To: to, Err: ErrEmptyVertexID}
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return &InvalidEdgeError{From: from, To: to, Err: fmt.Errorf("%w: %v is not finite", ErrBadWeight, weight)}
	}
	if !g.weighted && weight != 0 {
		return &InvalidEdgeError{From: from, To: to, Err: fmt.Errorf("%w: unweighted graph got %v", ErrBadWeight, weight)}
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if g.maxEdges > 0 && len(g.edges) >= g.maxEdges {
		return &InvalidEdgeError{From: from, To: to, Err: fmt.Errorf("%w: more than %d edges", ErrTooLarge, g.maxEdges)}
	}
	missing := 0
	if _, ok := g.vertices[from]; !ok {
		missing++
	}
	if _, ok := g.vertices[to]; !ok && to != from {
		missing++
	}
	if g.maxVertices > 0 && len(g.vertices)+missing > g.maxVertices {
		return &InvalidEdgeError{From: from, To: to, Err: fmt.Errorf("%w: more than %d vertices", ErrTooLarge, g.maxVertices)}
	}
	g.insertVertexLocked(from)
	g.insertVertexLocked(to)

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	if g.out[from].set(to, weight) {
		g.pairs++
	}
	g.in[to].set(from, weight)

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' was added.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the effective (last written) weight of from→to.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	a, ok := g.out[from]
	if !ok {
		return 0, false
	}
	w, ok := a.weight[to]

	return w, ok
}

// Edges returns a copy of every recorded edge in insertion order.
// Duplicate from→to pairs appear once per AddEdge call, each with the weight
// supplied at that call.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of distinct from→to pairs in the adjacency view.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.pairs
}
