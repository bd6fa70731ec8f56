// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption and the NewGraph constructor.
// Concurrency:
//   - muVert guards vertices and vertex order; muEdgeAdj guards edges and adjacency.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import "sync"

// Vertex represents a node in the graph. It carries no payload beyond identity.
type Vertex struct {
	// ID is the unique label of this Vertex within its Graph.
	ID string
}

// Edge is one recorded AddEdge call: a directed link From→To with a Weight.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. Always 0 on unweighted graphs.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMaxVertices caps the number of distinct vertices. Zero or negative means unlimited.
func WithMaxVertices(n int) GraphOption {
	return func(g *Graph) { g.maxVertices = n }
}

// WithMaxEdges caps the number of recorded edges (duplicates included).
// Zero or negative means unlimited.
func WithMaxEdges(n int) GraphOption {
	return func(g *Graph) { g.maxEdges = n }
}

// adjacency holds the de-duplicated outgoing (or incoming) links of one vertex.
// order lists peers by first insertion; weight holds the last written weight.
type adjacency struct {
	order  []string
	weight map[string]float64
}

// set records peer with weight w and reports whether peer was new.
func (a *adjacency) set(peer string, w float64) bool {
	_, seen := a.weight[peer]
	if !seen {
		a.order = append(a.order, peer)
	}
	a.weight[peer] = w

	return !seen
}

// Graph is a directed in-memory graph with insertion-ordered enumeration.
//
// vertexOrder mirrors vertices in first-insertion order; edges keeps every
// AddEdge call; out/in are the de-duplicated adjacency views used by algorithms.
type Graph struct {
	muVert    sync.RWMutex // guards vertices and vertexOrder
	muEdgeAdj sync.RWMutex // guards edges, out and in

	// Configuration flags
	weighted    bool // allow non-zero weights
	maxVertices int  // 0 = unlimited
	maxEdges    int  // 0 = unlimited

	// Storage
	vertices    map[string]*Vertex
	vertexOrder []string
	edges       []Edge
	out         map[string]*adjacency // from → successors
	in          map[string]*adjacency // to → predecessors
	pairs       int                   // number of distinct (from,to) pairs
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted and unbounded.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		out:      make(map[string]*adjacency),
		in:       make(map[string]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
