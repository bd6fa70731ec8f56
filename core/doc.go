// SPDX-License-Identifier: MIT

// Package core provides the directed, optionally weighted in-memory Graph
// shared by the dependency scheduler and the route optimizer.
//
// The Graph G = (V,E) is built fresh for every request and is read-only
// once construction finishes:
//
//   - Vertices are unique by label and remember first-insertion order.
//   - Edges are directed. Every AddEdge call is recorded in Edges() (duplicates
//     included) while the adjacency view keeps one entry per ordered pair whose
//     weight is the last one written.
//   - Weights are float64. Unweighted graphs accept only zero weights
//     (WithWeighted lifts that restriction).
//   - Optional capacity limits (WithMaxVertices, WithMaxEdges) bound the size
//     of untrusted input.
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors() and Predecessors() all enumerate in
//	insertion order, never in map order. Algorithms that consume them inherit
//	a stable tie-break for identical input.
//
// Core methods:
//
//	AddVertex(id string) error                          // O(1)
//	AddEdge(from, to string, weight float64) error      // O(1) amortized
//	HasVertex(id string) bool                           // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	Weight(from, to string) (float64, bool)             // O(1)
//	Neighbors(id string) iter.Seq2[string, float64]     // O(d) per pass
//	Predecessors(id string) iter.Seq2[string, float64]  // O(d) per pass
//	InDegree(id string) int                             // O(1)
//	Vertices() []string                                 // O(V)
//	Edges() []Edge                                      // O(E)
//	VertexCount(), EdgeCount() int                      // O(1)
//	Stats() *GraphStats                                 // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex label is the empty string.
//	ErrBadWeight      - non-finite weight, or non-zero weight on an unweighted graph.
//	ErrTooLarge       - a WithMaxVertices/WithMaxEdges limit was exceeded.
//	ErrInvalidEdge    - matched by every *InvalidEdgeError.
package core
