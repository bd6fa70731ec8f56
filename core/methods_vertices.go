// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in first-insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).

package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, enforce the
//     WithMaxVertices limit, then register the vertex and append it to the order.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap empty adjacency buckets.
//     The vertex is visible in the catalog and adjacency at the same time.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrTooLarge: if adding id would exceed WithMaxVertices.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	if g.maxVertices > 0 && len(g.vertices) >= g.maxVertices {
		return fmt.Errorf("%w: more than %d vertices", ErrTooLarge, g.maxVertices)
	}

	g.muEdgeAdj.Lock()
	g.insertVertexLocked(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// insertVertexLocked registers id with empty adjacency buckets if missing.
// Caller holds muVert and muEdgeAdj write locks.
func (g *Graph) insertVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.vertexOrder = append(g.vertexOrder, id)
	g.out[id] = &adjacency{weight: make(map[string]float64)}
	g.in[id] = &adjacency{weight: make(map[string]float64)}
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertices returns every vertex ID in first-insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// InDegree returns the number of distinct predecessors of id (0 if id is unknown).
// Complexity: O(1).
func (g *Graph) InDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if a, ok := g.in[id]; ok {
		return len(a.order)
	}

	return 0
}
