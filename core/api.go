// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over configuration and size.
// Policy:
//   - No algorithms or hidden state here.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Weighted      bool // non-zero weights permitted
	VertexCount   int  // distinct vertices
	EdgeCount     int  // distinct from→to pairs
	RecordedEdges int  // AddEdge calls, duplicates included
	MaxVertices   int  // 0 = unlimited
	MaxEdges      int  // 0 = unlimited
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Stats produces a snapshot of flags and sizes.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, capture flags and vertex count.
//   - Stage 2: Under muEdgeAdj.RLock, capture edge counts.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Weighted:    g.weighted,
		VertexCount: len(g.vertices),
		MaxVertices: g.maxVertices,
		MaxEdges:    g.maxEdges,
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.pairs
	stats.RecordedEdges = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}
