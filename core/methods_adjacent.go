// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Predecessors).
// Determinism:
//   - Peers are yielded in the order the pair was first inserted.
//   - Weights are the last written value for the pair.
// Concurrency:
//   - A snapshot is taken under muEdgeAdj read lock; yielding happens unlocked,
//     so the consumer may call back into the graph.

package core

import "iter"

// Neighbors returns a lazy sequence of (successor, weight) pairs for the
// outgoing edges of id. The sequence is finite and restartable: every range
// over it takes a fresh snapshot. An unknown or empty id yields nothing.
//
// Complexity:
//   - Time O(d) per pass, Space O(d) for the snapshot.
func (g *Graph) Neighbors(id string) iter.Seq2[string, float64] {
	return g.peers(g.out, id)
}

// Predecessors is the reverse of Neighbors: (predecessor, weight) pairs for
// the incoming edges of id.
func (g *Graph) Predecessors(id string) iter.Seq2[string, float64] {
	return g.peers(g.in, id)
}

type peer struct {
	id string
	w  float64
}

func (g *Graph) peers(side map[string]*adjacency, id string) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		g.muEdgeAdj.RLock()
		a, ok := side[id]
		if !ok {
			g.muEdgeAdj.RUnlock()
			return
		}
		snap := make([]peer, len(a.order))
		for i, p := range a.order {
			snap[i] = peer{id: p, w: a.weight[p]}
		}
		g.muEdgeAdj.RUnlock()

		for _, p := range snap {
			if !yield(p.id, p.w) {
				return
			}
		}
	}
}
