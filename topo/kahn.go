// SPDX-License-Identifier: MIT

// Package topo computes topological orderings with Kahn's algorithm.
//
// Sort both validates and orders in one pass: if the ready queue drains before
// every vertex has been emitted, the leftover vertices contain a cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package topo

import (
	"github.com/katalvlaran/buildtrack/core"
)

// Sort returns the vertices of g such that for every edge u→v, u precedes v.
//
// Tie-break: the ready queue is FIFO, seeded with zero in-degree vertices in
// vertex insertion order, and successors are released in the order their edge
// was first inserted. Identical input therefore yields identical output.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - *CycleDetectedError if g contains a cycle (no partial order is returned).
//   - ctx.Err() if the WithContext context is cancelled.
func Sort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	verts := g.Vertices()
	inDegree := make(map[string]int, len(verts))
	queue := make([]string, 0, len(verts))
	for _, v := range verts {
		d := g.InDegree(v)
		inDegree[v] = d
		if d == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(verts))
	for head := 0; head < len(queue); head++ {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[head]
		order = append(order, u)
		for v := range g.Neighbors(u) {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(order) == len(verts) {
		return order, nil
	}

	remaining := make([]string, 0, len(verts)-len(order))
	for _, v := range verts {
		if inDegree[v] > 0 {
			remaining = append(remaining, v)
		}
	}

	return nil, &CycleDetectedError{
		Remaining: remaining,
		Cycle:     findCycle(g, remaining, inDegree),
	}
}
