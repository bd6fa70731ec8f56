// SPDX-License-Identifier: MIT

// Package bfs walks a core.Graph breadth-first from a start vertex, following
// edge direction and ignoring weights, and reports hop depths and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/buildtrack/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from startID. Successors are
// expanded in the graph's neighbor order, so the visit order is deterministic.
// Returns ErrGraphNil, ErrStartVertexNotFound or a context error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		for nbr := range w.graph.Neighbors(item.id) {
			if !w.res.Reached(nbr) {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return nil
}
