// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E stale entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - All edges are scanned up front (O(E)) so a negative weight fails before any distance is computed.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable wall.
//   - A route whose total overflows to +Inf is not traversable, so every reported distance is finite.
//   - Heap entries with equal distance pop in push order, so ties resolve the same way for identical input.
//   - Relaxation uses a strict "<", so among equal-cost routes the first one found is kept.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/buildtrack/core"
)

// Dijkstra computes shortest paths from Options.Source to every vertex
// reachable in g.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (*UnknownSourceError).
//  4. No edge in g can have negative weight (*InvalidWeightError).
//
// The returned Result always contains the source itself at distance 0.
func Dijkstra(g *core.Graph, opts ...Option) (Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, &UnknownSourceError{Source: cfg.Source}
	}
	if err := CheckWeights(g); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// CheckWeights scans every recorded edge of g and reports the first negative
// weight as *InvalidWeightError. Duplicate edges are checked individually, so a
// negative weight later overwritten by a positive one is still rejected.
func CheckWeights(g *core.Graph) error {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return &InvalidWeightError{From: e.From, To: e.To, Weight: e.Weight, Err: ErrNegativeWeight}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64 // best known distance; absent = not yet discovered
	prev    map[string]string  // predecessor on the best known path
	visited map[string]bool    // distance finalized
	settled []string           // vertices in the order they were finalized
	pq      nodePQ
	seq     uint64 // push counter for tie-breaking
}

// init seeds the source at distance zero.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process repeatedly extracts the closest undetermined vertex and relaxes its
// outgoing edges until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.settled = append(r.settled, u)
		r.relax(u, item.dist)
	}
}

// relax tries to improve every successor of u reached through u.
func (r *runner) relax(u string, du float64) {
	for v, w := range r.g.Neighbors(u) {
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if r.visited[v] {
			continue
		}
		nd := du + w
		// Finite weights can still sum past MaxFloat64.
		if math.IsInf(nd, 1) || nd > r.options.MaxDistance {
			continue
		}
		if best, seen := r.dist[v]; seen && nd >= best {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}
}

// result reconstructs a Path for every settled vertex. Vertices are processed
// in settle order, so each predecessor's path already exists when needed.
func (r *runner) result() Result {
	out := make(Result, len(r.settled))
	for _, v := range r.settled {
		if v == r.options.Source {
			out[v] = Path{Distance: 0, Nodes: []string{v}}
			continue
		}
		parent := out[r.prev[v]].Nodes
		nodes := make([]string, len(parent)+1)
		copy(nodes, parent)
		nodes[len(parent)] = v
		out[v] = Path{Distance: r.dist[v], Nodes: nodes}
	}

	return out
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
