// SPDX-License-Identifier: MIT

// Package route builds a weighted routing network from (From, To, Distance)
// rows and answers single-source shortest-path queries over it.
package route

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/buildtrack/bfs"
	"github.com/katalvlaran/buildtrack/core"
	"github.com/katalvlaran/buildtrack/dijkstra"
)

// RawRow is a route row as read from a file, before the distance is parsed.
type RawRow struct {
	From     string `json:"From" yaml:"From"`
	To       string `json:"To" yaml:"To"`
	Distance string `json:"Distance" yaml:"Distance"`

	// Row is the 1-based record number in the source file, or 0 when rows
	// are numbered by position.
	Row int `json:"-" yaml:"-"`
}

// RouteRow is a parsed route row. Row is carried over from RawRow.
type RouteRow struct {
	From     string
	To       string
	Distance float64
	Row      int
}

// Limits bounds the size of the graph built from untrusted input.
// Zero fields mean unlimited.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// ParseRows converts raw rows into RouteRows.
//
// From and To are trimmed and must be non-empty (*core.InvalidEdgeError).
// Distance must parse as a finite float; text that does not fails with
// *dijkstra.InvalidWeightError wrapping core.ErrInvalidEdge, and a negative
// value fails with *dijkstra.InvalidWeightError wrapping
// dijkstra.ErrNegativeWeight. Parsing stops at the first bad row.
func ParseRows(raw []RawRow) ([]RouteRow, error) {
	rows := make([]RouteRow, 0, len(raw))
	for i, r := range raw {
		row := rowNumber(r.Row, i)
		from, to := strings.TrimSpace(r.From), strings.TrimSpace(r.To)
		if from == "" || to == "" {
			return nil, &core.InvalidEdgeError{Row: row, From: from, To: to, Err: core.ErrEmptyVertexID}
		}
		text := strings.TrimSpace(r.Distance)
		d, err := strconv.ParseFloat(text, 64)
		if err != nil || !finite(d) {
			return nil, &dijkstra.InvalidWeightError{
				Row: row, From: from, To: to, Raw: r.Distance,
				Err: fmt.Errorf("%w: distance is not a finite number", core.ErrInvalidEdge),
			}
		}
		if d < 0 {
			return nil, &dijkstra.InvalidWeightError{Row: row, From: from, To: to, Weight: d, Raw: r.Distance, Err: dijkstra.ErrNegativeWeight}
		}
		rows = append(rows, RouteRow{From: from, To: to, Distance: d, Row: r.Row})
	}

	return rows, nil
}

// rowNumber prefers the source record number and falls back to position.
func rowNumber(row, index int) int {
	if row > 0 {
		return row
	}

	return index + 1
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Build creates a weighted graph with one edge per row. Every row is
// validated for non-negative distance before any edge is inserted, so a
// negative weight anywhere fails the whole batch with
// *dijkstra.InvalidWeightError. Repeated From→To pairs keep the last distance.
func Build(rows []RouteRow, limits Limits) (*core.Graph, error) {
	for i, r := range rows {
		if r.Distance < 0 {
			return nil, &dijkstra.InvalidWeightError{Row: rowNumber(r.Row, i), From: r.From, To: r.To, Weight: r.Distance, Err: dijkstra.ErrNegativeWeight}
		}
	}

	g := core.NewGraph(
		core.WithWeighted(),
		core.WithMaxVertices(limits.MaxNodes),
		core.WithMaxEdges(limits.MaxEdges),
	)
	for i, r := range rows {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, core.AtRow(err, rowNumber(r.Row, i))
		}
	}

	return g, nil
}

// Option configures ShortestPaths.
type Option func(*settings)

type settings struct {
	limits Limits
	algo   []dijkstra.Option
	ctx    context.Context
}

// WithLimits bounds graph size.
func WithLimits(l Limits) Option {
	return func(s *settings) { s.limits = l }
}

// WithContext makes the reachability walk behind Query cancellable.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithDijkstraOptions forwards extra options (thresholds, distance caps) to the solver.
func WithDijkstraOptions(opts ...dijkstra.Option) Option {
	return func(s *settings) { s.algo = append(s.algo, opts...) }
}

// ShortestPaths builds a fresh route graph from rows and returns the shortest
// distance and path from source to every reachable location.
//
// Any vertex of the graph is accepted as source, including locations that
// only ever appear in the To column. Sources lists the narrower pick-list of
// From values for presentation layers that want it.
//
// Errors:
//   - *dijkstra.InvalidWeightError if any distance is negative.
//   - *dijkstra.UnknownSourceError if source is not a location in rows.
//   - *core.InvalidEdgeError for a malformed row or a size limit breach.
func ShortestPaths(rows []RouteRow, source string, opts ...Option) (dijkstra.Result, error) {
	rep, err := Query(rows, source, opts...)
	if err != nil {
		return nil, err
	}

	return rep.Paths, nil
}

// Report is a shortest-path answer plus the locations it leaves out.
type Report struct {
	Paths dijkstra.Result

	// Unreachable lists locations with no directed path from the source.
	Unreachable []string

	// OutOfRange lists locations that have a path but were cut off by a
	// distance cap, an impassable-edge threshold or an overflowing total.
	OutOfRange []string

	// Stats describes the graph the answer was computed on.
	Stats core.GraphStats
}

// Query runs ShortestPaths and classifies every location it omits, in
// graph insertion order. Errors are those of ShortestPaths.
func Query(rows []RouteRow, source string, opts ...Option) (*Report, error) {
	s := settings{ctx: context.Background()}
	for _, opt := range opts {
		opt(&s)
	}

	g, err := Build(rows, s.limits)
	if err != nil {
		return nil, err
	}
	if source == "" || !g.HasVertex(source) {
		return nil, &dijkstra.UnknownSourceError{Source: source}
	}

	algo := append([]dijkstra.Option{dijkstra.Source(source)}, s.algo...)
	paths, err := dijkstra.Dijkstra(g, algo...)
	if err != nil {
		return nil, err
	}
	reach, err := bfs.BFS(g, source, bfs.WithContext(s.ctx))
	if err != nil {
		return nil, err
	}

	rep := &Report{Paths: paths, Stats: *g.Stats()}
	for _, id := range g.Vertices() {
		if _, ok := paths[id]; ok {
			continue
		}
		if reach.Reached(id) {
			rep.OutOfRange = append(rep.OutOfRange, id)
		} else {
			rep.Unreachable = append(rep.Unreachable, id)
		}
	}

	return rep, nil
}

// Sources returns the distinct From labels in first-appearance order: the
// warehouses a user would pick an origin from.
func Sources(rows []RouteRow) []string {
	seen := make(map[string]struct{}, len(rows))
	var out []string
	for _, r := range rows {
		if _, ok := seen[r.From]; ok {
			continue
		}
		seen[r.From] = struct{}{}
		out = append(out, r.From)
	}

	return out
}
