// SPDX-License-Identifier: MIT

// Package scheduler turns task rows with comma-separated dependencies into a
// dependency graph and a legal execution order.
//
// An edge dep → task means "task requires dep to complete first". The graph
// must be acyclic; a cycle is reported as *topo.CycleDetectedError and no
// partial order is ever returned.
package scheduler

import (
	"context"
	"strings"

	"github.com/katalvlaran/buildtrack/core"
	"github.com/katalvlaran/buildtrack/topo"
)

// TaskRow is one input row: a task label and its dependency list.
// DependsOn is comma-separated; blank means no dependencies.
type TaskRow struct {
	Task      string `json:"Task" yaml:"Task"`
	DependsOn string `json:"DependsOn" yaml:"DependsOn"`

	// Row is the 1-based record number in the source file, or 0 when rows
	// are numbered by position.
	Row int `json:"-" yaml:"-"`
}

// Dependency is one dep → task link as it appeared in the input.
type Dependency struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ExecutionOrder lists task labels so that every dependency precedes its dependents.
type ExecutionOrder []string

// Plan is the outcome of a successful Schedule call.
type Plan struct {
	// Order is the execution order.
	Order ExecutionOrder `json:"order"`

	// Dependencies lists every dep → task link in input order. Repeated
	// tokens are kept, matching what the user wrote.
	Dependencies []Dependency `json:"dependencies"`
}

// Limits bounds the size of the graph built from untrusted input.
// Zero fields mean unlimited.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// Option configures Schedule.
type Option func(*settings)

type settings struct {
	limits Limits
	ctx    context.Context
}

// WithLimits bounds graph size.
func WithLimits(l Limits) Option {
	return func(s *settings) { s.limits = l }
}

// WithContext makes the sort cancellable.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// SplitDependencies splits a DependsOn cell on commas, trims whitespace and
// drops empty tokens.
func SplitDependencies(cell string) []string {
	var deps []string
	for _, tok := range strings.Split(cell, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			deps = append(deps, tok)
		}
	}

	return deps
}

// Build registers each row's task as a vertex and adds an edge dep → task
// for every dependency token. Rows are processed in order, so vertex
// insertion order (and with it the scheduling tie-break) follows the input.
//
// A row with a blank Task fails with *core.InvalidEdgeError carrying
// TaskRow.Row, or the 1-based position when Row is 0; Build stops at the
// first failing row.
func Build(rows []TaskRow, limits Limits) (*core.Graph, []Dependency, error) {
	g := core.NewGraph(core.WithMaxVertices(limits.MaxNodes), core.WithMaxEdges(limits.MaxEdges))
	var deps []Dependency
	for i, row := range rows {
		n := i + 1
		if row.Row > 0 {
			n = row.Row
		}
		task := strings.TrimSpace(row.Task)
		if task == "" {
			return nil, nil, &core.InvalidEdgeError{Row: n, Raw: row.DependsOn, Err: core.ErrEmptyVertexID}
		}
		if err := g.AddVertex(task); err != nil {
			return nil, nil, &core.InvalidEdgeError{Row: n, To: task, Err: err}
		}
		for _, dep := range SplitDependencies(row.DependsOn) {
			if err := g.AddEdge(dep, task, 0); err != nil {
				return nil, nil, core.AtRow(err, n)
			}
			deps = append(deps, Dependency{From: dep, To: task})
		}
	}

	return g, deps, nil
}

// Schedule builds a fresh dependency graph from rows and orders it.
//
// Errors:
//   - *core.InvalidEdgeError for a malformed row or a size limit breach.
//   - *topo.CycleDetectedError if the dependencies contain a cycle.
func Schedule(rows []TaskRow, opts ...Option) (*Plan, error) {
	s := settings{ctx: context.Background()}
	for _, opt := range opts {
		opt(&s)
	}

	g, deps, err := Build(rows, s.limits)
	if err != nil {
		return nil, err
	}
	order, err := topo.Sort(g, topo.WithContext(s.ctx))
	if err != nil {
		return nil, err
	}

	return &Plan{Order: order, Dependencies: deps}, nil
}
