// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors:
//
//	– ErrEmptySource         if the provided source ID is empty.
//	– ErrNilGraph            if the provided graph pointer is nil.
//	– *UnknownSourceError    if the source vertex does not exist (matches ErrVertexNotFound).
//	– *InvalidWeightError    if any edge weight is negative (matches ErrNegativeWeight)
//	                         or a distance failed to parse (matches core.ErrInvalidEdge).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is matched by every *UnknownSourceError.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// UnknownSourceError reports a source label that is not a vertex of the graph.
type UnknownSourceError struct {
	Source string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("%s: %q", ErrVertexNotFound.Error(), e.Source)
}

// Is makes every UnknownSourceError match ErrVertexNotFound.
func (e *UnknownSourceError) Is(target error) bool { return target == ErrVertexNotFound }

// InvalidWeightError reports an edge whose distance cannot be used.
//
// Row is the 1-based input row (0 if unknown). Raw is the original text when
// the failure came from parsing. Err is the cause: ErrNegativeWeight, or a
// wrapped core.ErrInvalidEdge for text that is not a number.
type InvalidWeightError struct {
	Row    int
	From   string
	To     string
	Weight float64
	Raw    string
	Err    error
}

func (e *InvalidWeightError) Error() string {
	loc := fmt.Sprintf("edge %s→%s", e.From, e.To)
	if e.Row > 0 {
		loc = "row " + strconv.Itoa(e.Row) + " " + loc
	}
	if e.Raw != "" {
		return fmt.Sprintf("dijkstra: invalid weight at %s (%q): %v", loc, e.Raw, e.Err)
	}

	return fmt.Sprintf("dijkstra: invalid weight at %s weight=%g: %v", loc, e.Weight, e.Err)
}

// Unwrap exposes the cause.
func (e *InvalidWeightError) Unwrap() error { return e.Err }

// Path is the shortest route to one destination.
type Path struct {
	// Distance is the sum of edge weights along Nodes.
	Distance float64

	// Nodes runs from the source to the destination, both included.
	Nodes []string
}

// Result maps every reachable destination (the source included) to its Path.
// Unreachable vertices are absent.
type Result map[string]Path

// Distances flattens r into destination → distance.
func (r Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r))
	for id, p := range r {
		out[id] = p.Distance
	}

	return out
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID.
// MaxDistance      – vertices farther than this are not reported. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	Source           string
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on negative or NaN values (option constructors validate eagerly).
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID: no distance cap, no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
