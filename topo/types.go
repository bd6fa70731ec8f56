// SPDX-License-Identifier: MIT

// Package topo defines errors and options for topological ordering of
// directed core.Graphs.
package topo

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrCycleDetected is matched by every *CycleDetectedError.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// CycleDetectedError reports that the graph is not a DAG.
//
// Remaining lists every vertex the sort could not emit, in vertex insertion
// order: the members of cycles plus everything downstream of them.
// Cycle is one concrete cycle among them, closed (first == last), e.g.
// [A B A].
type CycleDetectedError struct {
	Remaining []string
	Cycle     []string
}

func (e *CycleDetectedError) Error() string {
	var b strings.Builder
	b.WriteString(ErrCycleDetected.Error())
	if len(e.Cycle) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Cycle, " → "))
	}

	return b.String()
}

// Is makes every CycleDetectedError match ErrCycleDetected.
func (e *CycleDetectedError) Is(target error) bool { return target == ErrCycleDetected }

// Option configures optional behavior for Sort.
type Option func(*options)

type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
