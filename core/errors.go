// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors and the InvalidEdgeError type.
// Policy:
//   - Callers branch with errors.Is / errors.As, never on message text.
//   - Sentinels are never formatted at definition site; context is added with %w.

package core

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEmptyVertexID indicates that a vertex label is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrBadWeight indicates a non-finite weight, or a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrTooLarge indicates that a WithMaxVertices or WithMaxEdges limit was exceeded.
	ErrTooLarge = errors.New("core: graph size limit exceeded")

	// ErrInvalidEdge classifies every *InvalidEdgeError. It is also used directly
	// by row parsers when a field is missing or malformed.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// InvalidEdgeError reports an edge (or input row) that could not be added.
//
// Row is the 1-based input row, or 0 when unknown. Raw holds the offending
// text when the failure came from parsing. Err is the underlying cause
// (ErrEmptyVertexID, ErrBadWeight, ErrTooLarge, or a parse error).
type InvalidEdgeError struct {
	Row  int
	From string
	To   string
	Raw  string
	Err  error
}

// Error renders the failure with whatever location context is available.
func (e *InvalidEdgeError) Error() string {
	var b strings.Builder
	b.WriteString("core: invalid edge")
	if e.Row > 0 {
		b.WriteString(" at row ")
		b.WriteString(strconv.Itoa(e.Row))
	}
	if e.From != "" || e.To != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.From))
		b.WriteString("→")
		b.WriteString(strconv.Quote(e.To))
	}
	if e.Raw != "" {
		b.WriteString(" (")
		b.WriteString(strconv.Quote(e.Raw))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the underlying cause.
func (e *InvalidEdgeError) Unwrap() error { return e.Err }

// Is makes every InvalidEdgeError match ErrInvalidEdge.
func (e *InvalidEdgeError) Is(target error) bool { return target == ErrInvalidEdge }

// AtRow returns a copy of err annotated with the 1-based input row when err
// is an *InvalidEdgeError without a row; other errors are returned unchanged.
func AtRow(err error, row int) error {
	var ie *InvalidEdgeError
	if !errors.As(err, &ie) || ie.Row != 0 {
		return err
	}
	cp := *ie
	cp.Row = row

	return &cp
}
