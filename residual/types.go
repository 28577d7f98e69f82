// SPDX-License-Identifier: MIT
// Package: lvflow/residual
//
// types.go - Arc, Network and sentinel errors.

package residual

import "errors"

// NoReverse marks an arc without a paired counterpart.
const NoReverse = -1

var (
	// ErrVertexOutOfRange indicates an arc endpoint outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("residual: vertex out of range")

	// ErrNegativeCapacity indicates a negative capacity passed to AddEdgePair.
	ErrNegativeCapacity = errors.New("residual: negative capacity")
)

// Arc is a directed edge of the residual network.
//
// Invariants:
//   - Flow <= Capacity.
//   - For a paired arc e: e.Flow == -pair(e).Flow.
//   - Reverse is the position of the pair in the Destination's arc list.
type Arc struct {
	// Source is the index of the tail vertex.
	Source int
	// Destination is the index of the head vertex.
	Destination int
	// Flow is the current flow; negative on the reverse half of a pair.
	Flow int32
	// Capacity is fixed at construction.
	Capacity int32
	// Reverse is an offset into adj[Destination], or NoReverse.
	Reverse int
}

// Residual returns Capacity - Flow.
func (a Arc) Residual() int32 {
	return a.Capacity - a.Flow
}

// Network is a residual network over vertices 0..NumVertices()-1.
// The zero value is an empty network ready for AddVertices.
type Network struct {
	adj [][]Arc
}
