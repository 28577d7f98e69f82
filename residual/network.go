// SPDX-License-Identifier: MIT
// Package: lvflow/residual
//
// network.go - construction, queries and flow updates.
//
// Complexity:
//   • NumVertices/Vertex/Arc/Pair/Augment: O(1).
//   • HasEdge/NetFlow: O(deg(u)).
//   • AddEdgePair: amortised O(1).

package residual

import "fmt"

// New returns a network with n isolated vertices.
// A negative n is treated as 0.
func New(n int) *Network {
	if n < 0 {
		n = 0
	}

	return &Network{adj: make([][]Arc, n)}
}

// NumVertices returns the number of vertices.
func (n *Network) NumVertices() int {
	return len(n.adj)
}

// Empty reports whether the network has no vertices.
func (n *Network) Empty() bool {
	return len(n.adj) == 0
}

// NumArcs returns the total number of arcs, reverse halves included.
func (n *Network) NumArcs() int {
	total := 0
	for _, arcs := range n.adj {
		total += len(arcs)
	}

	return total
}

// AddVertices appends count isolated vertices and returns the index of the
// first one.
func (n *Network) AddVertices(count int) int {
	first := len(n.adj)
	if count <= 0 {
		return first
	}
	n.adj = append(n.adj, make([][]Arc, count)...)

	return first
}

// Vertex returns the live arc list of vertex i. Elements may be modified in
// place; the slice itself must not be appended to by callers.
func (n *Network) Vertex(i int) []Arc {
	return n.adj[i]
}

// Arc returns a pointer to the i-th arc of vertex u.
func (n *Network) Arc(u, i int) *Arc {
	return &n.adj[u][i]
}

// Pair returns a pointer to the paired arc of adj[u][i], or nil when the arc
// has no pair.
func (n *Network) Pair(u, i int) *Arc {
	a := &n.adj[u][i]
	if a.Reverse == NoReverse {
		return nil
	}

	return &n.adj[a.Destination][a.Reverse]
}

// Residual returns the residual capacity of adj[u][i].
func (n *Network) Residual(u, i int) int32 {
	return n.adj[u][i].Residual()
}

// HasEdge reports whether any arc leaves u towards v. Reverse halves count,
// which matches how the arc lists are laid out. Out-of-range u or v yields
// false.
func (n *Network) HasEdge(u, v int) bool {
	if !n.contains(u) || !n.contains(v) {
		return false
	}
	for _, a := range n.adj[u] {
		if a.Destination == v {
			return true
		}
	}

	return false
}

// AddEdgePair appends the arc u→v with the given capacity together with its
// reciprocal v→u carrying reverseCapacity. Both arcs are added or neither:
// all validation happens before the first append.
func (n *Network) AddEdgePair(u, v int, capacity, reverseCapacity int32) error {
	if !n.contains(u) || !n.contains(v) {
		return fmt.Errorf("AddEdgePair(%d→%d) with %d vertices: %w", u, v, len(n.adj), ErrVertexOutOfRange)
	}
	if capacity < 0 || reverseCapacity < 0 {
		return fmt.Errorf("AddEdgePair(%d→%d) capacities %d/%d: %w", u, v, capacity, reverseCapacity, ErrNegativeCapacity)
	}

	iu := len(n.adj[u])
	iv := len(n.adj[v])
	if u == v {
		// both halves land in the same list
		iv++
	}

	n.adj[u] = append(n.adj[u], Arc{Source: u, Destination: v, Capacity: capacity, Reverse: iv})
	n.adj[v] = append(n.adj[v], Arc{Source: v, Destination: u, Capacity: reverseCapacity, Reverse: iu})

	return nil
}

// Augment pushes delta units along adj[u][i] and cancels them on its pair.
func (n *Network) Augment(u, i int, delta int32) {
	a := &n.adj[u][i]
	a.Flow += delta
	if a.Reverse != NoReverse {
		n.adj[a.Destination][a.Reverse].Flow -= delta
	}
}

// NetFlow returns the net flow leaving v: the sum of the flows of every arc
// in v's list. Reverse halves carry negated flow, so incoming flow is
// already subtracted.
func (n *Network) NetFlow(v int) int64 {
	var total int64
	for _, a := range n.adj[v] {
		total += int64(a.Flow)
	}

	return total
}

func (n *Network) contains(v int) bool {
	return v >= 0 && v < len(n.adj)
}
