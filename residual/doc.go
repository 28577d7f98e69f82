// Package residual implements the residual network shared by every max-flow
// routine in lvflow: an index-addressed adjacency list in which each arc is
// paired with a reciprocal arc in its destination's list.
//
// Representation:
//
//	adj[u] = []Arc{ {Source:u, Destination:v, Flow:f, Capacity:c, Reverse:i}, ... }
//	adj[v][i] is the pair of that arc, with Flow == -f.
//
// Reverse flow is modelled as the negation of the forward flow, so a single
// Augment call keeps both halves of a pair consistent:
//
//	u ──(f/c)──▶ v
//	u ◀──(-f/0)── v
//
// The pair's capacity is fixed when the pair is created: 0 for a plain
// directed arc, or any non-negative value for arcs that carry capacity in both
// directions. Capacities never change afterwards; only Flow does.
//
// Concurrency:
//
//	Network holds no locks. A solver owns the network exclusively for the
//	duration of a call; callers serialise access.
//
// Errors:
//
//	ErrVertexOutOfRange  - AddEdgePair referenced a vertex that does not exist.
//	ErrNegativeCapacity  - AddEdgePair received a negative capacity.
//
// Out-of-range indices passed to Vertex, Arc, Pair or Augment are an unchecked
// precondition and panic with the usual slice semantics.
package residual
