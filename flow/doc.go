// Package flow implements maximum-flow algorithms on a *residual.Network.
// Every routine works in place: arc Flow values are updated on the network
// passed in, and capacities are never touched.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case with integer capacities.
//
//   - Memory: O(V) for predecessors and the BFS queue.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via an explicit-stack
//     DFS with per-vertex resume indices.
//
//   - Time:   O(V² · E); O(E · √V) on unit-capacity networks.
//
//   - Memory: O(V) for levels, resume indices and the path stack.
//
// Both return Result{MaxFlow, AugmentingPaths}. Arc arithmetic is exact int32;
// the total is accumulated in int64. On the same network and terminals both
// algorithms reach the same MaxFlow, while path counts usually differ.
//
// # Post-processing
//
//	Matchings(n, source, sink) - saturated internal arcs of a solved bipartite network.
//	Verify(n, source, sink)    - pairing, capacity, conservation and maximality checks.
//
// # API
//
// FlowOptions configures both algorithms:
//
//	type FlowOptions struct {
//	    Ctx    context.Context  // optional cancellation
//	    Logger *zerolog.Logger  // Debug summary, Trace per path/phase
//	}
//
// # Errors
//
//	ErrSourceNotFound - if the source index is outside the network.
//	ErrSinkNotFound   - if the sink index is outside the network.
//	*VerifyError      - from Verify; errors.Is against ErrPairMismatch,
//	                    ErrCapacityExceeded, ErrNotConserved, ErrNotMaximal.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is cancelled.
//
// # Concurrency
//
// A solver owns the network for the duration of the call. Running two solvers
// on the same network concurrently is a data race; callers serialise.
package flow
