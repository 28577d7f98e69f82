// Package builder populates residual networks with the benchmark instances
// used to exercise the max-flow solvers. It follows a "functional-options"
// style: each generator is a Constructor closure, and BuilderOption values
// resolve into an internal builderConfig before the network is touched.
//
// The package offers:
//
//   - Generators:
//     – Hypercube(n, k):          capacitated k-dimensional hypercube DAG,
//     source 0, sink 2^k-1.
//     – Bipartite(n, k, degree):  source/sink-augmented random bipartite
//     graph with 2^k vertices per side and bounded degree.
//   - Orchestration:
//     – Build(n, opts, con):      runs any Constructor on an empty network.
//     – HypercubeTopology, BipartiteTopology return the raw Constructors.
//   - Options:
//     – WithSeed / WithRand:      deterministic randomness.
//     – WithMirroredCapacity:     bipartite reverse arcs keep full capacity.
//
// Guarantees:
//
//   - Single use: building into a network that already has vertices fails
//     with ErrNetworkNotEmpty.
//   - No partial construction: parameter errors (ErrInvalidArgument) are
//     detected before the first vertex is added.
//   - Every arc is created as a pair via residual.Network.AddEdgePair.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//
// Example:
//
//	n := residual.New(0)
//	if err := builder.Hypercube(n, 4, builder.WithSeed(7)); err != nil {
//	    // errors.Is(err, builder.ErrInvalidArgument) ...
//	}
//	source, sink := builder.HypercubeTerminals(4)
package builder
