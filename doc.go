// Package lvflow is an in-memory maximum-flow engine: generate a network,
// push flow through it, read the answer back.
//
// What is in the box?
//
//	residual/   - index-based residual network with paired forward/reverse arcs
//	builder/    - seeded generators: k-dimensional hypercube, random bipartite graph
//	flow/       - Edmonds–Karp, Dinic, matching extraction, solution verification
//	report/     - CSV result rows and a JuMP/GLPK model for cross-checking
//	utils/      - zerolog console setup for the driver
//	cmd/lvflow/ - command-line driver for the flow, dinic_flow and matchings problems
//
// Quick example (4-cube, Dinic):
//
//	n := residual.New(0)
//	_ = builder.Hypercube(n, 4, builder.WithSeed(1))
//	s, t := builder.HypercubeTerminals(4)
//	res, _ := flow.Dinic(n, s, t, flow.DefaultOptions())
//	fmt.Println(res.MaxFlow, res.AugmentingPaths)
//
// Everything runs on one goroutine; a network belongs to whoever is
// mutating it.
//
//	go install github.com/katalvlaran/lvflow/cmd/lvflow@latest
package lvflow
