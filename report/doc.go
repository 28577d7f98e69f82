// SPDX-License-Identifier: MIT
// Package: lvflow/report
//
// Package report renders benchmark rows and linear-programming models for
// solved flow networks.
//
// Two outputs are supported:
//
//   - CSV rows, one per run, appended to a results file:
//     flow / dinic_flow: size,max_flow,paths,ms
//     matchings:         size,degree,max_flow,paths,matchings,ms
//
//   - A Julia script using JuMP with the GLPK optimizer that restates the
//     network as an integer program. Running it gives an independent check
//     of the maximum flow (and of the matching size for bipartite networks).
//
// Writers take an io.Writer and never close it. AppendRow owns the file it
// opens.
package report
