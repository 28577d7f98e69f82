package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/residual"
)

// solver is the common signature of EdmondsKarp and Dinic.
type solver func(n *residual.Network, source, sink int, opts flow.FlowOptions) (flow.Result, error)

var solvers = []struct {
	name string
	run  solver
}{
	{"EdmondsKarp", flow.EdmondsKarp},
	{"Dinic", flow.Dinic},
}

// edge is a forward arc; its reverse half gets capacity 0.
type edge struct {
	u, v int
	c    int32
}

// buildNetwork allocates numVertices vertices and adds every edge as a pair.
func buildNetwork(t testing.TB, numVertices int, edges []edge) *residual.Network {
	t.Helper()
	n := residual.New(numVertices)
	for _, e := range edges {
		require.NoError(t, n.AddEdgePair(e.u, e.v, e.c, 0))
	}
	return n
}

// clrsEdges is the classic six-vertex textbook network; max flow 23.
var clrsEdges = []edge{
	{0, 1, 16}, {0, 2, 13},
	{1, 2, 10}, {1, 3, 12},
	{2, 1, 4}, {2, 4, 14},
	{3, 2, 9}, {3, 5, 20},
	{4, 3, 7}, {4, 5, 4},
}

// capacityOf returns the capacity of the first arc u→v, or -1.
func capacityOf(n *residual.Network, u, v int) int32 {
	for _, a := range n.Vertex(u) {
		if a.Destination == v {
			return a.Capacity
		}
	}
	return -1
}
