package flow

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvflow/residual"
)

// Matchings scans a solved bipartite flow network and returns the saturated
// internal arcs as matched pairs.
//
// An arc is reported when Flow == 1, it does not leave the source, it does
// not enter the sink and Source < Destination. The last condition drops the
// reverse half of each pair, which carries Flow == -1 anyway.
//
// The network is only read. Pairs are sorted by (U, V). On a network that is
// unsolved, or not built by builder.Bipartite, the result is simply whatever
// arcs satisfy the predicate.
//
// Complexity: O(V + E + M log M) for M pairs.
func Matchings(n *residual.Network, source, sink int) []Pair {
	var pairs []Pair
	for u := 0; u < n.NumVertices(); u++ {
		for _, a := range n.Vertex(u) {
			if a.Flow == 1 && a.Source != source && a.Destination != sink && a.Source < a.Destination {
				pairs = append(pairs, Pair{U: a.Source, V: a.Destination})
			}
		}
	}

	slices.SortFunc(pairs, func(a, b Pair) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})

	return pairs
}
