package flow_test

import (
	"fmt"
	"testing"

	"github.com/kelindar/bitmap"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvflow/builder"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/residual"
)

// GeneratedSuite solves networks produced by the builder package.
type GeneratedSuite struct {
	suite.Suite
}

func (s *GeneratedSuite) hypercube(k int, seed int64) *residual.Network {
	n := residual.New(0)
	require.NoError(s.T(), builder.Hypercube(n, k, builder.WithSeed(seed)))
	return n
}

func (s *GeneratedSuite) bipartite(k, degree int, seed int64) *residual.Network {
	n := residual.New(0)
	require.NoError(s.T(), builder.Bipartite(n, k, degree, builder.WithSeed(seed)))
	return n
}

// TestHypercubeOneDimension: a single arc, so the flow is its capacity.
func (s *GeneratedSuite) TestHypercubeOneDimension() {
	for _, sv := range solvers {
		s.Run(sv.name, func() {
			n := s.hypercube(1, 3)
			source, sink := builder.HypercubeTerminals(1)
			want := capacityOf(n, source, sink)

			res, err := sv.run(n, source, sink, flow.DefaultOptions())
			require.NoError(s.T(), err)
			require.Equal(s.T(), int64(want), res.MaxFlow)
			require.Equal(s.T(), 1, res.AugmentingPaths)
		})
	}
}

// TestHypercubeTwoDimensions: two disjoint two-arc paths 0→1→3 and 0→2→3.
func (s *GeneratedSuite) TestHypercubeTwoDimensions() {
	for _, sv := range solvers {
		s.Run(sv.name, func() {
			n := s.hypercube(2, 5)
			want := min(capacityOf(n, 0, 1), capacityOf(n, 1, 3)) +
				min(capacityOf(n, 0, 2), capacityOf(n, 2, 3))

			res, err := sv.run(n, 0, 3, flow.DefaultOptions())
			require.NoError(s.T(), err)
			require.Equal(s.T(), int64(want), res.MaxFlow)
			require.Equal(s.T(), 2, res.AugmentingPaths)
		})
	}
}

// TestAlgorithmsAgreeOnHypercube solves identical seeded cubes with both
// algorithms and compares totals.
func (s *GeneratedSuite) TestAlgorithmsAgreeOnHypercube() {
	for k := 1; k <= 8; k++ {
		s.Run(fmt.Sprintf("k=%d", k), func() {
			source, sink := builder.HypercubeTerminals(k)
			a, b := s.hypercube(k, int64(k)), s.hypercube(k, int64(k))

			ek, err := flow.EdmondsKarp(a, source, sink, flow.DefaultOptions())
			require.NoError(s.T(), err)
			di, err := flow.Dinic(b, source, sink, flow.DefaultOptions())
			require.NoError(s.T(), err)

			require.Equal(s.T(), ek.MaxFlow, di.MaxFlow)
			require.Positive(s.T(), ek.MaxFlow)
			require.NoError(s.T(), flow.Verify(a, source, sink))
			require.NoError(s.T(), flow.Verify(b, source, sink))
		})
	}
}

// TestAlgorithmsAgreeOnBipartite does the same for bipartite networks and
// checks the matchings read off both.
func (s *GeneratedSuite) TestAlgorithmsAgreeOnBipartite() {
	for k := 1; k <= 6; k++ {
		for degree := 1; degree <= k; degree++ {
			s.Run(fmt.Sprintf("k=%d/d=%d", k, degree), func() {
				seed := int64(100*k + degree)
				source, sink := builder.BipartiteTerminals(k)
				a, b := s.bipartite(k, degree, seed), s.bipartite(k, degree, seed)

				ek, err := flow.EdmondsKarp(a, source, sink, flow.DefaultOptions())
				require.NoError(s.T(), err)
				di, err := flow.Dinic(b, source, sink, flow.DefaultOptions())
				require.NoError(s.T(), err)
				require.Equal(s.T(), ek.MaxFlow, di.MaxFlow)

				for _, n := range []*residual.Network{a, b} {
					require.NoError(s.T(), flow.Verify(n, source, sink))
					pairs := flow.Matchings(n, source, sink)
					require.Len(s.T(), pairs, int(ek.MaxFlow))
					s.requireMatching(pairs, k)
				}
			})
		}
	}
}

// TestBipartiteDegreeOne: every left vertex has exactly one distinct
// partner, so the whole side is matched.
func (s *GeneratedSuite) TestBipartiteDegreeOne() {
	for _, sv := range solvers {
		s.Run(sv.name, func() {
			n := s.bipartite(1, 1, 9)
			source, sink := builder.BipartiteTerminals(1)

			res, err := sv.run(n, source, sink, flow.DefaultOptions())
			require.NoError(s.T(), err)
			require.Equal(s.T(), int64(2), res.MaxFlow)

			pairs := flow.Matchings(n, source, sink)
			require.Len(s.T(), pairs, 2)
			s.requireMatching(pairs, 1)
		})
	}
}

// TestMatchingsOnUnsolvedNetwork finds nothing before any flow is pushed.
func (s *GeneratedSuite) TestMatchingsOnUnsolvedNetwork() {
	n := s.bipartite(3, 2, 1)
	source, sink := builder.BipartiteTerminals(3)
	require.Empty(s.T(), flow.Matchings(n, source, sink))
}

// requireMatching checks side ranges, ordering and vertex-disjointness.
func (s *GeneratedSuite) requireMatching(pairs []flow.Pair, k int) {
	size := 1 << k
	require.LessOrEqual(s.T(), len(pairs), size)

	var used bitmap.Bitmap
	for i, p := range pairs {
		require.True(s.T(), p.U >= 1 && p.U <= size, "left vertex %d out of range", p.U)
		require.True(s.T(), p.V > size && p.V <= 2*size, "right vertex %d out of range", p.V)
		require.False(s.T(), used.Contains(uint32(p.U)), "left vertex %d matched twice", p.U)
		require.False(s.T(), used.Contains(uint32(p.V)), "right vertex %d matched twice", p.V)
		used.Set(uint32(p.U))
		used.Set(uint32(p.V))
		if i > 0 {
			require.Less(s.T(), pairs[i-1].U, p.U, "pairs sorted by left vertex")
		}
	}
	require.Equal(s.T(), 2*len(pairs), used.Count())
}

func TestGeneratedSuite(t *testing.T) {
	suite.Run(t, new(GeneratedSuite))
}
