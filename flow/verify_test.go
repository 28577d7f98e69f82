package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvflow/flow"
)

// VerifySuite corrupts solved networks and checks each violation class.
type VerifySuite struct {
	suite.Suite
}

// TestSolvedNetworkPasses is the baseline.
func (s *VerifySuite) TestSolvedNetworkPasses() {
	n := buildNetwork(s.T(), 6, clrsEdges)
	_, err := flow.Dinic(n, 0, 5, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.NoError(s.T(), flow.Verify(n, 0, 5))
}

// TestUnsolvedIsNotMaximal: a zero flow is feasible but leaves a path.
func (s *VerifySuite) TestUnsolvedIsNotMaximal() {
	n := buildNetwork(s.T(), 6, clrsEdges)
	err := flow.Verify(n, 0, 5)
	require.ErrorIs(s.T(), err, flow.ErrNotMaximal)

	var ve *flow.VerifyError
	require.True(s.T(), errors.As(err, &ve))
	require.Equal(s.T(), 5, ve.Vertex)
	require.Equal(s.T(), -1, ve.Arc)
}

// TestCapacityExceeded overfills the forward arc.
func (s *VerifySuite) TestCapacityExceeded() {
	n := buildNetwork(s.T(), 2, []edge{{0, 1, 4}})
	n.Augment(0, 0, 5)

	err := flow.Verify(n, 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrCapacityExceeded)

	var ve *flow.VerifyError
	require.True(s.T(), errors.As(err, &ve))
	require.Equal(s.T(), 0, ve.Vertex)
	require.Equal(s.T(), 0, ve.Arc)
}

// TestPairMismatch changes one half without its pair.
func (s *VerifySuite) TestPairMismatch() {
	n := buildNetwork(s.T(), 2, []edge{{0, 1, 4}})
	n.Arc(0, 0).Flow = 1

	require.ErrorIs(s.T(), flow.Verify(n, 0, 1), flow.ErrPairMismatch)
}

// TestNotConserved pushes flow into an inner vertex and stops there.
func (s *VerifySuite) TestNotConserved() {
	n := buildNetwork(s.T(), 3, []edge{{0, 1, 2}, {1, 2, 2}})
	n.Augment(0, 0, 1)

	err := flow.Verify(n, 0, 2)
	require.ErrorIs(s.T(), err, flow.ErrNotConserved)

	var ve *flow.VerifyError
	require.True(s.T(), errors.As(err, &ve))
	require.Equal(s.T(), 1, ve.Vertex)
	require.Contains(s.T(), ve.Error(), "vertex 1")
}

// TestTerminalErrors mirrors the solvers' validation.
func (s *VerifySuite) TestTerminalErrors() {
	n := buildNetwork(s.T(), 2, []edge{{0, 1, 4}})
	require.ErrorIs(s.T(), flow.Verify(n, 2, 1), flow.ErrSourceNotFound)
	require.ErrorIs(s.T(), flow.Verify(n, 0, -3), flow.ErrSinkNotFound)
}

func TestVerifySuite(t *testing.T) {
	suite.Run(t, new(VerifySuite))
}
