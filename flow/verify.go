package flow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvflow/residual"
)

// Verification failure classes, reachable through errors.Is on a *VerifyError.
var (
	// ErrPairMismatch: an arc and its pair do not mirror each other.
	ErrPairMismatch = errors.New("flow: arc pair mismatch")
	// ErrCapacityExceeded: an arc carries more flow than its capacity.
	ErrCapacityExceeded = errors.New("flow: capacity exceeded")
	// ErrNotConserved: an inner vertex has non-zero net flow.
	ErrNotConserved = errors.New("flow: flow not conserved")
	// ErrNotMaximal: an augmenting path still exists.
	ErrNotMaximal = errors.New("flow: flow is not maximal")
)

// VerifyError locates the first violation found by Verify.
// Arc is -1 when the violation concerns a vertex rather than an arc.
type VerifyError struct {
	Kind   error
	Vertex int
	Arc    int
	Detail string
}

func (e *VerifyError) Error() string {
	if e.Arc < 0 {
		return fmt.Sprintf("%v at vertex %d: %s", e.Kind, e.Vertex, e.Detail)
	}
	return fmt.Sprintf("%v at vertex %d arc %d: %s", e.Kind, e.Vertex, e.Arc, e.Detail)
}

func (e *VerifyError) Unwrap() error { return e.Kind }

// Verify runs sanity checks against a network whose flow has been computed
// from source to sink:
//
//  1. pairing:      pair(pair(e)) == e, endpoints mirrored, e.Flow == -pair(e).Flow
//  2. capacity:     e.Flow <= e.Capacity for every arc
//  3. conservation: NetFlow(v) == 0 for every v other than source and sink
//  4. maximality:   no residual path from source to sink
//
// It returns nil or the first *VerifyError found, in the order above.
//
// Complexity: O(V + E).
func Verify(n *residual.Network, source, sink int) error {
	if err := validateTerminals(n, source, sink); err != nil {
		return err
	}

	for u := 0; u < n.NumVertices(); u++ {
		for i, a := range n.Vertex(u) {
			if a.Flow > a.Capacity {
				return &VerifyError{Kind: ErrCapacityExceeded, Vertex: u, Arc: i,
					Detail: fmt.Sprintf("flow %d > capacity %d", a.Flow, a.Capacity)}
			}
			if a.Reverse == residual.NoReverse {
				continue
			}
			p := n.Pair(u, i)
			if p.Source != a.Destination || p.Destination != a.Source || p.Reverse != i {
				return &VerifyError{Kind: ErrPairMismatch, Vertex: u, Arc: i,
					Detail: fmt.Sprintf("pair %d→%d points back to %d", p.Source, p.Destination, p.Reverse)}
			}
			if p.Flow != -a.Flow {
				return &VerifyError{Kind: ErrPairMismatch, Vertex: u, Arc: i,
					Detail: fmt.Sprintf("flow %d, pair flow %d", a.Flow, p.Flow)}
			}
		}
	}

	for v := 0; v < n.NumVertices(); v++ {
		if v == source || v == sink {
			continue
		}
		if net := n.NetFlow(v); net != 0 {
			return &VerifyError{Kind: ErrNotConserved, Vertex: v, Arc: -1,
				Detail: fmt.Sprintf("net outflow %d", net)}
		}
	}

	if source != sink {
		if path := newPathFinder(n.NumVertices()).shortestPath(n, source, sink); len(path) > 0 {
			return &VerifyError{Kind: ErrNotMaximal, Vertex: sink, Arc: -1,
				Detail: fmt.Sprintf("residual path of %d arcs remains", len(path))}
		}
	}

	return nil
}
