package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvflow/residual"
)

// validateTerminals checks that source and sink index existing vertices.
//
// Complexity: O(1).
func validateTerminals(n *residual.Network, source, sink int) error {
	if source < 0 || source >= n.NumVertices() {
		return fmt.Errorf("%w: %d (network has %d vertices)", ErrSourceNotFound, source, n.NumVertices())
	}
	if sink < 0 || sink >= n.NumVertices() {
		return fmt.Errorf("%w: %d (network has %d vertices)", ErrSinkNotFound, sink, n.NumVertices())
	}

	return nil
}

// pathBottleneck returns the smallest residual capacity along path.
//
// Complexity: O(len(path)).
func pathBottleneck(n *residual.Network, path []arcRef) int32 {
	bottleneck := int32(math.MaxInt32)
	for _, r := range path {
		if res := n.Residual(r.vertex, r.arc); res < bottleneck {
			bottleneck = res
		}
	}

	return bottleneck
}

// augmentPath pushes delta along every arc of path, updating the pairs.
//
// Complexity: O(len(path)).
func augmentPath(n *residual.Network, path []arcRef, delta int32) {
	for _, r := range path {
		n.Augment(r.vertex, r.arc, delta)
	}
}
