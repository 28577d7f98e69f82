// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_bipartite.go - implementation of the BipartiteTopology(k, degree) constructor.
//
// Layout (size = 2^k):
//   • 0              global source
//   • 1..size        left side
//   • size+1..2size  right side
//   • 2size+1        global sink
//
// Contract:
//   • k ∈ [MinDimension, MaxDimension], degree ∈ [MinDegree, k] (else ErrInvalidArgument).
//   • source → every left vertex, every right vertex → sink, capacity 1.
//   • Each left vertex, in ascending order, is joined to up to `degree` distinct
//     right vertices drawn without replacement from the candidates that still
//     have room. A right vertex is retired once its arc list holds degree+1
//     arcs (its sink arc plus `degree` partners), so no right list ever grows
//     beyond degree+1.
//   • When fewer than `degree` candidates remain, the left vertex is joined to
//     all of them.
//   • All arcs have capacity 1; reverse arcs have capacity 0, or 1 under
//     WithMirroredCapacity.
//
// Complexity:
//   • Time: O(size²) for the per-vertex shuffles.
//   • Space: O(size·degree) arcs + O(size) candidates.
//
// Determinism:
//   • Deterministic for a fixed cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/residual"
)

// BipartiteTopology returns a Constructor for the random bounded-degree
// bipartite network used for maximum matching.
func BipartiteTopology(k, degree int) Constructor {
	return func(n *residual.Network, cfg builderConfig) error {
		// 1) Validate before the first mutation.
		if err := validateDimension(MethodBipartite, k); err != nil {
			return err
		}
		if err := validateDegree(MethodBipartite, degree, k); err != nil {
			return err
		}

		size := 1 << k
		source, sink := BipartiteTerminals(k)
		n.AddVertices(2*size + 2)
		rc := cfg.reverseCapacity(unitCapacity)

		// 2) Terminal arcs: source → left_i, right_i → sink.
		for i := 1; i <= size; i++ {
			if err := n.AddEdgePair(source, i, unitCapacity, rc); err != nil {
				return fmt.Errorf("%s: %w", MethodBipartite, err)
			}
			if err := n.AddEdgePair(size+i, sink, unitCapacity, rc); err != nil {
				return fmt.Errorf("%s: %w", MethodBipartite, err)
			}
		}

		// 3) Candidate right vertices, retired as they fill up.
		candidates := make([]int, size)
		for i := range candidates {
			candidates[i] = size + 1 + i
		}

		for left := 1; left <= size; left++ {
			cfg.rng.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})

			picks := min(degree, len(candidates))
			for _, right := range candidates[:picks] {
				if err := n.AddEdgePair(left, right, unitCapacity, rc); err != nil {
					return fmt.Errorf("%s: %w", MethodBipartite, err)
				}
			}

			candidates = retireFull(n, candidates, degree+1)
		}

		return nil
	}
}

// retireFull filters candidates in place, dropping vertices whose arc list
// has reached limit.
func retireFull(n *residual.Network, candidates []int, limit int) []int {
	kept := candidates[:0]
	for _, v := range candidates {
		if len(n.Vertex(v)) < limit {
			kept = append(kept, v)
		}
	}

	return kept
}
