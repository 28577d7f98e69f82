// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_hypercube.go - implementation of the HypercubeTopology(k) constructor.
//
// Contract:
//   • k ∈ [MinDimension, MaxDimension] (else ErrInvalidArgument).
//   • Adds 2^k vertices, indices 0..2^k-1.
//   • For src ascending and bit b ascending, emits src → src|1<<b whenever that
//     sets a new bit. Every arc heads towards more set bits, so the result is a
//     DAG from vertex 0 to vertex 2^k-1 with k·2^(k-1) forward arcs.
//   • Capacity ~ U[1, 2^r] with
//       r = max(|src|, b-|src|, |dst|, b-|dst|),   |x| = popcount(x).
//     The zero-count terms use the bit index b, not k.
//   • Paired reverse arcs have capacity 0.
//
// Complexity:
//   • Time: O(k·2^k).
//   • Space: O(k·2^k) arcs.
//
// Determinism:
//   • Emission order is fixed; capacities are deterministic for a fixed cfg.rng.

package builder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvflow/residual"
)

// HypercubeTopology returns a Constructor for the capacitated k-dimensional
// hypercube DAG.
func HypercubeTopology(k int) Constructor {
	return func(n *residual.Network, cfg builderConfig) error {
		// Validate before the first mutation.
		if err := validateDimension(MethodHypercube, k); err != nil {
			return err
		}

		numVertices := 1 << k
		n.AddVertices(numVertices)

		for src := 0; src < numVertices; src++ {
			for b := 0; b < k; b++ {
				dst := src | 1<<b
				if dst == src {
					continue
				}

				capacity := hypercubeCapacity(cfg, src, dst, b)
				if err := n.AddEdgePair(src, dst, capacity, 0); err != nil {
					return fmt.Errorf("%s: %w", MethodHypercube, err)
				}
			}
		}

		return nil
	}
}

// hypercubeCapacity draws the capacity of src→dst created by flipping bit b.
func hypercubeCapacity(cfg builderConfig, src, dst, b int) int32 {
	r := hypercubeRange(src, dst, b)

	return int32(1 + cfg.rng.Intn(1<<r))
}

// hypercubeRange is the exponent bounding the capacity of src→dst.
// Always ≥ 1 since dst has at least one set bit.
func hypercubeRange(src, dst, b int) int {
	srcOnes := bits.OnesCount32(uint32(src))
	dstOnes := bits.OnesCount32(uint32(dst))

	return max(srcOnes, b-srcOnes, dstOnes, b-dstOnes)
}
