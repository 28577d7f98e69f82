// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(n, bopts, con). Checks n is unpopulated, resolves cfg, runs con.
//   - Public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical networks.
//   - Safety: never panic at runtime; return sentinel errors; never leave a partial network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/residual"
)

// Constructor populates an empty residual network using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first mutation and return sentinel errors.
//   - Create every arc through residual.Network.AddEdgePair.
//   - Preserve determinism for the same config.
type Constructor func(n *residual.Network, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies con to n.
// Networks are single-use: a network that already has vertices is rejected
// with ErrNetworkNotEmpty and left as it was.
//
// Complexity: O(len(bopts)) + cost of con.
func Build(n *residual.Network, bopts []BuilderOption, con Constructor) error {
	if n == nil || con == nil {
		return fmt.Errorf("Build: nil network or constructor: %w", ErrInvalidArgument)
	}
	if !n.Empty() {
		return fmt.Errorf("Build: network has %d vertices: %w", n.NumVertices(), ErrNetworkNotEmpty)
	}

	cfg := newBuilderConfig(bopts...)
	if err := con(n, cfg); err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	return nil
}

// Hypercube builds the capacitated k-dimensional hypercube DAG into n.
// See HypercubeTopology for the layout.
func Hypercube(n *residual.Network, k int, opts ...BuilderOption) error {
	return Build(n, opts, HypercubeTopology(k))
}

// Bipartite builds the source/sink-augmented random bipartite network into n.
// See BipartiteTopology for the layout.
func Bipartite(n *residual.Network, k, degree int, opts ...BuilderOption) error {
	return Build(n, opts, BipartiteTopology(k, degree))
}

// HypercubeTerminals returns the source (all-zero vertex) and sink
// (all-ones vertex) of a k-dimensional hypercube.
func HypercubeTerminals(k int) (source, sink int) {
	return 0, 1<<k - 1
}

// BipartiteTerminals returns the global source and sink of a bipartite
// network built with parameter k.
func BipartiteTerminals(k int) (source, sink int) {
	return 0, 2*(1<<k) + 1
}
