// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the network is populated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for the stochastic parts of a generator
// (hypercube capacities, bipartite partner sampling).
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMirroredCapacity gives the paired reverse arc of every bipartite arc
// the same capacity as its forward arc, making each pair usable in both
// directions. Without it the reverse arcs have capacity 0.
//
// Mirrored networks still solve to the maximum flow, but flow may travel
// right→left, so Matchings is no longer guaranteed to be a matching.
// The hypercube ignores this option.
func WithMirroredCapacity() BuilderOption {
	return func(c *builderConfig) {
		c.mirrored = true
	}
}
