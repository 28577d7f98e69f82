// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • rng       = time-seeded *rand.Rand, fresh per Build call
//   • mirrored  = false (reverse arcs carry capacity 0)

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; never nil after newBuilderConfig.
	rng *rand.Rand
	// Give bipartite reverse arcs the forward capacity.
	mirrored bool
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// reverseCapacity returns the capacity to give the pair of an arc with the
// given forward capacity.
func (c builderConfig) reverseCapacity(capacity int32) int32 {
	if c.mirrored {
		return capacity
	}

	return 0
}
