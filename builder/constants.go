// Package builder defines shared constants used by network generators,
// ensuring consistent bounds and error prefixes across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodHypercube is the canonical name for the Hypercube constructor.
	MethodHypercube = "Hypercube"
	// MethodBipartite is the canonical name for the Bipartite constructor.
	MethodBipartite = "Bipartite"
)

//-----------------------------------------------------------------------------
// Dimension bounds
//-----------------------------------------------------------------------------

// MinDimension is the smallest accepted k for both generators.
const MinDimension = 1

// MaxDimension is the largest accepted k. 2^k vertices (2·2^k+2 for the
// bipartite network) must fit a signed 32-bit count and practical memory.
const MaxDimension = 16

// MinDegree is the smallest accepted bipartite degree; the largest is k.
const MinDegree = 1

// unitCapacity is the capacity of every arc in the bipartite network.
const unitCapacity int32 = 1
