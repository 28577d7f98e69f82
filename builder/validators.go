// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping ErrInvalidArgument when its
// precondition is violated.
package builder

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// inRange reports whether lo <= v <= hi.
func inRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// validateDimension ensures k ∈ [MinDimension, MaxDimension].
//
// Complexity: O(1) time and space.
func validateDimension(method string, k int) error {
	if !inRange(k, MinDimension, MaxDimension) {
		return fmt.Errorf("%s: size (k) must be in [%d, %d], got %d: %w",
			method, MinDimension, MaxDimension, k, ErrInvalidArgument)
	}

	return nil
}

// validateDegree ensures degree ∈ [MinDegree, k].
//
// Complexity: O(1) time and space.
func validateDegree(method string, degree, k int) error {
	if !inRange(degree, MinDegree, k) {
		return fmt.Errorf("%s: degree must be in [%d, %d], got %d: %w",
			method, MinDegree, k, degree, ErrInvalidArgument)
	}

	return nil
}
