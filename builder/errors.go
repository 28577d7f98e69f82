// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidArgument indicates a structural parameter (dimension k, degree)
// outside its documented range. Detected before any mutation; the target
// network is left untouched.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* report bad k/degree */ }.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrNetworkNotEmpty indicates an attempt to build into a network that
// already has vertices. Generators are single-use per network.
// Usage: if errors.Is(err, ErrNetworkNotEmpty) { /* allocate a fresh network */ }.
var ErrNetworkNotEmpty = errors.New("builder: network is not empty")
