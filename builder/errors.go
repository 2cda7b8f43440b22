// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, min, ErrTooFewVertices).
//   • Validation priority: size → probability → rng → graph mode → construction.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree,
// partition count) is outside the allowed domain for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// graph mode (e.g. RandomRegular on a directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates the builder could not construct the topology
// (nil constructor, nil graph, or exhausted retries).
var ErrConstructFailed = errors.New("builder: construction failed")
