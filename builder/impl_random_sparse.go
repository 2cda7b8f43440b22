// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each admissible edge independently with prob p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed: ordered pairs (i,j), i≠j; each accepted arc is added alone,
//     so directed output is generally asymmetric.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials. Space: O(n).
//
// Determinism:
//   - Stable trial order (i asc, j asc) ⇒ identical graph for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodRandomSparse, ids...); err != nil {
			return err
		}

		// keep decides one trial; p ∈ {0,1} never touches the RNG.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if _, err := g.AddEdge(ids[i], ids[j], 0); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
