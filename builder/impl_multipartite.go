// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_multipartite.go - implementation of CompleteMultipartite(k, size).
//
// Canonical model:
//   • k independent parts of `size` vertices each; every pair of vertices in
//     different parts is adjacent. Part p holds indices p·size .. p·size+size-1.
//   • Maximal cliques pick exactly one vertex per part: size^k of them, each of
//     size k. With size=3 this is the Moon–Moser graph, which attains the
//     maximum possible number of maximal cliques (3^(n/3)) for n = 3k vertices.
//
// Contract:
//   • k ≥ 1 and size ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs via cfg.idFn over the global index 0..k·size-1.
//   • Edge order: i asc, j asc over pairs in different parts.
//
// Complexity:
//   • Time: O(k·size) vertices + O((k·size)²) pair checks. Space: O(k·size).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

const (
	methodCompleteMultipartite = "CompleteMultipartite"
	minParts                   = 1
)

// CompleteMultipartite returns a Constructor for the complete k-partite graph
// with parts of equal size.
func CompleteMultipartite(k, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minParts || size < minPartitionSize {
			return fmt.Errorf("%s: k=%d, size=%d (each must be ≥ 1): %w",
				methodCompleteMultipartite, k, size, ErrTooFewVertices)
		}

		n := k * size
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodCompleteMultipartite, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if i/size == j/size {
					continue
				}
				if err := link(g, methodCompleteMultipartite, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
