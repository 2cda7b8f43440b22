// SPDX-License-Identifier: MIT

package clique_test

import (
	"testing"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
)

func benchmarkStrategy(b *testing.B, s clique.Strategy, cons builder.Constructor, bopts ...builder.BuilderOption) {
	g, err := builder.BuildGraph(nil, bopts, cons)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := clique.Find(g, clique.WithStrategy(s)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMoonMoser_Plain(b *testing.B) {
	benchmarkStrategy(b, clique.StrategyPlain, builder.CompleteMultipartite(7, 3))
}

func BenchmarkMoonMoser_Pivot(b *testing.B) {
	benchmarkStrategy(b, clique.StrategyPivot, builder.CompleteMultipartite(7, 3))
}

func BenchmarkMoonMoser_Degeneracy(b *testing.B) {
	benchmarkStrategy(b, clique.StrategyDegeneracy, builder.CompleteMultipartite(7, 3))
}

func BenchmarkSparse_Pivot(b *testing.B) {
	benchmarkStrategy(b, clique.StrategyPivot, builder.RandomSparse(300, 0.05), builder.WithSeed(1))
}

func BenchmarkSparse_Degeneracy(b *testing.B) {
	benchmarkStrategy(b, clique.StrategyDegeneracy, builder.RandomSparse(300, 0.05), builder.WithSeed(1))
}
