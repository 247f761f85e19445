package aut_test

import (
	"testing"

	"github.com/katalvlaran/lvlgroup/aut"
	"github.com/katalvlaran/lvlgroup/group"
)

// benchmarkAutomorphisms runs the full search over Zₙ.
func benchmarkAutomorphisms(b *testing.B, n, parallelism int) {
	g, err := group.Cyclic(n)
	if err != nil {
		b.Fatalf("Cyclic(%d) failed: %v", n, err)
	}
	opts := aut.Options{Parallelism: parallelism}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := aut.IsomorphismsOpt(g, g, &opts); err != nil {
			b.Fatalf("search failed: %v", err)
		}
	}
}

// BenchmarkAutomorphisms_Z6 measures the 720-permutation search.
func BenchmarkAutomorphisms_Z6(b *testing.B) { benchmarkAutomorphisms(b, 6, 1) }

// BenchmarkAutomorphisms_Z7 measures the 5 040-permutation search.
func BenchmarkAutomorphisms_Z7(b *testing.B) { benchmarkAutomorphisms(b, 7, 1) }

// BenchmarkAutomorphisms_Z7Parallel measures the same search over 4 workers.
func BenchmarkAutomorphisms_Z7Parallel(b *testing.B) { benchmarkAutomorphisms(b, 7, 4) }
