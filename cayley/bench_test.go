package cayley_test

import (
	"testing"

	"github.com/katalvlaran/lvlgroup/cayley"
)

// benchmarkCanonicalKey runs CanonicalKey over the cyclic table of order n.
// It resets the timer after table construction and fails on unexpected errors.
func benchmarkCanonicalKey(b *testing.B, n, parallelism int) {
	table := zn(n)
	opts := cayley.Options{Parallelism: parallelism}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := cayley.CanonicalKey(table, &opts); err != nil {
			b.Fatalf("CanonicalKey failed: %v", err)
		}
	}
}

// BenchmarkCanonicalKey_Z5 measures the 120-permutation search.
func BenchmarkCanonicalKey_Z5(b *testing.B) { benchmarkCanonicalKey(b, 5, 1) }

// BenchmarkCanonicalKey_Z7 measures the 5 040-permutation search.
func BenchmarkCanonicalKey_Z7(b *testing.B) { benchmarkCanonicalKey(b, 7, 1) }

// BenchmarkCanonicalKey_Z7Parallel measures the same search split over 4 workers.
func BenchmarkCanonicalKey_Z7Parallel(b *testing.B) { benchmarkCanonicalKey(b, 7, 4) }

// BenchmarkCanonicalKey_Z8 measures the 40 320-permutation search, the
// practical upper end of routine use.
func BenchmarkCanonicalKey_Z8(b *testing.B) { benchmarkCanonicalKey(b, 8, 1) }
