package prime_test

import (
	"testing"

	"github.com/katalvlaran/intprops/prime"
)

var sink bool

// BenchmarkIsPrime runs the odd-divisor tester on a 12-digit prime.
func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = prime.IsPrime(999_999_999_989)
	}
}

// BenchmarkIsPrimeFast runs the 6k±1 tester on the same prime.
func BenchmarkIsPrimeFast(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = prime.IsPrimeFast(999_999_999_989)
	}
}

// BenchmarkSieve_1e6 enumerates primes up to one million.
func BenchmarkSieve_1e6(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = prime.Sieve(1_000_000)
	}
}

// BenchmarkInRange_1e5 enumerates the same kind of range by trial division.
func BenchmarkInRange_1e5(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = prime.InRange(2, 100_000)
	}
}

// BenchmarkFactors factors a semiprime with two close factors.
func BenchmarkFactors(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = prime.Factors(1_000_003 * 1_000_033)
	}
}
