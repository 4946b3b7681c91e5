package prime_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/intprops/prime"
)

// TestFactors_Reference checks the documented factorizations.
func TestFactors_Reference(t *testing.T) {
	cases := map[int64][]int64{
		2:                  {2},
		12:                 {2, 2, 3},
		17:                 {17},
		60:                 {2, 2, 3, 5},
		97:                 {97},
		100:                {2, 2, 5, 5},
		1024:               {2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		3 * 3 * 7 * 7 * 11: {3, 3, 7, 7, 11},
		4_294_967_297:      {641, 6_700_417},
	}
	for n, want := range cases {
		assert.Equal(t, want, prime.Factors(n), "Factors(%d)", n)
	}
}

// TestFactors_BelowTwo verifies the empty, non-nil result for n < 2.
func TestFactors_BelowTwo(t *testing.T) {
	for _, n := range []int64{1, 0, -1, -60, math.MinInt64} {
		got := prime.Factors(n)
		assert.NotNil(t, got, "Factors(%d)", n)
		assert.Empty(t, got, "Factors(%d)", n)
	}
}

// TestFactors_Reconstruct checks the product identity, primality of every
// factor and ascending order across a dense window.
func TestFactors_Reconstruct(t *testing.T) {
	check := func(n int64) {
		fs := prime.Factors(n)
		product := int64(1)
		for i, f := range fs {
			if !prime.IsPrime(f) {
				t.Fatalf("Factors(%d) contains non-prime %d", n, f)
			}
			if i > 0 && fs[i-1] > f {
				t.Fatalf("Factors(%d) not ascending: %v", n, fs)
			}
			product *= f
		}
		if product != n {
			t.Fatalf("product of Factors(%d) = %d", n, product)
		}
	}
	for n := int64(2); n <= 20000; n++ {
		check(n)
	}
	for _, n := range []int64{999_999_999_989, 1_000_003 * 1_000_033, 1 << 62, math.MaxInt64} {
		check(n)
	}
}

// TestFactors_MaxInt64 pins the factorization of 2^63-1 = 7² · 73 · 127 · 337 · 92737 · 649657.
func TestFactors_MaxInt64(t *testing.T) {
	assert.Equal(t, []int64{7, 7, 73, 127, 337, 92737, 649657}, prime.Factors(math.MaxInt64))
}
