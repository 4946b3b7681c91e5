package prime_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intprops/prime"
)

// TestNextPrime_Reference checks small, well-known successors.
func TestNextPrime_Reference(t *testing.T) {
	cases := map[int64]int64{
		13:        17,
		2:         3,
		3:         5,
		1:         2,
		0:         2,
		-100:      2,
		24:        29,
		89:        97,
		97:        101,
		7919:      7927,
		1_000_000: 1_000_003,
	}
	for n, want := range cases {
		got, err := prime.NextPrime(n)
		require.NoError(t, err, "NextPrime(%d)", n)
		assert.Equal(t, want, got, "NextPrime(%d)", n)
	}
}

// TestNextPrime_Minimality verifies the result is prime, strictly greater
// than n and that nothing in between is prime.
func TestNextPrime_Minimality(t *testing.T) {
	for n := int64(-20); n <= 5000; n++ {
		p, err := prime.NextPrime(n)
		require.NoError(t, err)
		if !prime.IsPrime(p) || p <= n {
			t.Fatalf("NextPrime(%d) = %d is not a prime above n", n, p)
		}
		for k := n + 1; k < p; k++ {
			if prime.IsPrime(k) {
				t.Fatalf("NextPrime(%d) = %d skipped prime %d", n, p, k)
			}
		}
	}
}

// TestNextPrime_Overflow verifies the int64 ceiling is reported, not wrapped.
func TestNextPrime_Overflow(t *testing.T) {
	for _, n := range []int64{prime.MaxPrime64, prime.MaxPrime64 + 1, math.MaxInt64} {
		_, err := prime.NextPrime(n)
		assert.ErrorIs(t, err, prime.ErrOverflow, "NextPrime(%d)", n)
	}
}

// TestIsTwin checks either-side membership semantics.
func TestIsTwin(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{13, true},  // 11 below
		{11, true},  // 13 above
		{3, true},   // 5 above
		{5, true},   // both sides
		{23, false}, // 21 and 25 composite
		{37, false}, // 35 and 39 composite
		{2, false},  // 0 and 4 not prime
		{15, false}, // not prime
		{1, false},
		{-3, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, prime.IsTwin(tc.n), "IsTwin(%d)", tc.n)
	}
}
