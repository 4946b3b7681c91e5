// SPDX-License-Identifier: MIT
// Package: intprops/prime
//
// next.go — next-prime search and twin-prime membership.

package prime

// NextPrime returns the smallest prime strictly greater than n by testing
// n+1, n+2, … with IsPrime. There is no iteration cap: the search always
// ends because primes are unbounded, except that int64 runs out above
// MaxPrime64, in which case ErrOverflow is returned instead of wrapping.
//
// Complexity: O(g·√p), g = prime gap after n, p = the result.
func NextPrime(n int64) (int64, error) {
	if n >= MaxPrime64 {
		return 0, ErrOverflow
	}
	if n < firstPrime {
		return firstPrime, nil
	}

	c := n + 1
	for !IsPrime(c) {
		c++
	}

	return c, nil
}

// IsTwin reports whether n is prime and at least one of n-2, n+2 is prime.
// A prime flanked on either side counts, so both 11 and 13 are twins.
func IsTwin(n int64) bool {
	if !IsPrime(n) {
		return false
	}

	return IsPrime(n-2) || IsPrime(n+2)
}
