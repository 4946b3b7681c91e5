// SPDX-License-Identifier: MIT
// Package: intprops/prime
//
// prime.go — trial-division primality testers.

package prime

// IsPrime reports whether n is prime using trial division by every odd
// number from 3 up to and including ⌊√n⌋.
//
//	n < 2        → false
//	n == 2       → true
//	even n > 2   → false
//
// Complexity: O(√n) time, O(1) space.
func IsPrime(n int64) bool {
	switch {
	case n < 2:
		return false
	case n == 2:
		return true
	case n%2 == 0:
		return false
	}

	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// IsPrimeFast returns exactly the same verdicts as IsPrime but only tries
// candidates of the form 6k±1: i and i+2 for i = 5, 11, 17, …
//
// Complexity: O(√n) time with a third of IsPrime's divisions, O(1) space.
func IsPrimeFast(n int64) bool {
	switch {
	case n < 2:
		return false
	case n <= 3:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}

	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
