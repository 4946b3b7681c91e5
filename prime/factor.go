// SPDX-License-Identifier: MIT
// Package: intprops/prime
//
// factor.go — prime factorization by trial division.

package prime

// Factors returns the prime factorization of n as an ascending multiset:
// the product of the returned values equals n and every value is prime.
// For n < 2 the result is empty (non-nil).
//
// Algorithm:
//  1. Divide out 2 while n is even, appending 2 each time.
//  2. For odd c = 3, 5, … while c*c ≤ rest: divide out c while it divides.
//  3. Whatever remains above 1 is itself prime and is appended last.
//
// Complexity: O(√n) time.
func Factors(n int64) []int64 {
	out := make([]int64, 0)
	if n < firstPrime {
		return out
	}

	rest := n
	for rest%2 == 0 {
		out = append(out, 2)
		rest /= 2
	}
	for c := int64(3); c <= rest/c; c += 2 {
		for rest%c == 0 {
			out = append(out, c)
			rest /= c
		}
	}
	if rest > 1 {
		out = append(out, rest)
	}

	return out
}
