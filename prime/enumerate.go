// SPDX-License-Identifier: MIT
// Package: intprops/prime
//
// enumerate.go — range scan, Sieve of Eratosthenes and twin listing.

package prime

import "fmt"

// firstPrime is the smallest prime; every enumeration starts here at the earliest.
const firstPrime = 2

// InRange returns every prime in [max(2, start), end] in ascending order,
// testing each candidate with IsPrime. The result is empty (non-nil) when
// the effective range is empty.
//
// Complexity: O((end-start)·√end) time.
func InRange(start, end int64) []int64 {
	out := make([]int64, 0)
	if start < firstPrime {
		start = firstPrime
	}
	if start > end {
		return out
	}
	for n := start; ; n++ {
		if IsPrime(n) {
			out = append(out, n)
		}
		if n == end {
			return out
		}
	}
}

// Sieve returns all primes ≤ limit in ascending order using the Sieve of
// Eratosthenes. It yields the same sequence as InRange(2, limit). Limits
// above MaxSieveLimit return ErrLimitTooLarge before anything is allocated.
//
// Algorithm:
//  1. Mark 2..limit as candidates (0 and 1 are cleared).
//  2. For p = 2, 3, … while p*p ≤ limit: if p is still marked, clear
//     p*p, p*p+p, … ≤ limit.
//  3. Collect the indices still marked.
//
// Complexity: O(limit·log log limit) time, O(limit) space.
func Sieve(limit int) ([]int64, error) {
	if limit > MaxSieveLimit {
		return nil, fmt.Errorf("%w: %d > %d", ErrLimitTooLarge, limit, MaxSieveLimit)
	}
	if limit < firstPrime {
		return []int64{}, nil
	}

	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true
	for p := firstPrime; p <= limit/p; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}
	}

	out := make([]int64, 0, estimateCount(limit))
	for i := firstPrime; i <= limit; i++ {
		if !composite[i] {
			out = append(out, int64(i))
		}
	}

	return out, nil
}

// Twins returns every prime ≤ limit that belongs to at least one twin pair,
// in ascending order. For limit = 30 that is [3 5 7 11 13 17 19 29].
// It shares Sieve's MaxSieveLimit bound.
func Twins(limit int) ([]int64, error) {
	primes, err := Sieve(limit)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(primes))
	for _, p := range primes {
		if IsTwin(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

// estimateCount gives a cheap upper-ish bound on π(limit) for slice
// preallocation: limit/2 for tiny inputs, limit/3 otherwise.
func estimateCount(limit int) int {
	if limit < 64 {
		return limit/2 + 1
	}

	return limit / 3
}
