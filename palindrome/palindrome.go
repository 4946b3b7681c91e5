// SPDX-License-Identifier: MIT
// Package: intprops/palindrome
//
// palindrome.go — palindrome predicates and the inclusive range scan.

package palindrome

import "strconv"

// radix is the base in which digit symmetry is judged.
const radix = 10

// IsPalindrome reports whether n's decimal representation reads the same
// forwards and backwards. Negative numbers are never palindromes.
//
// Complexity: O(d) time, O(d) space.
func IsPalindrome(n int64) bool {
	if n < 0 {
		return false
	}

	s := strconv.FormatInt(n, radix)
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		if s[l] != s[r] {
			return false
		}
	}

	return true
}

// IsPalindromeArithmetic has the same contract as IsPalindrome but never
// forms a text representation: it peels off the least-significant digit,
// pushes it onto a reversed accumulator and compares the result with n.
//
// The accumulator is a uint64: the reversal of any int64 has at most 19
// digits and therefore fits without overflow.
//
// Complexity: O(d) time, O(1) space.
func IsPalindromeArithmetic(n int64) bool {
	if n < 0 {
		return false
	}

	original := uint64(n)
	var reversed uint64
	for rest := original; rest > 0; rest /= radix {
		reversed = reversed*radix + rest%radix
	}

	return reversed == original
}

// InRange returns every palindrome in [start, end] in ascending order.
// The result is empty (non-nil) when start > end or nothing matches.
//
// Complexity: O((end-start+1)·d) time.
func InRange(start, end int64) []int64 {
	out := make([]int64, 0)
	scan(start, end, func(n int64) {
		out = append(out, n)
	})

	return out
}

// Count returns the number of palindromes in [start, end] without
// materializing them.
func Count(start, end int64) int {
	var c int
	scan(start, end, func(int64) { c++ })

	return c
}

// scan calls yield for every palindrome in [start, end]. Negative numbers
// are skipped up front; the loop exits on n == end so it never steps past
// MaxInt64.
func scan(start, end int64, yield func(int64)) {
	if start < 0 {
		start = 0
	}
	if start > end {
		return
	}
	for n := start; ; n++ {
		if IsPalindrome(n) {
			yield(n)
		}
		if n == end {
			return
		}
	}
}
