// Package palindrome decides whether an integer's decimal digits read the
// same forwards and backwards.
//
// 🚀 What is a palindrome number?
//
//	An integer whose decimal digit sequence is a mirror image of itself:
//	  121, 1221, 12321, 7, 0 — palindromes
//	  123, 10, -121         — not palindromes
//
//	A leading minus sign breaks the mirror, so every negative integer is
//	rejected by definition.
//
// ✨ Key features:
//   - IsPalindrome            — text strategy (render digits, compare with reverse)
//   - IsPalindromeArithmetic  — arithmetic strategy (n%10 / n/10, no strings)
//   - InRange / Count         — inclusive range scan in ascending order
//
// Both predicates are total over int64 and always agree; the arithmetic
// variant accumulates the reversal in a uint64, so even 19-digit inputs
// never wrap.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/intprops/palindrome"
//
//	palindrome.IsPalindrome(12321)   // true
//	palindrome.InRange(1, 20)        // [1 2 3 4 5 6 7 8 9 11]
//
// Performance:
//
//   - IsPalindrome / IsPalindromeArithmetic: O(d), d = number of digits
//   - InRange: O((end-start+1)·d)
package palindrome
