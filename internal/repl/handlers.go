package repl

import (
	"github.com/katalvlaran/intprops/internal/report"
	"github.com/katalvlaran/intprops/palindrome"
	"github.com/katalvlaran/intprops/prime"
)

// PalindromeHandler reports whether each number is a palindrome.
func PalindromeHandler(r *report.Renderer) Handler {
	return func(n int64) error {
		return r.Render(report.PalindromeCheck{N: n, Palindrome: palindrome.IsPalindrome(n)})
	}
}

// PrimeHandler reports primality; for primes it adds the next prime and the
// twin notice, for composites with more than one factor the factor list.
func PrimeHandler(r *report.Renderer) Handler {
	return func(n int64) error {
		return r.Render(CheckPrime(n))
	}
}

// CheckPrime assembles the full PrimeCheck record for n.
func CheckPrime(n int64) report.PrimeCheck {
	rec := report.PrimeCheck{N: n, Prime: prime.IsPrime(n)}
	if !rec.Prime {
		if fs := prime.Factors(n); len(fs) > 1 {
			rec.Factors = fs
		}

		return rec
	}

	// Above MaxPrime64 there is no successor to report.
	if next, err := prime.NextPrime(n); err == nil {
		rec.Next = &next
	}
	rec.Twin = prime.IsTwin(n)

	return rec
}
