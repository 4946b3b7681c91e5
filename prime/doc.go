// Package prime is a small toolkit for primality over int64: two trial
// division testers, range and sieve enumeration, factorization, next-prime
// search and twin-prime detection.
//
// 🚀 What is a prime?
//
//	An integer greater than 1 whose only positive divisors are 1 and itself.
//	Every prime above 3 is congruent to 1 or 5 modulo 6 (the 6k±1 form),
//	which lets trial division skip four of every six candidates.
//
// ✨ Key features:
//   - IsPrime      — trial division by odd numbers up to ⌊√n⌋
//   - IsPrimeFast  — 6k±1 trial division (same verdicts as IsPrime)
//   - InRange      — inclusive scan of [max(2,start), end] with IsPrime
//   - Sieve        — Sieve of Eratosthenes up to a limit (same output as InRange(2, limit))
//   - Factors      — ascending prime multiset whose product is n
//   - NextPrime    — smallest prime strictly above n
//   - IsTwin/Twins — membership of at least one twin pair (p-2 or p+2 prime)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/intprops/prime"
//
//	prime.IsPrime(97)         // true
//	ps, err := prime.Sieve(30)    // [2 3 5 7 11 13 17 19 23 29], nil
//	prime.Factors(60)         // [2 2 3 5]
//	p, err := prime.NextPrime(13) // 17, nil
//
// All functions are pure and safe for concurrent use. Square bounds are
// written as i <= n/i so no intermediate product can overflow int64.
//
// Performance:
//
//   - IsPrime / IsPrimeFast / Factors: O(√n)
//   - Sieve:                           O(n log log n) time, O(n) memory, n ≤ MaxSieveLimit
//   - InRange:                         O((end-start)·√end)
package prime
