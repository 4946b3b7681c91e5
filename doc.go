// Package intprops is a small toolkit for classic integer properties:
// palindrome numbers and primes, exposed both as libraries and through the
// intprops command.
//
// 🚀 What is intprops?
//
//	Two pure, dependency-free libraries plus a CLI that drives them:
//		• palindrome: text and arithmetic palindrome predicates, range scans
//		• prime: trial division, 6k±1 testing, Sieve of Eratosthenes,
//		  factorization, next prime, twin primes
//		• cmd/intprops: one subcommand per operation, interactive shells,
//		  the demonstration report, text/JSON/YAML output
//
// ✨ Why choose intprops?
//
//   - Total over int64: no input panics; the two results that cannot exist
//     (a prime above MaxPrime64, a sieve table above MaxSieveLimit) are errors
//   - Overflow-safe: square bounds use i <= n/i, reversals use uint64
//   - Deterministic: ascending, duplicate-free results; empty means []
//   - Safe for concurrent use: no shared mutable state
//
// Under the hood, the repository is organized as:
//
//	palindrome/       — IsPalindrome, IsPalindromeArithmetic, InRange, Count
//	prime/            — IsPrime, IsPrimeFast, InRange, Sieve, Twins, Factors, NextPrime, IsTwin
//	internal/config/  — viper-backed configuration (file, env, flags)
//	internal/logging/ — zap logger construction
//	internal/report/  — text (lipgloss), JSON and YAML renderers
//	internal/repl/    — line-oriented interactive sessions
//	internal/cli/     — cobra command tree
//	cmd/intprops/     — the binary
//
// Quick example:
//
//	$ intprops prime check 13
//	13 is prime
//	Next prime after 13: 17
//	13 is part of a twin prime pair!
//
//	go install github.com/katalvlaran/intprops/cmd/intprops@latest
package intprops
