// SPDX-License-Identifier: MIT
// Package: intprops/prime
//
// errors.go — sentinel errors for the prime package.
//
// Predicates and enumerations never panic. Errors surface only where a
// result would not fit in int64 or a sieve table would not fit in memory.

package prime

import "errors"

// MaxPrime64 is the largest prime representable as an int64 (2^63 - 25).
const MaxPrime64 int64 = 9223372036854775783

// ErrOverflow indicates that no int64 prime exists above the input, i.e.
// NextPrime was asked to step past MaxPrime64.
// Usage: if errors.Is(err, ErrOverflow) { /* input too large */ }.
var ErrOverflow = errors.New("prime: no int64 prime above input")

// MaxSieveLimit is the largest limit Sieve and Twins accept. The sieve
// keeps one bool per integer in [0, limit], so this caps the table at 1 GiB
// and keeps limit+1 inside int on 32-bit platforms too.
const MaxSieveLimit = 1 << 30

// ErrLimitTooLarge indicates a Sieve or Twins limit above MaxSieveLimit.
// InRange(2, limit) computes the same primes without a table.
var ErrLimitTooLarge = errors.New("prime: sieve limit too large")
