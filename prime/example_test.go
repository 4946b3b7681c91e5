package prime_test

import (
	"fmt"

	"github.com/katalvlaran/intprops/prime"
)

// ExampleIsPrime compares both testers on the demo numbers.
func ExampleIsPrime() {
	for _, n := range []int64{2, 4, 17, 25, 97, 100} {
		fmt.Printf("%3d -> %v | fast: %v\n", n, prime.IsPrime(n), prime.IsPrimeFast(n))
	}
	// Output:
	//   2 -> true | fast: true
	//   4 -> false | fast: false
	//  17 -> true | fast: true
	//  25 -> false | fast: false
	//  97 -> true | fast: true
	// 100 -> false | fast: false
}

// ExampleSieve lists the primes up to 30.
func ExampleSieve() {
	primes, err := prime.Sieve(30)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(primes)
	// Output:
	// [2 3 5 7 11 13 17 19 23 29]
}

// ExampleFactors prints a factorization.
func ExampleFactors() {
	fmt.Println(prime.Factors(60))
	fmt.Println(prime.Factors(17))
	// Output:
	// [2 2 3 5]
	// [17]
}

// ExampleNextPrime finds the prime after 13 and checks twin membership.
func ExampleNextPrime() {
	p, err := prime.NextPrime(13)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p, prime.IsTwin(13), prime.IsTwin(23))
	// Output:
	// 17 true false
}
