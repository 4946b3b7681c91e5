package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intprops/internal/config"
	"github.com/katalvlaran/intprops/internal/report"
	"github.com/katalvlaran/intprops/palindrome"
	"github.com/katalvlaran/intprops/prime"
)

func (a *app) newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "demo [palindrome|prime]",
		Short:     "Print the demonstration report for one or both modules",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"palindrome", "prime"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}

			return a.withRenderer(cmd, func(r *report.Renderer) error {
				if which == "" || which == "palindrome" {
					if err := palindromeDemo(r, a.cfg.Demo); err != nil {
						return err
					}
				}
				if which == "" {
					if err := r.Blank(); err != nil {
						return err
					}
				}
				if which == "" || which == "prime" {
					return primeDemo(r, a.cfg.Demo)
				}

				return nil
			})
		},
	}
}

// palindromeDemo prints the palindrome checker's demonstration report.
func palindromeDemo(r *report.Renderer, d config.DemoConfig) error {
	steps := []func() error{
		func() error { return r.Render(report.Heading{Text: "Palindrome Number Checker"}) },
		func() error { return section(r, "Testing individual numbers:") },
		func() error {
			return renderEach(r, d.Palindromes, func(n int64) report.Record { return palindromeRow(n, false) })
		},
		func() error { return section(r, "Testing mathematical approach:") },
		func() error {
			return renderEach(r, d.Palindromes, func(n int64) report.Record { return palindromeRow(n, true) })
		},
		func() error { return r.Blank() },
		func() error {
			return r.Render(report.Sequence{
				Title:  fmt.Sprintf("Palindromes between 1 and %d", d.RangeEnd),
				Values: palindrome.InRange(1, d.RangeEnd),
			})
		},
		func() error { return r.Blank() },
		func() error {
			return r.Render(report.Sequence{
				Title:  fmt.Sprintf("Palindromes between %d and %d", d.RangeEnd, d.RangeEnd*10),
				Values: palindrome.InRange(d.RangeEnd, d.RangeEnd*10),
			})
		},
	}

	return runSteps(steps)
}

// palindromeRow is checkPalindrome in the demo's table layout.
func palindromeRow(n int64, arithmetic bool) report.PalindromeRow {
	c := checkPalindrome(n, arithmetic)

	return report.PalindromeRow{N: c.N, Palindrome: c.Palindrome, Strategy: c.Strategy}
}

// primeDemo prints the prime checker's demonstration report.
func primeDemo(r *report.Renderer, d config.DemoConfig) error {
	half := d.RangeEnd / 2
	steps := []func() error{
		func() error { return r.Render(report.Heading{Text: "Prime Number Checker"}) },
		func() error { return section(r, "Testing individual numbers:") },
		func() error {
			return renderEach(r, d.Primes, func(n int64) report.Record {
				return report.Comparison{N: n, Plain: prime.IsPrime(n), Fast: prime.IsPrimeFast(n)}
			})
		},
		func() error { return r.Blank() },
		func() error {
			return r.Render(report.Sequence{
				Title:  fmt.Sprintf("Primes between 1 and %d", half),
				Values: prime.InRange(1, half),
			})
		},
		func() error { return r.Blank() },
		func() error {
			return renderLimit(r, fmt.Sprintf("Primes up to %d (using Sieve)", d.SieveLimit), d.SieveLimit, prime.Sieve)
		},
		func() error { return section(r, "Prime factorization examples:") },
		func() error {
			return renderEach(r, d.Factors, func(n int64) report.Record {
				return report.Factorization{N: n, Factors: prime.Factors(n)}
			})
		},
		func() error { return r.Blank() },
		func() error {
			return renderLimit(r, fmt.Sprintf("Twin primes up to %d", d.SieveLimit), d.SieveLimit, prime.Twins)
		},
	}

	return runSteps(steps)
}

// renderLimit renders the sequence fn produces for limit under title.
func renderLimit(r *report.Renderer, title string, limit int, fn func(int) ([]int64, error)) error {
	values, err := fn(limit)
	if err != nil {
		return err
	}

	return r.Render(report.Sequence{Title: title, Values: values})
}

// section writes a blank line followed by a caption (text output only).
func section(r *report.Renderer, caption string) error {
	if err := r.Blank(); err != nil {
		return err
	}

	return r.Text(caption)
}

func renderEach(r *report.Renderer, nums []int64, fn func(int64) report.Record) error {
	recs := make([]report.Record, len(nums))
	for i, n := range nums {
		recs[i] = fn(n)
	}

	return r.RenderAll(recs...)
}

func runSteps(steps []func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}
