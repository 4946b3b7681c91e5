package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intprops/internal/repl"
	"github.com/katalvlaran/intprops/internal/report"
	"github.com/katalvlaran/intprops/prime"
)

func (a *app) newPrimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Prime number checks, enumeration and factorization",
	}

	cmd.AddCommand(
		a.eachNumber("check N...", "Report primality, next prime and twin status or factors",
			func(n int64) (report.Record, error) { return repl.CheckPrime(n), nil }),
		a.eachNumber("compare N...", "Compare the trial-division and 6k±1 testers",
			func(n int64) (report.Record, error) {
				return report.Comparison{N: n, Plain: prime.IsPrime(n), Fast: prime.IsPrimeFast(n)}, nil
			}),
		a.eachNumber("factors N...", "Print the prime factorization of each number",
			func(n int64) (report.Record, error) {
				return report.Factorization{N: n, Factors: prime.Factors(n)}, nil
			}),
		a.eachNumber("next N...", "Print the smallest prime above each number",
			func(n int64) (report.Record, error) {
				p, err := prime.NextPrime(n)
				if err != nil {
					return nil, fmt.Errorf("next prime after %d: %w", n, err)
				}

				return report.NextPrime{N: n, Next: p}, nil
			}),
		a.eachNumber("twin N...", "Report whether each number belongs to a twin prime pair",
			func(n int64) (report.Record, error) {
				return report.TwinCheck{N: n, Twin: prime.IsTwin(n)}, nil
			}),
		&cobra.Command{
			Use:   "range START END",
			Short: "List the primes in [START, END] by trial division",
			Args:  int64Args(cobra.ExactArgs(2)),
			RunE: func(cmd *cobra.Command, args []string) error {
				bounds, err := parseInt64s(args)
				if err != nil {
					return err
				}

				return a.renderSequence(cmd, fmt.Sprintf("Primes between %d and %d", bounds[0], bounds[1]),
					prime.InRange(bounds[0], bounds[1]))
			},
		},
		a.limitCommand("sieve LIMIT", "List the primes up to LIMIT with the Sieve of Eratosthenes",
			"Primes up to %d (using Sieve)", prime.Sieve),
		a.limitCommand("twins LIMIT", "List the twin-prime members up to LIMIT",
			"Twin primes up to %d", prime.Twins),
		&cobra.Command{
			Use:   "repl",
			Short: "Check numbers interactively",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withRenderer(cmd, func(r *report.Renderer) error {
					return a.runREPL(cmd, r, repl.PrimeHandler(r))
				})
			},
		},
	)

	return cmd
}

// eachNumber builds a subcommand that evaluates fn for every integer
// argument and renders the resulting records in order.
func (a *app) eachNumber(use, short string, fn func(n int64) (report.Record, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  int64Args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInt64s(args)
			if err != nil {
				return err
			}

			return a.withRenderer(cmd, func(r *report.Renderer) error {
				for _, n := range nums {
					rec, err := fn(n)
					if err != nil {
						a.logger.Warn("evaluation failed", zap.Int64("n", n), zap.Error(err))
						return err
					}
					if err := r.Render(rec); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}

// limitCommand builds a subcommand taking a single int limit.
func (a *app) limitCommand(use, short, title string, fn func(limit int) ([]int64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseLimit(args[0])
			if err != nil {
				return err
			}
			values, err := fn(limit)
			if err != nil {
				return err
			}

			return a.renderSequence(cmd, fmt.Sprintf(title, limit), values)
		},
	}
}

func (a *app) renderSequence(cmd *cobra.Command, title string, values []int64) error {
	a.logger.Debug("sequence computed", zap.String("title", title), zap.Int("count", len(values)))

	return a.withRenderer(cmd, func(r *report.Renderer) error {
		return r.Render(report.Sequence{Title: title, Values: values})
	})
}
