package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intprops/internal/repl"
	"github.com/katalvlaran/intprops/internal/report"
	"github.com/katalvlaran/intprops/palindrome"
)

func (a *app) newPalindromeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palindrome",
		Aliases: []string{"pal"},
		Short:   "Palindrome number checks",
	}

	var arithmetic bool
	check := &cobra.Command{
		Use:   "check N...",
		Short: "Report whether each number is a palindrome",
		Args:  int64Args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInt64s(args)
			if err != nil {
				return err
			}

			return a.withRenderer(cmd, func(r *report.Renderer) error {
				return renderEach(r, nums, func(n int64) report.Record { return checkPalindrome(n, arithmetic) })
			})
		},
	}
	check.Flags().BoolVar(&arithmetic, "arithmetic", false, "use digit arithmetic instead of the text representation")

	rng := &cobra.Command{
		Use:   "range START END",
		Short: "List the palindromes in [START, END]",
		Args:  int64Args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := parseInt64s(args)
			if err != nil {
				return err
			}
			values := palindrome.InRange(bounds[0], bounds[1])
			a.logger.Debug("palindrome range scanned", zap.Int64("start", bounds[0]), zap.Int64("end", bounds[1]), zap.Int("found", len(values)))

			return a.withRenderer(cmd, func(r *report.Renderer) error {
				return r.Render(report.Sequence{
					Title:  fmt.Sprintf("Palindromes between %d and %d", bounds[0], bounds[1]),
					Values: values,
				})
			})
		},
	}

	shell := &cobra.Command{
		Use:   "repl",
		Short: "Check numbers interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRenderer(cmd, func(r *report.Renderer) error {
				return a.runREPL(cmd, r, repl.PalindromeHandler(r))
			})
		},
	}

	cmd.AddCommand(check, rng, shell)

	return cmd
}

// checkPalindrome evaluates n with the selected strategy.
func checkPalindrome(n int64, arithmetic bool) report.PalindromeCheck {
	if arithmetic {
		return report.PalindromeCheck{N: n, Palindrome: palindrome.IsPalindromeArithmetic(n), Strategy: "arithmetic"}
	}

	return report.PalindromeCheck{N: n, Palindrome: palindrome.IsPalindrome(n), Strategy: "text"}
}
