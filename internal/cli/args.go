package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intprops/prime"
)

// ErrBadArgument is wrapped by every positional-argument parse failure.
var ErrBadArgument = errors.New("cli: invalid integer argument")

// int64Args validates that every positional argument is a base-10 int64,
// on top of the given count constraint.
func int64Args(count cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := count(cmd, args); err != nil {
			return err
		}
		_, err := parseInt64s(args)

		return err
	}
}

// parseInt64s converts args to int64 values, reporting the first failure.
func parseInt64s(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, s := range args {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBadArgument, s, err)
		}
		out[i] = n
	}

	return out, nil
}

// parseLimit converts a sieve-style limit to int, rejecting values whose
// sieve table would exceed prime.MaxSieveLimit.
func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrBadArgument, s, err)
	}
	if n > prime.MaxSieveLimit {
		return 0, fmt.Errorf("%w %q: limit must not exceed %d", ErrBadArgument, s, prime.MaxSieveLimit)
	}

	return n, nil
}
