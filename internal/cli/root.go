// Package cli wires the intprops command tree: configuration, logging,
// output rendering and one subcommand per library operation.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intprops/internal/config"
	"github.com/katalvlaran/intprops/internal/logging"
	"github.com/katalvlaran/intprops/internal/report"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCommand builds a fresh command tree. Each call returns an
// independent tree, so tests can execute commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "intprops",
		Short: "Integer property toolkit - palindromes and primes",
		Long: `intprops checks integer properties from the command line.

It supports:
  - palindrome checks (text and arithmetic strategies) and range scans
  - primality tests (trial division and 6k±1), ranges and the Sieve of Eratosthenes
  - prime factorization, next-prime search and twin-prime detection
  - interactive shells and the classic demonstration report`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg

			logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			a.logger.Debug("command started",
				zap.String("command", cmd.CommandPath()),
				zap.Strings("args", args),
				zap.String("output", cfg.Output.Format))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logger.Debug("command finished", zap.String("command", cmd.CommandPath()))
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (json, console)")
	pf.StringP("output", "o", "text", "output format (text, json, yaml)")
	pf.Bool("color", false, "style verdicts in text output")

	root.AddCommand(
		a.newPalindromeCommand(),
		a.newPrimeCommand(),
		a.newDemoCommand(),
		newVersionCommand(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// withRenderer creates a renderer for cmd's output, runs fn and flushes the
// renderer even if fn fails.
func (a *app) withRenderer(cmd *cobra.Command, fn func(r *report.Renderer) error) (err error) {
	r, err := report.NewRenderer(cmd.OutOrStdout(), a.cfg.Output.Format, a.cfg.Output.Color)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(r)
}

// contextOf returns cmd's context, falling back to Background for commands
// executed without one.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
