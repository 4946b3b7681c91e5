package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intprops/internal/repl"
	"github.com/katalvlaran/intprops/internal/report"
)

// runREPL prints the banner and runs an interactive session on cmd's
// streams until the quit word, end of input or an interrupt. Records go
// through r; with a structured format the banner, prompts and messages are
// written to stderr so stdout carries records only.
func (a *app) runREPL(cmd *cobra.Command, r *report.Renderer, h repl.Handler) error {
	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if r.Format() != report.FormatText {
		out = cmd.ErrOrStderr()
	}
	fmt.Fprintln(out, "Interactive Mode - Enter numbers to check")
	fmt.Fprintf(out, "Type '%s' to exit\n", a.cfg.REPL.Quit)

	s := &repl.Session{
		In:     cmd.InOrStdin(),
		Out:    out,
		Prompt: a.cfg.REPL.Prompt,
		Quit:   a.cfg.REPL.Quit,
		Handle: h,
		Logger: a.logger.Named("repl"),
	}

	return s.Run(ctx)
}
