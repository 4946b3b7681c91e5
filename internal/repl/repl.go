// Package repl runs the line-oriented interactive shells: read a line,
// classify it, hand numbers to a handler and loop until the quit word,
// end of input or cancellation.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Kind classifies one line of user input.
type Kind int

const (
	// KindInvalid is anything that is neither a number nor the quit word.
	KindInvalid Kind = iota
	// KindNumber is a line that parsed as a base-10 int64.
	KindNumber
	// KindQuit is the (case-insensitive) quit word.
	KindQuit
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// Input is the typed result of parsing a line.
type Input struct {
	Kind Kind
	N    int64  // valid when Kind == KindNumber
	Raw  string // trimmed line
	Err  error  // parse failure when Kind == KindInvalid
}

// ErrEmptyInput is reported for blank lines.
var ErrEmptyInput = errors.New("repl: empty input")

// InvalidInputMessage is printed for every rejected line.
const InvalidInputMessage = "Please enter a valid integer or '%s' to exit."

// Parse classifies line. Surrounding whitespace is ignored and quit is
// compared case-insensitively.
func Parse(line, quit string) Input {
	raw := strings.TrimSpace(line)
	switch {
	case raw == "":
		return Input{Kind: KindInvalid, Raw: raw, Err: ErrEmptyInput}
	case strings.EqualFold(raw, strings.TrimSpace(quit)):
		return Input{Kind: KindQuit, Raw: raw}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Input{Kind: KindInvalid, Raw: raw, Err: err}
	}

	return Input{Kind: KindNumber, N: n, Raw: raw}
}

// Handler processes one accepted number. Returning an error ends the session.
type Handler func(n int64) error

// Session is one interactive loop.
type Session struct {
	In     io.Reader
	Out    io.Writer // prompts and messages; Handle writes its own results
	Prompt string
	Quit   string
	Handle Handler
	Logger *zap.Logger
}

// Run prompts and processes lines until the quit word, end of input, a
// handler error or ctx cancellation. Quit, EOF and cancellation all return
// nil; cancellation additionally prints "Goodbye!".
//
// Lines are read by a single goroutine that exits once input ends or Run
// has returned and the pending read completes.
func (s *Session) Run(ctx context.Context) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.In)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if _, err := fmt.Fprint(s.Out, s.Prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			logger.Debug("session interrupted", zap.Error(ctx.Err()))
			_, err := fmt.Fprintln(s.Out, "\nGoodbye!")

			return err
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				logger.Debug("input closed")
				_, err := fmt.Fprintln(s.Out)

				return err
			}
			line = l
		}

		in := Parse(line, s.Quit)
		switch in.Kind {
		case KindQuit:
			logger.Debug("quit requested")
			return nil
		case KindInvalid:
			logger.Debug("rejected input", zap.String("raw", in.Raw), zap.Error(in.Err))
			if _, err := fmt.Fprintf(s.Out, InvalidInputMessage+"\n", s.Quit); err != nil {
				return err
			}
		case KindNumber:
			if err := s.Handle(in.N); err != nil {
				return err
			}
		}
	}
}
