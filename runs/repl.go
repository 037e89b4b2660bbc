package runs

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/lox/interps"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
)

type LineReader interface {
	Readline() (string, error)
	Close() error
}

type NewLineReader func() (LineReader, error)

func (Module) NewLineReader(
	prompt loxconfigs.Prompt,
	historyFile loxconfigs.HistoryFile,
	output Output,
	errOutput ErrOutput,
) NewLineReader {
	return func() (LineReader, error) {
		return readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
			Stdout:      output,
			Stderr:      errOutput,
		})
	}
}

// REPL reads lines until end of input, running each one against a shared environment.
type REPL func(ctx context.Context) int

func (Module) REPL(
	runner *Runner,
	newLineReader NewLineReader,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) int {
		rl, err := newLineReader()
		if err != nil {
			logger.ErrorContext(ctx, "new line reader",
				"error", wrap(err),
			)
			return ExitIO
		}
		defer rl.Close()

		env := interps.NewEnvironment()
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				if line == "" {
					return ExitOK
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return ExitOK
			}
			if err != nil {
				logger.ErrorContext(ctx, "read line",
					"error", wrap(err),
				)
				return ExitIO
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			code := runner.Run(ctx, "<stdin>", line, env)
			logger.DebugContext(ctx, "line done",
				"code", code,
			)
		}
	}
}
