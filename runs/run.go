package runs

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/lox/interps"
	"github.com/reusee/lox/logs"
)

// Run executes a whole program with a fresh environment.
type Run func(ctx context.Context, name string, source string) int

func (Module) Run(
	runner *Runner,
) Run {
	return func(ctx context.Context, name string, source string) int {
		return runner.Run(ctx, name, source, interps.NewEnvironment())
	}
}

// RunFile reads and executes a script file.
type RunFile func(ctx context.Context, path string) int

func (Module) RunFile(
	run Run,
	logger logs.Logger,
	errOutput ErrOutput,
) RunFile {
	return func(ctx context.Context, path string) int {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.ErrorContext(ctx, "read script",
				"path", path,
				"error", wrap(err),
			)
			fmt.Fprintf(errOutput, "%v\n", err)
			return ExitIO
		}
		return run(ctx, path, string(content))
	}
}
