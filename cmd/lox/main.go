package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/runs"
)

var files = cmds.Collect[string]("-file", "script to run, the REPL starts when absent")

func init() {
	cmds.GlobalExecutor.Positional = func(arg string) error {
		*files = append(*files, arg)
		return nil
	}
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(runs.ExitUsage)
	}
	if len(*files) > 1 {
		fmt.Fprintf(os.Stderr, "usage: lox [options] [script]\n")
		os.Exit(runs.ExitUsage)
	}

	ctx := context.Background()
	code := runs.ExitOK
	dscope.New(
		new(runs.Module),
		modes.ForProduction(),
	).Call(func(
		runFile runs.RunFile,
		repl runs.REPL,
	) {
		if len(*files) == 1 {
			code = runFile(ctx, (*files)[0])
		} else {
			code = repl(ctx)
		}
	})
	os.Exit(code)
}
