package runs

import (
	"context"
	"fmt"
	"slices"

	"github.com/reusee/lox/asts"
	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/interps"
	"github.com/reusee/lox/lexers"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
	"github.com/reusee/lox/parsers"
)

// Runner drives one source buffer through lexing, parsing and evaluation.
type Runner struct {
	logger     logs.Logger
	newSpan    logs.NewSpan
	output     Output
	errOutput  ErrOutput
	showTokens loxconfigs.ShowTokens
	showAST    loxconfigs.ShowAST
	recovering loxconfigs.Recover
	mode       modes.Mode
}

func (Module) Runner(
	logger logs.Logger,
	newSpan logs.NewSpan,
	output Output,
	errOutput ErrOutput,
	showTokens loxconfigs.ShowTokens,
	showAST loxconfigs.ShowAST,
	recoverSetting loxconfigs.Recover,
	mode modes.Mode,
) *Runner {
	return &Runner{
		logger:     logger,
		newSpan:    newSpan,
		output:     output,
		errOutput:  errOutput,
		showTokens: showTokens,
		showAST:    showAST,
		recovering: recoverSetting,
		mode:       mode,
	}
}

// Run executes source against env and returns the exit code.
func (r *Runner) Run(ctx context.Context, name string, source string, env *interps.Environment) (code int) {
	ctx, _ = r.newSpan(ctx, "")

	if r.mode != modes.ModeDevelopment {
		defer func() {
			if p := recover(); p != nil {
				r.logger.ErrorContext(ctx, "internal error",
					"panic", p,
				)
				fmt.Fprintf(r.errOutput, "internal error: %v\n", p)
				code = ExitRuntime
			}
		}()
	}

	report := func(err *errs.Error) {
		r.logger.DebugContext(ctx, "error",
			"kind", err.Kind,
			"span", err.Span,
			"message", err.Message,
		)
		fmt.Fprint(r.errOutput, err.Render(name, source))
	}

	// lex
	lexErrors := 0
	toks := slices.Collect(lexers.Significant(slices.Values(
		lexers.Tokenize(source, func(err *errs.Error) {
			lexErrors++
			report(err)
		}),
	)))
	if r.showTokens {
		for _, token := range toks {
			fmt.Fprintf(r.output, "%s %q\n", token, token.Text(source))
		}
	}

	// parse
	parser := parsers.New(source, toks)
	var stmts []asts.Stmt
	if r.recovering {
		var parseErrors []*errs.Error
		stmts, parseErrors = parser.ParseAll()
		for _, err := range parseErrors {
			report(err)
		}
		if len(parseErrors) > 0 {
			return ExitParse
		}
	} else {
		var err error
		stmts, err = parser.Parse()
		if err != nil {
			r.reportError(ctx, report, err)
			return ExitParse
		}
	}
	if lexErrors > 0 {
		return ExitParse
	}
	if r.showAST {
		for _, stmt := range stmts {
			fmt.Fprintln(r.output, asts.StmtString(source, stmt))
		}
	}

	// evaluate
	interp := interps.New(source, &interps.Options{
		Stdout:      r.output,
		Logger:      r.logger,
		Environment: env,
	})
	if err := interp.Interpret(stmts); err != nil {
		r.reportError(ctx, report, err)
		return ExitRuntime
	}

	return ExitOK
}

func (r *Runner) reportError(ctx context.Context, report errs.Report, err error) {
	if e, ok := errs.As(err); ok {
		report(e)
		return
	}
	r.logger.ErrorContext(ctx, "run",
		"error", logs.WrapSpan(ctx, err),
	)
	fmt.Fprintf(r.errOutput, "%v\n", err)
}
