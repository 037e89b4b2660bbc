package interps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/lox/asts"
	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/objects"
	"github.com/reusee/lox/tokens"
)

type Options struct {
	Stdout      io.Writer    // if nil, default to os.Stdout
	Logger      *slog.Logger // if nil, logs are discarded
	Environment *Environment // if nil, a new one is created
}

type Interpreter struct {
	source string
	stdout io.Writer
	logger *slog.Logger
	env    *Environment
}

func New(source string, options *Options) *Interpreter {
	ret := &Interpreter{
		source: source,
	}
	if options != nil {
		ret.stdout = options.Stdout
		ret.logger = options.Logger
		ret.env = options.Environment
	}
	if ret.stdout == nil {
		ret.stdout = os.Stdout
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.DiscardHandler)
	}
	if ret.env == nil {
		ret.env = NewEnvironment()
	}
	return ret
}

func (i *Interpreter) Environment() *Environment {
	return i.env
}

// Interpret executes statements in order and stops at the first failure.
func (i *Interpreter) Interpret(stmts []asts.Stmt) error {
	for _, stmt := range stmts {
		if err := i.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) Execute(stmt asts.Stmt) error {
	if i.logger.Enabled(context.Background(), slog.LevelDebug) {
		i.logger.Debug("execute",
			"stmt", asts.StmtString(i.source, stmt),
		)
	}

	switch stmt := stmt.(type) {

	case *asts.ExpressionStmt:
		_, err := i.Evaluate(stmt.Expr)
		return err

	case *asts.PrintStmt:
		value, err := i.Evaluate(stmt.Expr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(i.stdout, objects.Format(value)); err != nil {
			return err
		}
		return nil

	case *asts.VarStmt:
		if stmt.Initializer == nil {
			return errs.New(errs.KindRuntime, stmt.Name.Span, "Cannot use uninitialized value")
		}
		value, err := i.Evaluate(stmt.Initializer)
		if err != nil {
			return err
		}
		i.env.Define(stmt.Name.Text(i.source), value)
		return nil

	}

	panic(fmt.Errorf("unknown statement %T", stmt))
}

func (i *Interpreter) Evaluate(expr asts.Expr) (objects.Object, error) {
	switch expr := expr.(type) {

	case *asts.Literal:
		return expr.Value, nil

	case *asts.Grouping:
		return i.Evaluate(expr.Expr)

	case *asts.Variable:
		return i.env.Get(expr.Name, i.source)

	case *asts.Unary:
		right, err := i.Evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		switch expr.Operator.Kind {
		case tokens.Minus, tokens.Bang:
			switch right := right.(type) {
			case objects.Number:
				return -right, nil
			case objects.Boolean:
				return !right, nil
			}
			return nil, errs.New(errs.KindRuntime, expr.Operator.Span, "Cannot negate non-numeric or non-boolean value")
		}
		panic(fmt.Errorf("unknown unary operator %v", expr.Operator))

	case *asts.Binary:
		return i.binary(expr)

	}

	panic(fmt.Errorf("unknown expression %T", expr))
}

func (i *Interpreter) binary(expr *asts.Binary) (objects.Object, error) {
	left, err := i.Evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.Evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	l, ok := left.(objects.Number)
	if !ok {
		return nil, errs.New(errs.KindRuntime, expr.Operator.Span, "Left operand is not a number")
	}
	r, ok := right.(objects.Number)
	if !ok {
		return nil, errs.New(errs.KindRuntime, expr.Operator.Span, "Right operand is not a number")
	}

	switch expr.Operator.Kind {
	case tokens.Plus:
		return l + r, nil
	case tokens.Minus:
		return l - r, nil
	case tokens.Star:
		return l * r, nil
	case tokens.Slash:
		return l / r, nil
	case tokens.Greater:
		return objects.Boolean(l > r), nil
	case tokens.GreaterEqual:
		return objects.Boolean(l >= r), nil
	case tokens.Less:
		return objects.Boolean(l < r), nil
	case tokens.LessEqual:
		return objects.Boolean(l <= r), nil
	case tokens.EqualEqual:
		return objects.Boolean(l == r), nil
	case tokens.BangEqual:
		return objects.Boolean(l != r), nil
	}

	panic(fmt.Errorf("unknown binary operator %v", expr.Operator))
}
