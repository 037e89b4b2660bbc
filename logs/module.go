package logs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span identifies one run of the interpreter in log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

// Writer receives text log records.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// WrapSpan attaches the run span of ctx to err, so a logged error can be matched with the run's records.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("logs.span: %s", span))
}
