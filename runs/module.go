package runs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/lox/loxconfigs"
)

type Module struct {
	dscope.Module
	Configs loxconfigs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Exit codes reported by the driver.
const (
	ExitOK      = 0
	ExitUsage   = 64
	ExitParse   = 65
	ExitRuntime = 70
	ExitIO      = 74
)

// Output receives program output.
type Output io.Writer

// ErrOutput receives rendered diagnostics.
type ErrOutput io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) ErrOutput() ErrOutput {
	return os.Stderr
}
