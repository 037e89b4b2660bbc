package loxconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
	"github.com/reusee/lox/vars"
)

// ShowTokens prints the significant token stream before parsing.
type ShowTokens bool

// ShowAST prints each parsed statement before interpreting.
type ShowAST bool

// Recover keeps parsing after a syntax error to report every error in the input.
type Recover bool

type Prompt string

type HistoryFile string

var (
	_ configs.Configurable = ShowTokens(false)
	_ configs.Configurable = ShowAST(false)
	_ configs.Configurable = Recover(false)
	_ configs.Configurable = Prompt("")
	_ configs.Configurable = HistoryFile("")
)

func (ShowTokens) ConfigPath() string  { return "show_tokens" }
func (ShowAST) ConfigPath() string     { return "show_ast" }
func (Recover) ConfigPath() string     { return "recover" }
func (Prompt) ConfigPath() string      { return "prompt" }
func (HistoryFile) ConfigPath() string { return "history_file" }

var (
	showTokensFlag  = cmds.Switch("-tokens", "print tokens before parsing")
	showASTFlag     = cmds.Switch("-ast", "print statements before running")
	recoverFlag     = cmds.Switch("-recover", "report every parse error instead of the first")
	promptFlag      = cmds.Var[string]("-prompt", "REPL prompt")
	historyFileFlag = cmds.Var[string]("-history", "REPL history file")
)

// enabled reports whether any config file turns the switch on.
func enabled[T interface {
	~bool
	configs.Configurable
}](loader configs.Loader) bool {
	var zero T
	for value := range configs.All[bool](loader, zero.ConfigPath()) {
		if value {
			return true
		}
	}
	return false
}

func (Module) ShowTokens(loader configs.Loader) ShowTokens {
	return ShowTokens(*showTokensFlag || enabled[ShowTokens](loader))
}

func (Module) ShowAST(loader configs.Loader) ShowAST {
	return ShowAST(*showASTFlag || enabled[ShowAST](loader))
}

func (Module) Recover(loader configs.Loader) Recover {
	return Recover(*recoverFlag || enabled[Recover](loader))
}

func (Module) Prompt(loader configs.Loader) Prompt {
	return vars.FirstNonZero(
		Prompt(vars.DerefOrZero(promptFlag)),
		configs.Load[Prompt](loader),
		"> ",
	)
}

func (Module) HistoryFile(loader configs.Loader) HistoryFile {
	if path := vars.FirstNonZero(
		HistoryFile(vars.DerefOrZero(historyFileFlag)),
		configs.Load[HistoryFile](loader),
	); path != "" {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(home, ".lox_history"))
	}
	return ""
}
