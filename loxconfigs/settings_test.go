package loxconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/cmds"
)

func TestSettings(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return ConfigDirs{"testdata/project", "testdata/none"}
		},
	).Call(func(
		showTokens ShowTokens,
		showAST ShowAST,
		recoverSetting Recover,
		prompt Prompt,
		historyFile HistoryFile,
	) {
		// enabled in .lox.cue only
		if !showTokens {
			t.Fatal()
		}
		if !showAST {
			t.Fatal()
		}
		if recoverSetting {
			t.Fatal()
		}
		// lox.cue precedes .lox.cue
		if prompt != "lox> " {
			t.Fatalf("got %q", prompt)
		}
		if historyFile != "/tmp/lox_history" {
			t.Fatalf("got %q", historyFile)
		}
	})
}

func TestDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return nil
		},
	).Call(func(
		showAST ShowAST,
		prompt Prompt,
	) {
		if showAST {
			t.Fatal()
		}
		if prompt != "> " {
			t.Fatalf("got %q", prompt)
		}
	})
}

func TestFlags(t *testing.T) {
	defer func() {
		*recoverFlag = false
	}()
	*recoverFlag = true
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return nil
		},
	).Call(func(
		recoverSetting Recover,
	) {
		if !recoverSetting {
			t.Fatal()
		}
	})
}

func TestCommandLine(t *testing.T) {
	defer func() {
		*showTokensFlag = false
		*recoverFlag = false
		*promptFlag = ""
	}()
	if err := cmds.Execute([]string{
		"-tokens",
		"-recover",
		"-prompt", "$ ",
	}); err != nil {
		t.Fatal(err)
	}
	dscope.New(new(Module)).Fork(
		func() ConfigDirs {
			return ConfigDirs{"testdata/project"}
		},
	).Call(func(
		showTokens ShowTokens,
		recoverSetting Recover,
		prompt Prompt,
	) {
		if !bool(showTokens) || !bool(recoverSetting) {
			t.Fatal()
		}
		// flag precedes config files
		if prompt != "$ " {
			t.Fatalf("got %q", prompt)
		}
	})

	// switches can be turned off again
	if err := cmds.Execute([]string{"!-tokens", "-prompt."}); err != nil {
		t.Fatal(err)
	}
	if *showTokensFlag || *promptFlag != "" {
		t.Fatal()
	}
}
