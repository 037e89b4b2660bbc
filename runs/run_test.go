package runs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/lox/interps"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/modes"
	"gopkg.in/yaml.v3"
)

type testOutputs struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestScope(t *testing.T, defs ...any) (dscope.Scope, testOutputs) {
	outputs := testOutputs{
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
	}
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Output {
			return outputs.stdout
		},
		func() ErrOutput {
			return outputs.stderr
		},
		func() loxconfigs.ConfigDirs {
			return nil
		},
	)
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}
	return scope, outputs
}

type testCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Stdout string `yaml:"stdout"`
	Stderr string `yaml:"stderr"`
	Exit   int    `yaml:"exit"`
}

func TestCases(t *testing.T) {
	f, err := os.Open("testdata/cases.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var cases []testCase
	if err := yaml.NewDecoder(f).Decode(&cases); err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases")
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			scope, outputs := newTestScope(t)
			scope.Call(func(
				run Run,
			) {
				code := run(context.Background(), "test.lox", c.Source)
				if code != c.Exit {
					t.Fatalf("got exit code %d, stderr %q", code, outputs.stderr.String())
				}
				if got := outputs.stdout.String(); got != c.Stdout {
					t.Fatalf("got stdout %q", got)
				}
				if c.Stderr == "" {
					if outputs.stderr.Len() > 0 {
						t.Fatalf("got stderr %q", outputs.stderr.String())
					}
				} else if !strings.Contains(outputs.stderr.String(), c.Stderr) {
					t.Fatalf("got stderr %q", outputs.stderr.String())
				}
			})
		})
	}
}

func TestRenderedDiagnostic(t *testing.T) {
	scope, outputs := newTestScope(t)
	scope.Call(func(
		run Run,
	) {
		code := run(context.Background(), "test.lox", "var a = 1;\nprint a + \"b\";\n")
		if code != ExitRuntime {
			t.Fatalf("got %d", code)
		}
		expected := "[runtime] Right operand is not a number at test.lox:2:9\n" +
			"print a + \"b\";\n" +
			"        ^\n"
		if outputs.stderr.String() != expected {
			t.Fatalf("got %q", outputs.stderr.String())
		}
	})
}

func TestRecover(t *testing.T) {
	scope, outputs := newTestScope(t, func() loxconfigs.Recover {
		return true
	})
	scope.Call(func(
		run Run,
	) {
		code := run(context.Background(), "test.lox", "print (1;\nprint 2;\nprint 3 +;\n")
		if code != ExitParse {
			t.Fatalf("got %d", code)
		}
		stderr := outputs.stderr.String()
		if !strings.Contains(stderr, "Expect ')' after expression at test.lox:1:9") {
			t.Fatalf("got %q", stderr)
		}
		if !strings.Contains(stderr, "Expect expression. at test.lox:3:10") {
			t.Fatalf("got %q", stderr)
		}
		if outputs.stdout.Len() != 0 {
			t.Fatalf("got %q", outputs.stdout.String())
		}
	})
}

func TestShowTokensAndAST(t *testing.T) {
	scope, outputs := newTestScope(t,
		func() loxconfigs.ShowTokens {
			return true
		},
		func() loxconfigs.ShowAST {
			return true
		},
	)
	scope.Call(func(
		run Run,
	) {
		code := run(context.Background(), "test.lox", "print -1;")
		if code != ExitOK {
			t.Fatalf("got %d", code)
		}
		expected := `Keyword(print)@0..5 "print"` + "\n" +
			`Minus@6..7 "-"` + "\n" +
			`Number@7..8 "1"` + "\n" +
			`Semicolon@8..9 ";"` + "\n" +
			`Eof@9..9 ""` + "\n" +
			"(print (- 1))\n" +
			"-1\n"
		if got := outputs.stdout.String(); got != expected {
			t.Fatalf("got %q", got)
		}
	})
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.lox")
	if err := os.WriteFile(path, []byte("var x = 20;\nprint x * 2 + 2;\n"), 0644); err != nil {
		t.Fatal(err)
	}

	scope, outputs := newTestScope(t)
	scope.Call(func(
		runFile RunFile,
	) {
		if code := runFile(context.Background(), path); code != ExitOK {
			t.Fatalf("got %d", code)
		}
		if outputs.stdout.String() != "42\n" {
			t.Fatalf("got %q", outputs.stdout.String())
		}

		if code := runFile(context.Background(), filepath.Join(dir, "none.lox")); code != ExitIO {
			t.Fatalf("got %d", code)
		}
		if !strings.Contains(outputs.stderr.String(), "none.lox") {
			t.Fatalf("got %q", outputs.stderr.String())
		}
	})
}

func TestInternalErrorInProduction(t *testing.T) {
	outputs := testOutputs{
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
	}
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() Output {
			return outputs.stdout
		},
		func() ErrOutput {
			return outputs.stderr
		},
		func() loxconfigs.ConfigDirs {
			return nil
		},
	).Call(func(
		runner *Runner,
	) {
		// a nil environment map makes Define panic
		code := runner.Run(context.Background(), "test.lox", "var x = 1;", new(interps.Environment))
		if code != ExitRuntime {
			t.Fatalf("got %d", code)
		}
		if !strings.Contains(outputs.stderr.String(), "internal error") {
			t.Fatalf("got %q", outputs.stderr.String())
		}
	})
}
