package interps

import (
	"testing"

	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/objects"
	"github.com/reusee/lox/tokens"
)

func TestEnvironment(t *testing.T) {
	source := "foo bar"
	foo := tokens.Token{Kind: tokens.Identifier, Span: tokens.Span{Start: 0, End: 3}}
	bar := tokens.Token{Kind: tokens.Identifier, Span: tokens.Span{Start: 4, End: 7}}

	env := NewEnvironment()
	env.Define("foo", objects.Number(1))
	v, err := env.Get(foo, source)
	if err != nil {
		t.Fatal(err)
	}
	if v != objects.Number(1) {
		t.Fatalf("got %v", v)
	}

	// redefinition overwrites
	env.Define("foo", objects.String("x"))
	v, err = env.Get(foo, source)
	if err != nil {
		t.Fatal(err)
	}
	if v != objects.String("x") {
		t.Fatalf("got %v", v)
	}

	_, err = env.Get(bar, source)
	e, ok := errs.As(err)
	if !ok {
		t.Fatalf("got %v", err)
	}
	if e.Span != bar.Span || e.Message != "Undefined variable 'bar'." {
		t.Fatalf("got %v", e)
	}
}
