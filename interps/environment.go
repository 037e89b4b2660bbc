package interps

import (
	"github.com/reusee/lox/errs"
	"github.com/reusee/lox/objects"
	"github.com/reusee/lox/tokens"
)

// Environment is a flat name table. Redefinition overwrites the previous binding.
type Environment struct {
	values map[string]objects.Object
}

func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]objects.Object),
	}
}

func (e *Environment) Define(name string, value objects.Object) {
	e.values[name] = value
}

func (e *Environment) Get(name tokens.Token, source string) (objects.Object, error) {
	text := name.Text(source)
	if value, ok := e.values[text]; ok {
		return value, nil
	}
	return nil, errs.New(errs.KindRuntime, name.Span, "Undefined variable '%s'.", text)
}

func (e *Environment) Len() int {
	return len(e.values)
}
