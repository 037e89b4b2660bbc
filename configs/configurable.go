package configs

import (
	"errors"
	"iter"
)

// Configurable is a typed setting read from the config path it names.
type Configurable interface {
	ConfigPath() string
}

// Load reads a Configurable from its own path, returning the zero value when absent.
func Load[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}

// First decodes the value at path from the first file that sets it.
// Decode errors panic; a missing value yields zero.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// All decodes the value at path from every file that sets it, in precedence order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}
