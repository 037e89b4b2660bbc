package cmds

// Var defines a command that takes one argument and stores it.
// name+"." resets the value to zero.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, describe(Func(func(v T) {
		value = v
	}), desc))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a command that turns a flag on. "!"+name turns it off.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, describe(Func(func() {
		value = true
	}), desc))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines a command that may be repeated, each argument appended in order.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}

func describe(command *Command, desc []string) *Command {
	if len(desc) > 0 {
		command.Desc(desc[0])
	}
	return command
}
