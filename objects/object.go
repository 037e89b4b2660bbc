package objects

import (
	"math"
	"strconv"
)

// Object is a runtime value: Number, String, Nil or Boolean.
type Object interface {
	isObject()
}

type Number float64

type String string

type Nil struct{}

type Boolean bool

func (Number) isObject()  {}
func (String) isObject()  {}
func (Nil) isObject()     {}
func (Boolean) isObject() {}

// Format renders a value the way print shows it.
func Format(obj Object) string {
	switch obj := obj.(type) {
	case Number:
		return FormatNumber(float64(obj))
	case String:
		return `"` + string(obj) + `"`
	case Nil:
		return "nil"
	case Boolean:
		if obj {
			return "true"
		}
		return "false"
	}
	panic("unknown object type")
}

func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (n Number) String() string  { return Format(n) }
func (s String) String() string  { return Format(s) }
func (n Nil) String() string     { return Format(n) }
func (b Boolean) String() string { return Format(b) }
