package inspect

import "go/token"

// Kind classifies how a value participates in a generated comparison.
type Kind int

const (
	KindInvalid Kind = iota
	KindFloat
	KindInt
	KindUint
	// KindMethod marks a named type that carries its own
	// AbsDiffEq/RelativeEq method pair, generated or handwritten.
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindMethod:
		return "method"
	default:
		return "invalid"
	}
}

// Numeric reports whether values of this kind are compared through
// the scalar comparison functions.
func (k Kind) Numeric() bool {
	return k == KindFloat || k == KindInt || k == KindUint
}

// Options holds per-field comparison options parsed from the approx tag.
type Options struct {
	Skip      bool
	Equal     bool
	CastField bool
	CastValue bool
	Iter      bool

	Epsilon        string // static epsilon literal
	MaxRelative    string // static max_relative literal
	Map            string // value mapping function name
	EpsilonMap     string // epsilon mapping function name
	MaxRelativeMap string // max_relative mapping function name
}

// Value describes one comparable value: a field, a slice or array element,
// or the result of a map function.
type Value struct {
	// GoType is the type expression relative to the inspected package,
	// e.g. "float64", "Inner" or "units.Meters".
	GoType string
	Kind   Kind
	// Bits is 32 or 64 for numeric kinds.
	Bits int
	// EpsilonType is the epsilon type of the method pair for KindMethod.
	EpsilonType string
}

type Field struct {
	Name    string
	Value   Value
	Pointer bool
	// Elem is the element value for fields compared with the iter option.
	Elem *Value
	// Array is set when an iter field is an array rather than a slice.
	Array bool
	// MapOut is the result value of the map function, when one is set.
	MapOut  *Value
	Options Options
	Pos     token.Position
}

// Type is one annotated struct type scheduled for generation.
type Type struct {
	Name     string
	Receiver string

	EpsilonType string
	EpsilonKind Kind
	EpsilonBits int

	// DefaultEpsilon and DefaultMaxRelative are literal overrides from the
	// type directive; empty means the per-kind default.
	DefaultEpsilon     string
	DefaultMaxRelative string

	// Relative controls whether the RelativeEq method set is generated.
	Relative bool

	Fields []Field
	Pos    token.Position
}

// Package is the generator's view of one loaded package.
type Package struct {
	Path string
	Name string
	Dir  string

	// Files lists the absolute paths of the compiled source files,
	// excluding previously generated output. They feed the input digest.
	Files []string

	// Imports maps import path to package name for every foreign package
	// referenced by the rendered type expressions.
	Imports map[string]string

	Types []*Type
}
