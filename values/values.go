/*
File    : C-Like/values/values.go
*/

// Package values implements CLIKE's runtime value representation: the
// scalar union the interpreter computes over, and the array handle
// used to give array parameters by-reference semantics. The value set
// is a closed four-scalar-plus-array type system, one struct field per
// runtime kind rather than an open interface.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carb0ned0/C-Like/ast"
)

// Value is a runtime CLIKE value: one of Int, Float, Char, Str, or Arr.
type Value struct {
	Type ast.TypeTag
	Int  int64
	Flt  float64
	Chr  byte
	Str  string
	Arr  *Array
}

// Array is a fixed-size, shared-mutable array cell. Every binding that
// refers to the same array (the declaring variable, and any array
// parameter bound to it) shares the same *Array, so writes through one
// alias are visible through every other — the by-reference behavior
// required for array arguments.
type Array struct {
	ElemType ast.TypeTag
	Elems    []Value
}

// NewArray allocates a zero-valued array of n elements of elemType.
func NewArray(elemType ast.TypeTag, n int64) *Array {
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = Zero(elemType)
	}
	return &Array{ElemType: elemType, Elems: elems}
}

// Zero returns the zero value of a scalar type.
func Zero(t ast.TypeTag) Value {
	switch t {
	case ast.INT:
		return Value{Type: ast.INT}
	case ast.FLOAT:
		return Value{Type: ast.FLOAT}
	case ast.CHAR:
		return Value{Type: ast.CHAR}
	case ast.STRING:
		return Value{Type: ast.STRING}
	default:
		return Value{Type: t}
	}
}

func IntVal(v int64) Value      { return Value{Type: ast.INT, Int: v} }
func FloatVal(v float64) Value  { return Value{Type: ast.FLOAT, Flt: v} }
func CharVal(v byte) Value      { return Value{Type: ast.CHAR, Chr: v} }
func StringVal(v string) Value  { return Value{Type: ast.STRING, Str: v} }
func ArrayVal(a *Array) Value   { return Value{Type: a.ElemType, Arr: a} }

// Truthy reports whether v is considered true in a condition context:
// nonzero int, nonzero float, or nonzero char.
func (v Value) Truthy() bool {
	switch v.Type {
	case ast.INT:
		return v.Int != 0
	case ast.FLOAT:
		return v.Flt != 0
	case ast.CHAR:
		return v.Chr != 0
	default:
		return false
	}
}

// String renders v the way `print` emits it: one canonical textual form
// per scalar type, no type annotation or quoting.
func (v Value) String() string {
	switch v.Type {
	case ast.INT:
		return fmt.Sprintf("%d", v.Int)
	case ast.FLOAT:
		return formatFloat(v.Flt)
	case ast.CHAR:
		return string(rune(v.Chr))
	case ast.STRING:
		return v.Str
	default:
		return ""
	}
}

// formatFloat renders f as a minimal decimal with at least one
// fractional digit, so a whole-number float like 2.0 prints "2.0"
// rather than strconv/fmt's bare "2".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
