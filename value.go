package lox

import (
	"math"
	"strconv"
)

// ValueTag discriminates the closed set of runtime value variants.
type ValueTag int

const (
	VTNil ValueTag = iota
	VTBool
	VTNum
	VTStr
)

// Value is a dynamically-typed runtime value: a tag plus its payload.
// The zero Value is nil.
type Value struct {
	Tag  ValueTag
	Data any
}

// Constructors.

var NilValue = Value{Tag: VTNil}

func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }

// AsNum returns the numeric payload. Callers must have checked the tag.
func (v Value) AsNum() float64 { return v.Data.(float64) }

// AsStr returns the string payload. Callers must have checked the tag.
func (v Value) AsStr() string { return v.Data.(string) }

// Truthy reports the boolean-context interpretation of v: nil is false,
// booleans keep their value, every other value is true.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// Equal reports structural equality: same variant and same payload.
// Cross-variant comparisons are always unequal, never an error.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	switch v.Tag {
	case VTNil:
		return true
	case VTBool:
		return v.Data.(bool) == o.Data.(bool)
	case VTNum:
		return v.Data.(float64) == o.Data.(float64)
	case VTStr:
		return v.Data.(string) == o.Data.(string)
	}
	return false
}

// String renders the canonical text form of v: numbers keep a trailing ".0"
// when integral, strings are raw (no quotes), booleans are "true"/"false",
// nil is "nil".
func (v Value) String() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTStr:
		return v.Data.(string)
	}
	return "nil"
}

// formatNumber renders a 64-bit float with a trailing ".0" when its
// fractional part is exactly zero, otherwise in the shortest plain-decimal
// form that round-trips.
func formatNumber(f float64) string {
	if math.Trunc(f) == f && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
