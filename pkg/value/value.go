// Package value models arbitrary JSON or YAML documents as a closed union.
//
// The renderer dispatches on document shape, so the model is deliberately
// small: six kinds, ordered object keys, and a handful of shape probes.
// Objects preserve insertion order because display order is part of the
// output contract.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which member of the union a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a decoded document. The zero value is Null.
// Values are immutable once built.
type Value struct {
	kind   Kind
	boolV  bool
	numV   float64
	strV   string // string payload, or the raw literal for numbers
	items  []Value
	keys   []string
	fields map[string]Value
}

// Nil returns the null value.
func Nil() Value { return Value{} }

// Boolean wraps a bool.
func Boolean(b bool) Value { return Value{kind: Bool, boolV: b} }

// Num wraps a float64, keeping the shortest round-trip literal for display.
func Num(f float64) Value {
	return Value{kind: Number, numV: f, strV: strconv.FormatFloat(f, 'f', -1, 64)}
}

// NumLit wraps a number with an explicit source literal (e.g. "1e3").
func NumLit(f float64, lit string) Value {
	return Value{kind: Number, numV: f, strV: lit}
}

// Str wraps a string.
func Str(s string) Value { return Value{kind: String, strV: s} }

// Arr wraps a sequence of values.
func Arr(items ...Value) Value { return Value{kind: Array, items: items} }

// Pair is one ordered object entry.
type Pair struct {
	Key string
	Val Value
}

// Obj builds an object preserving the order of the given pairs.
// A repeated key keeps its first position and takes the last value.
func Obj(pairs ...Pair) Value {
	v := Value{kind: Object, fields: make(map[string]Value, len(pairs))}
	for _, p := range pairs {
		if _, seen := v.fields[p.Key]; !seen {
			v.keys = append(v.keys, p.Key)
		}
		v.fields[p.Key] = p.Val
	}
	return v
}

// Kind reports which union member this value holds.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the bool payload (false for non-bools).
func (v Value) BoolVal() bool { return v.kind == Bool && v.boolV }

// Float returns the numeric payload (0 for non-numbers).
func (v Value) Float() float64 {
	if v.kind != Number {
		return 0
	}
	return v.numV
}

// Int returns the numeric payload truncated to an int64.
func (v Value) Int() int64 { return int64(v.Float()) }

// Text returns the string payload for String values and "" otherwise.
// Use String for a display form of any kind.
func (v Value) Text() string {
	if v.kind != String {
		return ""
	}
	return v.strV
}

// Items returns the element slice for arrays, nil otherwise.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Keys returns object keys in insertion order, nil otherwise.
func (v Value) Keys() []string {
	if v.kind != Object {
		return nil
	}
	return v.keys
}

// Get looks up an object field.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	f, ok := v.fields[key]
	return f, ok
}

// Field returns the named object field, or Null when absent.
func (v Value) Field(key string) Value {
	f, _ := v.Get(key)
	return f
}

// Len returns the element count for arrays and the key count for objects.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.keys)
	default:
		return 0
	}
}

// IsAbsent reports whether the value renders as nothing: null, the empty
// string, or an empty container. Object entries holding such values are
// filtered before rendering.
func (v Value) IsAbsent() bool {
	switch v.kind {
	case Null:
		return true
	case String:
		return v.strV == ""
	case Array:
		return len(v.items) == 0
	case Object:
		return len(v.keys) == 0
	default:
		return false
	}
}

// IsScalar reports whether the value is null, bool, number, or string.
func (v Value) IsScalar() bool {
	return v.kind == Null || v.kind == Bool || v.kind == Number || v.kind == String
}

// AllStrings reports whether this is a non-empty array of strings.
func (v Value) AllStrings() bool {
	if v.kind != Array || len(v.items) == 0 {
		return false
	}
	for _, it := range v.items {
		if it.kind != String {
			return false
		}
	}
	return true
}

// AllScalars reports whether this is a non-empty array of scalars.
func (v Value) AllScalars() bool {
	if v.kind != Array || len(v.items) == 0 {
		return false
	}
	for _, it := range v.items {
		if !it.IsScalar() {
			return false
		}
	}
	return true
}

// AllObjects reports whether this is a non-empty array of objects.
func (v Value) AllObjects() bool {
	if v.kind != Array || len(v.items) == 0 {
		return false
	}
	for _, it := range v.items {
		if it.kind != Object {
			return false
		}
	}
	return true
}

// String returns the plain display form: "" for null, the literal for
// numbers, the payload for strings, and compact JSON for containers.
func (v Value) String() string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		return strconv.FormatBool(v.boolV)
	case Number:
		return v.strV
	case String:
		return v.strV
	case Array, Object:
		var sb strings.Builder
		v.appendJSON(&sb)
		return sb.String()
	default:
		type plain Value
		return fmt.Sprintf("%v", plain(v))
	}
}
