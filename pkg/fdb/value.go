package fdb

import (
	"fmt"
	"strings"
)

// ValueType is the type tag of a column or field.
type ValueType uint8

// Value types as stored by the row store.
const (
	// Nothing is the NULL value.
	Nothing ValueType = iota
	// Integer is a 32-bit signed integer.
	Integer
	// Float is a 32-bit IEEE floating point number.
	Float
	// Text is a long Latin-1 string.
	Text
	// Boolean is a boolean.
	Boolean
	// BigInt is a 64-bit signed integer.
	BigInt
	// VarChar is an (XML) Latin-1 string.
	VarChar
)

var valueTypeNames = [...]string{
	Nothing: "Nothing",
	Integer: "Integer",
	Float:   "Float",
	Text:    "Text",
	Boolean: "Boolean",
	BigInt:  "BigInt",
	VarChar: "VarChar",
}

// String returns the canonical tag of the type.
func (t ValueType) String() string {
	if int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", uint8(t))
}

// Valid reports whether t is one of the known value types.
func (t ValueType) Valid() bool {
	return int(t) < len(valueTypeNames)
}

// ParseValueType parses a type tag. Both the store's own tags
// (Integer, Float, BigInt, VarChar, ...) and the width-qualified
// aliases (Integer32, Float32, Integer64, VarText) are accepted,
// case-insensitively.
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nothing", "null":
		return Nothing, nil
	case "integer", "integer32", "int32":
		return Integer, nil
	case "float", "float32":
		return Float, nil
	case "text":
		return Text, nil
	case "boolean", "bool":
		return Boolean, nil
	case "bigint", "integer64", "int64":
		return BigInt, nil
	case "varchar", "vartext":
		return VarChar, nil
	}
	return Nothing, fmt.Errorf("unknown value type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid value type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(b []byte) error {
	v, err := ParseValueType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
