package fdb

import (
	"math"
	"strconv"
)

// Field is a single value of a row: a tagged union over ValueType.
// The zero Field is NULL.
type Field struct {
	kind ValueType
	bits uint64
	text Latin1Str
}

// NullField returns the NULL field.
func NullField() Field { return Field{} }

// IntField returns an Integer field.
func IntField(v int32) Field { return Field{kind: Integer, bits: uint64(uint32(v))} }

// FloatField returns a Float field.
func FloatField(v float32) Field { return Field{kind: Float, bits: uint64(math.Float32bits(v))} }

// TextField returns a Text field.
func TextField(s Latin1Str) Field { return Field{kind: Text, text: s} }

// BoolField returns a Boolean field.
func BoolField(v bool) Field {
	f := Field{kind: Boolean}
	if v {
		f.bits = 1
	}
	return f
}

// BigIntField returns a BigInt field.
func BigIntField(v int64) Field { return Field{kind: BigInt, bits: uint64(v)} }

// VarCharField returns a VarChar field.
func VarCharField(s Latin1Str) Field { return Field{kind: VarChar, text: s} }

// Type returns the tag of the field.
func (f Field) Type() ValueType { return f.kind }

// IsNull reports whether the field is NULL.
func (f Field) IsNull() bool { return f.kind == Nothing }

// Int returns the value if the field is an Integer.
func (f Field) Int() (int32, bool) {
	if f.kind != Integer {
		return 0, false
	}
	return int32(uint32(f.bits)), true
}

// Float returns the value if the field is a Float.
func (f Field) Float() (float32, bool) {
	if f.kind != Float {
		return 0, false
	}
	return math.Float32frombits(uint32(f.bits)), true
}

// Text returns the value if the field is Text.
func (f Field) Text() (Latin1Str, bool) {
	if f.kind != Text {
		return nil, false
	}
	return f.text, true
}

// Bool returns the value if the field is a Boolean.
func (f Field) Bool() (bool, bool) {
	if f.kind != Boolean {
		return false, false
	}
	return f.bits != 0, true
}

// BigInt returns the value if the field is a BigInt.
func (f Field) BigInt() (int64, bool) {
	if f.kind != BigInt {
		return 0, false
	}
	return int64(f.bits), true
}

// VarChar returns the value if the field is a VarChar.
func (f Field) VarChar() (Latin1Str, bool) {
	if f.kind != VarChar {
		return nil, false
	}
	return f.text, true
}

// Equal reports whether both fields have the same type and value.
func (f Field) Equal(other Field) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case Text, VarChar:
		return f.text.Equal(other.text)
	default:
		return f.bits == other.bits
	}
}

// Value returns the field as a plain Go value: nil, int32, float32,
// Latin1Str, bool or int64.
func (f Field) Value() any {
	switch f.kind {
	case Integer:
		v, _ := f.Int()
		return v
	case Float:
		v, _ := f.Float()
		return v
	case Text, VarChar:
		return f.text
	case Boolean:
		return f.bits != 0
	case BigInt:
		return int64(f.bits)
	default:
		return nil
	}
}

// String renders the field for diagnostics.
func (f Field) String() string {
	switch f.kind {
	case Integer:
		v, _ := f.Int()
		return strconv.FormatInt(int64(v), 10)
	case Float:
		v, _ := f.Float()
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case Text, VarChar:
		return strconv.Quote(f.text.Decode())
	case Boolean:
		return strconv.FormatBool(f.bits != 0)
	case BigInt:
		return strconv.FormatInt(int64(f.bits), 10)
	default:
		return "NULL"
	}
}
