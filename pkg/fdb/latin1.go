package fdb

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Latin1Str is a borrowed view of Latin-1 encoded bytes owned by the store.
// It must not be modified and is only valid while the store is.
type Latin1Str []byte

// Decode converts the Latin-1 bytes to a UTF-8 string.
func (s Latin1Str) Decode() string {
	if len(s) == 0 {
		return ""
	}
	// Every byte is a valid ISO 8859-1 code point, so decoding cannot fail.
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(s)
	if err != nil {
		return string(s)
	}
	return string(out)
}

// String implements fmt.Stringer.
func (s Latin1Str) String() string {
	return s.Decode()
}

// IsEmpty reports whether the string has no bytes.
func (s Latin1Str) IsEmpty() bool {
	return len(s) == 0
}

// Equal compares the raw bytes of two strings.
func (s Latin1Str) Equal(other Latin1Str) bool {
	return bytes.Equal(s, other)
}

// EqualString compares s against an ASCII/Latin-1 literal without decoding.
func (s Latin1Str) EqualString(lit string) bool {
	return string(s) == lit
}

// MarshalJSON emits the decoded string.
func (s Latin1Str) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Decode())
}

// EncodeLatin1 converts a UTF-8 string to Latin-1. It fails if s contains
// characters outside ISO 8859-1.
func EncodeLatin1(s string) (Latin1Str, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}
	return Latin1Str(out), nil
}

// EncodeLatin1Lossy converts a UTF-8 string to Latin-1, replacing
// unsupported characters with '\x1a'.
func EncodeLatin1Lossy(s string) Latin1Str {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.String(s)
	if err != nil {
		return Latin1Str(s)
	}
	return Latin1Str(out)
}
