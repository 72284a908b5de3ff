package fdb

import (
	"errors"
	"fmt"
	"iter"
)

// ErrTableNotFound is returned by Tables.ByName when no table has the name.
var ErrTableNotFound = errors.New("table not found")

// CastError is returned when a table exists but its raw shape cannot be
// used (for example, it has no columns).
type CastError struct {
	Table  string
	Reason string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast table %q: %s", e.Table, e.Reason)
}

// Tables is the set of tables of a store.
type Tables interface {
	// ByName returns the table with the exact name. It returns an error
	// wrapping ErrTableNotFound if there is none, or a *CastError if the
	// table is structurally invalid.
	ByName(name string) (Table, error)
	// All yields every table in stored order.
	All() iter.Seq[Table]
}

// Table is a raw, hash-bucketed table.
type Table interface {
	Name() string
	// Columns yields the physical columns with their index, in stored order.
	Columns() iter.Seq2[int, Column]
	ColumnCount() int
	BucketCount() int
	// Bucket yields the rows of bucket i; out of range buckets are empty.
	Bucket(i int) iter.Seq[Row]
	// Rows yields every row of the table.
	Rows() iter.Seq[Row]
	RowCount() int
}

// Column is a physical column.
type Column interface {
	// Name returns the raw name; compare without decoding.
	Name() Latin1Str
	Type() ValueType
}

// Row is a raw row.
type Row interface {
	// Field returns the field at physical index i.
	Field(i int) (Field, bool)
	// Fields yields the fields in physical order.
	Fields() iter.Seq2[int, Field]
	Len() int
}
