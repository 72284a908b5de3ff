package typed

import (
	"errors"
	"fmt"
	"iter"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// View is the column-type-independent surface of a Table, used by tools
// that handle every table of a database uniformly.
type View interface {
	Name() string
	Def() *TableDef
	RowCount() int
	HasColumn(name string) bool
	Drift() Drift
	Records() iter.Seq[Record]
	LookupRecords(key int32) iter.Seq[Record]
}

var _ View = (*Table[int])(nil)

// Require opens a mandatory table. Absence yields *MissingTableError;
// structural failures are returned as reported by the store.
func Require(tables fdb.Tables, name string) (fdb.Table, error) {
	raw, err := tables.ByName(name)
	if errors.Is(err, fdb.ErrTableNotFound) {
		return nil, &MissingTableError{Table: name}
	}
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", name, err)
	}
	return raw, nil
}

// Optional opens a table that only newer stores have. Absence is not an
// error and yields (nil, false, nil).
func Optional(tables fdb.Tables, name string) (fdb.Table, bool, error) {
	raw, err := tables.ByName(name)
	if errors.Is(err, fdb.ErrTableNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("open table %s: %w", name, err)
	}
	return raw, true, nil
}

// First returns the first element of seq.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Map yields f of every element of seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Count consumes seq and returns its length.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
