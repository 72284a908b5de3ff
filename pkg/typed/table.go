package typed

import (
	"iter"
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// Table is a typed view of a raw table. C is the column identifier type of
// the binding; its values are declared indices into the TableDef.
//
// A Table is immutable after construction and safe for concurrent reads.
type Table[C ~int] struct {
	def    *TableDef
	raw    fdb.Table
	res    Resolution
	logger *slog.Logger
}

// NewTable wraps raw and resolves the declared columns of def.
func NewTable[C ~int](def *TableDef, raw fdb.Table, logger *slog.Logger) *Table[C] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Table[C]{
		def:    def,
		raw:    raw,
		res:    def.Resolve(raw),
		logger: logger,
	}
}

// Name returns the declared table name.
func (t *Table[C]) Name() string { return t.def.Name }

// Def returns the table declaration.
func (t *Table[C]) Def() *TableDef { return t.def }

// Raw returns the underlying table.
func (t *Table[C]) Raw() fdb.Table { return t.raw }

// RowCount returns the number of physical rows.
func (t *Table[C]) RowCount() int { return t.raw.RowCount() }

// Col returns the physical index column c resolved to.
func (t *Table[C]) Col(c C) (int, bool) {
	i := int(c)
	if i < 0 || i >= len(t.res.Index) {
		return -1, false
	}
	idx := t.res.Index[i]
	return idx, idx >= 0
}

// Has reports whether column c is physically present.
func (t *Table[C]) Has(c C) bool {
	_, ok := t.Col(c)
	return ok
}

// HasColumn reports whether the declared column with the name is physically
// present.
func (t *Table[C]) HasColumn(name string) bool {
	i, ok := t.def.Index(name)
	return ok && t.Has(C(i))
}

// Require returns a *MissingColumnError for the first of cols that is not
// physically present.
func (t *Table[C]) Require(cols ...C) error {
	for _, c := range cols {
		if !t.Has(c) {
			return &MissingColumnError{Table: t.def.Name, Column: t.columnName(c)}
		}
	}
	return nil
}

// Drift reports the differences between declaration and physical table.
func (t *Table[C]) Drift() Drift {
	d := Drift{
		Table:      t.def.Name,
		Extra:      t.res.Extra,
		Duplicates: t.res.Duplicates,
	}
	for i, idx := range t.res.Index {
		if idx < 0 {
			d.Unresolved = append(d.Unresolved, t.def.Columns[i].Name)
		}
	}
	return d
}

// Rows yields every row in table order.
func (t *Table[C]) Rows() iter.Seq[Row[C]] {
	return func(yield func(Row[C]) bool) {
		for raw := range t.raw.Rows() {
			if !yield(Row[C]{raw: raw, table: t}) {
				return
			}
		}
	}
}

// Lookup yields the rows whose primary key, the Integer field at
// physical index 0, equals key.
func (t *Table[C]) Lookup(key int32) iter.Seq[Row[C]] {
	return t.scanBucket(key, 0, key)
}

// Find selects the bucket of indexKey and yields the rows whose column col
// equals key. It is used for tables bucketed by a column other than their
// first, or to filter a bucket on a secondary column.
func (t *Table[C]) Find(indexKey int32, col C, key int32) iter.Seq[Row[C]] {
	idx, ok := t.Col(col)
	if !ok {
		t.logger.Debug("column not present",
			slog.String("table", t.def.Name),
			slog.String("column", t.columnName(col)))
		return func(func(Row[C]) bool) {}
	}
	return t.scanBucket(indexKey, idx, key)
}

func (t *Table[C]) scanBucket(indexKey int32, idx int, key int32) iter.Seq[Row[C]] {
	return func(yield func(Row[C]) bool) {
		bucket := fdb.BucketIndex(fdb.HashKey(indexKey), t.raw.BucketCount())
		if bucket < 0 {
			return
		}
		for raw := range t.raw.Bucket(bucket) {
			f, ok := raw.Field(idx)
			if !ok {
				continue
			}
			if v, ok := f.Int(); !ok || v != key {
				continue
			}
			if !yield(Row[C]{raw: raw, table: t}) {
				return
			}
		}
	}
}

// Records yields the serialized form of every row.
func (t *Table[C]) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r := range t.Rows() {
			if !yield(r.Record()) {
				return
			}
		}
	}
}

// LookupRecords yields the serialized form of the rows matching key.
func (t *Table[C]) LookupRecords(key int32) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for r := range t.Lookup(key) {
			if !yield(r.Record()) {
				return
			}
		}
	}
}

func (t *Table[C]) columnName(c C) string {
	if d, ok := t.def.Column(int(c)); ok {
		return d.Name
	}
	return "?"
}
