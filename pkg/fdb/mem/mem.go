// Package mem is an in-memory row store implementing the fdb contracts.
//
// Rows are placed into buckets by the hash of their first field, the same
// way the binary store does it, so keyed lookups behave identically.
package mem

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// Column is a physical column of an in-memory table.
type Column struct {
	name fdb.Latin1Str
	kind fdb.ValueType
}

// Col returns a column with a Latin-1 name.
func Col(name string, kind fdb.ValueType) Column {
	return Column{name: fdb.EncodeLatin1Lossy(name), kind: kind}
}

// Name implements fdb.Column.
func (c Column) Name() fdb.Latin1Str { return c.name }

// Type implements fdb.Column.
func (c Column) Type() fdb.ValueType { return c.kind }

// Row is an in-memory row.
type Row []fdb.Field

// Field implements fdb.Row.
func (r Row) Field(i int) (fdb.Field, bool) {
	if i < 0 || i >= len(r) {
		return fdb.Field{}, false
	}
	return r[i], true
}

// Fields implements fdb.Row.
func (r Row) Fields() iter.Seq2[int, fdb.Field] {
	return func(yield func(int, fdb.Field) bool) {
		for i, f := range r {
			if !yield(i, f) {
				return
			}
		}
	}
}

// Len implements fdb.Row.
func (r Row) Len() int { return len(r) }

// Table is an immutable, bucketed in-memory table.
type Table struct {
	name    string
	columns []Column
	buckets [][]Row
	rows    int
}

var _ fdb.Table = (*Table)(nil)

// Name implements fdb.Table.
func (t *Table) Name() string { return t.name }

// Columns implements fdb.Table.
func (t *Table) Columns() iter.Seq2[int, fdb.Column] {
	return func(yield func(int, fdb.Column) bool) {
		for i, c := range t.columns {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ColumnCount implements fdb.Table.
func (t *Table) ColumnCount() int { return len(t.columns) }

// BucketCount implements fdb.Table.
func (t *Table) BucketCount() int { return len(t.buckets) }

// Bucket implements fdb.Table.
func (t *Table) Bucket(i int) iter.Seq[fdb.Row] {
	return func(yield func(fdb.Row) bool) {
		if i < 0 || i >= len(t.buckets) {
			return
		}
		for _, r := range t.buckets[i] {
			if !yield(r) {
				return
			}
		}
	}
}

// Rows implements fdb.Table. Rows are yielded bucket by bucket.
func (t *Table) Rows() iter.Seq[fdb.Row] {
	return func(yield func(fdb.Row) bool) {
		for _, b := range t.buckets {
			for _, r := range b {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// RowCount implements fdb.Table.
func (t *Table) RowCount() int { return t.rows }

// TableBuilder accumulates rows for a Table.
type TableBuilder struct {
	name    string
	columns []Column
	rows    []Row
	buckets int
}

// NewTableBuilder starts a table with the given physical columns.
func NewTableBuilder(name string, columns ...Column) *TableBuilder {
	return &TableBuilder{name: name, columns: columns}
}

// Buckets fixes the bucket count. Zero or less selects the default, the
// smallest power of two not below the row count.
func (b *TableBuilder) Buckets(n int) *TableBuilder {
	b.buckets = n
	return b
}

// Insert appends a row. Rows shorter than the column list are padded
// with NULL fields.
func (b *TableBuilder) Insert(fields ...fdb.Field) *TableBuilder {
	row := make(Row, max(len(fields), len(b.columns)))
	copy(row, fields)
	b.rows = append(b.rows, row)
	return b
}

// Build distributes the rows into buckets by the hash of their first field.
func (b *TableBuilder) Build() *Table {
	n := b.buckets
	if n <= 0 {
		n = defaultBuckets(len(b.rows))
	}
	t := &Table{
		name:    b.name,
		columns: append([]Column(nil), b.columns...),
		buckets: make([][]Row, n),
		rows:    len(b.rows),
	}
	for _, r := range b.rows {
		var h uint32
		if len(r) > 0 {
			h = fdb.HashField(r[0])
		}
		i := fdb.BucketIndex(h, n)
		t.buckets[i] = append(t.buckets[i], r)
	}
	return t
}

func defaultBuckets(rows int) int {
	if rows <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(rows-1))
}

// Database is an in-memory set of tables.
type Database struct {
	tables []*Table
	index  map[string]int
}

var _ fdb.Tables = (*Database)(nil)

// NewDatabase returns a database of the given tables. A later table with
// the same name as an earlier one replaces it in place.
func NewDatabase(tables ...*Table) *Database {
	db := &Database{index: make(map[string]int, len(tables))}
	for _, t := range tables {
		db.Add(t)
	}
	return db
}

// Add inserts or replaces a table.
func (db *Database) Add(t *Table) {
	if i, ok := db.index[t.name]; ok {
		db.tables[i] = t
		return
	}
	db.index[t.name] = len(db.tables)
	db.tables = append(db.tables, t)
}

// ByName implements fdb.Tables.
func (db *Database) ByName(name string) (fdb.Table, error) {
	i, ok := db.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", fdb.ErrTableNotFound, name)
	}
	t := db.tables[i]
	if len(t.columns) == 0 {
		return nil, &fdb.CastError{Table: name, Reason: "table has no columns"}
	}
	return t, nil
}

// All implements fdb.Tables.
func (db *Database) All() iter.Seq[fdb.Table] {
	return func(yield func(fdb.Table) bool) {
		for _, t := range db.tables {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of tables.
func (db *Database) Len() int { return len(db.tables) }
