// Package typed is the runtime behind generated table bindings.
//
// A generated binding declares its columns once as a TableDef. Wrapping a
// raw fdb.Table resolves every declared column to its physical index by
// name; reads go through the resolved indices and apply the nullability
// policy: nullable columns read as "no value" when the column or the value
// is missing, non-nullable columns fail with *MissingColumnError when the
// column is missing and degrade to the type default (with a warning) when
// the value is.
//
// The Golden Rule: pkg/typed imports ONLY stdlib and pkg/fdb.
package typed

import (
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// ColumnDef declares one well-known column.
type ColumnDef struct {
	Name     string
	Kind     fdb.ValueType
	Nullable bool
}

// TableDef declares a table and the order its columns serialize in.
type TableDef struct {
	Name    string
	Columns []ColumnDef
}

// Column returns the declaration at declared index i.
func (d *TableDef) Column(i int) (ColumnDef, bool) {
	if i < 0 || i >= len(d.Columns) {
		return ColumnDef{}, false
	}
	return d.Columns[i], true
}

// Index returns the declared index of the column with the exact name.
func (d *TableDef) Index(name string) (int, bool) {
	for i, c := range d.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Resolution is the outcome of matching declared columns against a
// physical table.
type Resolution struct {
	// Index holds the physical index per declared column, -1 if unresolved.
	Index []int
	// Extra lists physical columns no declaration matched.
	Extra []string
	// Duplicates lists physical columns that matched an already resolved
	// declaration. They are ignored.
	Duplicates []string
}

// Resolve matches the raw table's physical columns against the declared
// ones by exact byte comparison of their names. The first physical match
// of a declared column wins.
func (d *TableDef) Resolve(raw fdb.Table) Resolution {
	want := make([]fdb.Latin1Str, len(d.Columns))
	for i, c := range d.Columns {
		want[i] = fdb.EncodeLatin1Lossy(c.Name)
	}

	res := Resolution{Index: make([]int, len(d.Columns))}
	for i := range res.Index {
		res.Index[i] = -1
	}

	for phys, col := range raw.Columns() {
		name := col.Name()
		matched := false
		for i, w := range want {
			if !name.Equal(w) {
				continue
			}
			matched = true
			if res.Index[i] < 0 {
				res.Index[i] = phys
			} else {
				res.Duplicates = append(res.Duplicates, name.Decode())
			}
			break
		}
		if !matched {
			res.Extra = append(res.Extra, name.Decode())
		}
	}
	return res
}

// Drift describes how a physical table differs from its declaration.
type Drift struct {
	Table      string
	Unresolved []string
	Extra      []string
	Duplicates []string
}

// Clean reports whether the physical table matches the declaration exactly.
func (d Drift) Clean() bool {
	return len(d.Unresolved) == 0 && len(d.Extra) == 0 && len(d.Duplicates) == 0
}
