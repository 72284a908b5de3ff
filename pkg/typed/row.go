package typed

import (
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// Row is a typed view of a raw row. It borrows both the row and its table
// and must not outlive either.
type Row[C ~int] struct {
	raw   fdb.Row
	table *Table[C]
}

// Raw returns the underlying row.
func (r Row[C]) Raw() fdb.Row { return r.raw }

// Table returns the table view the row belongs to.
func (r Row[C]) Table() *Table[C] { return r.table }

// Key returns the primary key field at physical index 0.
func (r Row[C]) Key() fdb.Field {
	f, _ := r.raw.Field(0)
	return f
}

// Field returns the raw field of column c. It is false when the column is
// not physically present.
func (r Row[C]) Field(c C) (fdb.Field, bool) {
	idx, ok := r.table.Col(c)
	if !ok {
		return fdb.Field{}, false
	}
	return r.raw.Field(idx)
}

// Int32 reads a non-nullable Integer column.
func (r Row[C]) Int32(c C) (int32, error) { return required(r, c, fdb.Field.Int) }

// OptInt32 reads a nullable Integer column.
func (r Row[C]) OptInt32(c C) (int32, bool) { return optional(r, c, fdb.Field.Int) }

// Float32 reads a non-nullable Float column.
func (r Row[C]) Float32(c C) (float32, error) { return required(r, c, fdb.Field.Float) }

// OptFloat32 reads a nullable Float column.
func (r Row[C]) OptFloat32(c C) (float32, bool) { return optional(r, c, fdb.Field.Float) }

// Text reads a non-nullable Text column.
func (r Row[C]) Text(c C) (fdb.Latin1Str, error) { return required(r, c, fdb.Field.Text) }

// OptText reads a nullable Text column.
func (r Row[C]) OptText(c C) (fdb.Latin1Str, bool) { return optional(r, c, fdb.Field.Text) }

// Bool reads a non-nullable Boolean column.
func (r Row[C]) Bool(c C) (bool, error) { return required(r, c, fdb.Field.Bool) }

// OptBool reads a nullable Boolean column.
func (r Row[C]) OptBool(c C) (bool, bool) { return optional(r, c, fdb.Field.Bool) }

// Int64 reads a non-nullable BigInt column.
func (r Row[C]) Int64(c C) (int64, error) { return required(r, c, fdb.Field.BigInt) }

// OptInt64 reads a nullable BigInt column.
func (r Row[C]) OptInt64(c C) (int64, bool) { return optional(r, c, fdb.Field.BigInt) }

// VarText reads a non-nullable VarChar column.
func (r Row[C]) VarText(c C) (fdb.Latin1Str, error) { return required(r, c, fdb.Field.VarChar) }

// OptVarText reads a nullable VarChar column.
func (r Row[C]) OptVarText(c C) (fdb.Latin1Str, bool) { return optional(r, c, fdb.Field.VarChar) }

// Nothing reads a non-nullable Nothing column. Only presence matters.
func (r Row[C]) Nothing(c C) error {
	_, err := required(r, c, isNothing)
	return err
}

// OptNothing reads a nullable Nothing column.
func (r Row[C]) OptNothing(c C) bool {
	_, ok := optional(r, c, isNothing)
	return ok
}

func isNothing(f fdb.Field) (struct{}, bool) {
	return struct{}{}, f.IsNull()
}

func required[C ~int, T any](r Row[C], c C, conv func(fdb.Field) (T, bool)) (T, error) {
	var zero T
	idx, ok := r.table.Col(c)
	if !ok {
		return zero, &MissingColumnError{Table: r.table.Name(), Column: r.table.columnName(c)}
	}
	f, _ := r.raw.Field(idx)
	if v, ok := conv(f); ok {
		return v, nil
	}
	r.warnDefault(c, f)
	return zero, nil
}

func optional[C ~int, T any](r Row[C], c C, conv func(fdb.Field) (T, bool)) (T, bool) {
	var zero T
	idx, ok := r.table.Col(c)
	if !ok {
		r.table.logger.Debug("column not present",
			slog.String("table", r.table.Name()),
			slog.String("column", r.table.columnName(c)))
		return zero, false
	}
	f, ok := r.raw.Field(idx)
	if !ok {
		return zero, false
	}
	return conv(f)
}

func (r Row[C]) warnDefault(c C, found fdb.Field) {
	r.table.logger.Warn("non-nullable field is null, using default",
		slog.String("table", r.table.Name()),
		slog.String("column", r.table.columnName(c)),
		slog.String("key", r.Key().String()),
		slog.String("found", found.Type().String()))
}
