package typed

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// RecordField is one named value of a Record.
type RecordField struct {
	Name  string
	Value any
}

// Record is the serialized form of a row: its declared columns in
// declared order. Values are nil, int32, float32, fdb.Latin1Str, bool or
// int64.
type Record struct {
	Table  string
	Fields []RecordField
}

// Get returns the value of the field with the name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON emits an object with the fields in declared order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record serializes the row. Serialization never fails: missing
// non-nullable values are replaced by their default and logged.
func (r Row[C]) Record() Record {
	def := r.table.def
	rec := Record{Table: def.Name, Fields: make([]RecordField, len(def.Columns))}
	for i, col := range def.Columns {
		rec.Fields[i] = RecordField{Name: col.Name, Value: r.value(C(i), col)}
	}
	return rec
}

func (r Row[C]) value(c C, col ColumnDef) any {
	f, present := r.Field(c)
	if col.Nullable {
		if !present {
			if !r.table.Has(c) {
				r.table.logger.Debug("column not present",
					slog.String("table", r.table.Name()),
					slog.String("column", col.Name))
			}
			return nil
		}
		v, ok := convert(col.Kind, f)
		if !ok {
			return nil
		}
		return v
	}
	if present {
		if v, ok := convert(col.Kind, f); ok {
			return v
		}
	}
	r.warnDefault(c, f)
	return defaultValue(col.Kind)
}

func convert(kind fdb.ValueType, f fdb.Field) (any, bool) {
	var (
		v  any
		ok bool
	)
	switch kind {
	case fdb.Integer:
		v, ok = f.Int()
	case fdb.Float:
		v, ok = f.Float()
	case fdb.Text:
		v, ok = f.Text()
	case fdb.Boolean:
		v, ok = f.Bool()
	case fdb.BigInt:
		v, ok = f.BigInt()
	case fdb.VarChar:
		v, ok = f.VarChar()
	default:
		return nil, f.IsNull()
	}
	if !ok {
		return nil, false
	}
	return v, true
}

func defaultValue(kind fdb.ValueType) any {
	switch kind {
	case fdb.Integer:
		return int32(0)
	case fdb.Float:
		return float32(0)
	case fdb.Text, fdb.VarChar:
		return fdb.Latin1Str{}
	case fdb.Boolean:
		return false
	case fdb.BigInt:
		return int64(0)
	default:
		return nil
	}
}
