package source

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"
)

// Catalog describes how to enumerate the tables and columns of a SQL
// database.
type Catalog struct {
	// DefaultSchema is used when Config.Schema is empty. An empty
	// DefaultSchema means the backend has no schemas; the queries then take
	// no schema argument and table names are not qualified.
	DefaultSchema string
	// TablesQuery returns one row per table with its name.
	TablesQuery string
	// ColumnsQuery returns (name, declared type) for every column of a
	// table in ordinal order.
	ColumnsQuery string
}

// SQLColumn is a column as declared in the hosting database.
type SQLColumn struct {
	Name string
	Type string
}

// SQLLoader loads tables through database/sql.
type SQLLoader struct {
	DB      *sql.DB
	Catalog Catalog
	Logger  *slog.Logger
}

func (l *SQLLoader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

func (l *SQLLoader) schema(cfg Config) string {
	if l.Catalog.DefaultSchema == "" {
		return ""
	}
	if cfg.Schema != "" {
		return cfg.Schema
	}
	return l.Catalog.DefaultSchema
}

func (l *SQLLoader) args(schema string, rest ...any) []any {
	if l.Catalog.DefaultSchema == "" {
		return rest
	}
	return append([]any{schema}, rest...)
}

// Load reads every wanted table into a mem.Database.
func (l *SQLLoader) Load(ctx context.Context, cfg Config) (*mem.Database, error) {
	schema := l.schema(cfg)
	names, err := l.Tables(ctx, schema)
	if err != nil {
		return nil, err
	}
	db := mem.NewDatabase()
	for _, name := range names {
		if !cfg.Wants(name) {
			continue
		}
		t, err := l.LoadTable(ctx, schema, name)
		if err != nil {
			return nil, err
		}
		db.Add(t)
	}
	return db, nil
}

// Tables lists the table names of schema.
func (l *SQLLoader) Tables(ctx context.Context, schema string) ([]string, error) {
	rows, err := l.DB.QueryContext(ctx, l.Catalog.TablesQuery, l.args(schema)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return names, nil
}

// Columns lists the columns of a table in ordinal order.
func (l *SQLLoader) Columns(ctx context.Context, schema, table string) ([]SQLColumn, error) {
	rows, err := l.DB.QueryContext(ctx, l.Catalog.ColumnsQuery, l.args(schema, table)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns of %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []SQLColumn
	for rows.Next() {
		var c SQLColumn
		var ty sql.NullString
		if err := rows.Scan(&c.Name, &ty); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		c.Type = ty.String
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns of %s: %w", table, err)
	}
	return cols, nil
}

// LoadTable reads one table. A table without columns loads empty.
func (l *SQLLoader) LoadTable(ctx context.Context, schema, table string) (*mem.Table, error) {
	cols, err := l.Columns(ctx, schema, table)
	if err != nil {
		return nil, err
	}
	memCols := make([]mem.Column, len(cols))
	kinds := make([]fdb.ValueType, len(cols))
	for i, c := range cols {
		kinds[i] = MapType(c.Type)
		memCols[i] = mem.Col(c.Name, kinds[i])
	}
	b := mem.NewTableBuilder(table, memCols...)
	if len(cols) == 0 {
		t := b.Build()
		l.logger().Debug("loaded table", slog.String("table", table), slog.Int("rows", 0), slog.Int("buckets", t.BucketCount()))
		return t, nil
	}

	rows, err := l.DB.QueryContext(ctx, SelectQuery(schema, table, cols))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	n := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		fields := make([]fdb.Field, len(cols))
		for i, v := range values {
			fields[i] = ConvertValue(kinds[i], v)
		}
		b.Insert(fields...)
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows of %s: %w", table, err)
	}

	t := b.Build()
	l.logger().Debug("loaded table", slog.String("table", table), slog.Int("rows", n), slog.Int("buckets", t.BucketCount()))
	return t, nil
}

// SelectQuery builds the statement that reads every column of a table.
func SelectQuery(schema, table string, cols []SQLColumn) string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(QuoteIdent(c.Name))
	}
	sb.WriteString(" FROM ")
	if schema != "" {
		sb.WriteString(QuoteIdent(schema))
		sb.WriteByte('.')
	}
	sb.WriteString(QuoteIdent(table))
	return sb.String()
}

// QuoteIdent quotes a SQL identifier with double quotes.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// MapType maps a declared SQL column type to a value type. The sqlite
// export names of the FDB types (INT32, INT64, INT_BOOL, TEXT_4, TEXT_XML)
// are recognized along with the usual SQL names.
func MapType(decl string) fdb.ValueType {
	t := strings.ToUpper(strings.TrimSpace(decl))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	switch t {
	case "", "NULL", "NOTHING":
		return fdb.Nothing
	case "INT32", "INTEGER", "INT", "INT4", "INT2", "SMALLINT", "TINYINT", "MEDIUMINT":
		return fdb.Integer
	case "INT64", "BIGINT", "INT8":
		return fdb.BigInt
	case "REAL", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "DOUBLE PRECISION", "NUMERIC", "DECIMAL":
		return fdb.Float
	case "INT_BOOL", "BOOLEAN", "BOOL":
		return fdb.Boolean
	case "TEXT_XML", "XML":
		return fdb.VarChar
	default:
		return fdb.Text
	}
}

// ConvertValue turns a driver value into a field of the declared kind where
// the value allows it. Strings are re-encoded as Latin-1; characters outside
// Latin-1 are replaced.
func ConvertValue(kind fdb.ValueType, v any) fdb.Field {
	switch x := v.(type) {
	case nil:
		return fdb.NullField()
	case int64:
		return intField(kind, x)
	case int32:
		return intField(kind, int64(x))
	case int16:
		return intField(kind, int64(x))
	case int8:
		return intField(kind, int64(x))
	case int:
		return intField(kind, int64(x))
	case uint8:
		return intField(kind, int64(x))
	case uint16:
		return intField(kind, int64(x))
	case uint32:
		return intField(kind, int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return fdb.FloatField(float32(x))
		}
		return intField(kind, int64(x))
	case float64:
		return floatField(kind, x)
	case float32:
		return floatField(kind, float64(x))
	case bool:
		if kind == fdb.Integer {
			return fdb.IntField(boolInt(x))
		}
		return fdb.BoolField(x)
	case []byte:
		return textField(kind, string(x))
	case string:
		return textField(kind, x)
	case time.Time:
		return textField(kind, x.Format(time.RFC3339Nano))
	default:
		return textField(kind, fmt.Sprint(x))
	}
}

func intField(kind fdb.ValueType, v int64) fdb.Field {
	switch kind {
	case fdb.BigInt:
		return fdb.BigIntField(v)
	case fdb.Boolean:
		return fdb.BoolField(v != 0)
	case fdb.Float:
		return fdb.FloatField(float32(v))
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return fdb.BigIntField(v)
	}
	return fdb.IntField(int32(v))
}

func floatField(kind fdb.ValueType, v float64) fdb.Field {
	if kind == fdb.Integer && v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
		return fdb.IntField(int32(v))
	}
	return fdb.FloatField(float32(v))
}

func textField(kind fdb.ValueType, s string) fdb.Field {
	if kind == fdb.VarChar {
		return fdb.VarCharField(fdb.EncodeLatin1Lossy(s))
	}
	return fdb.TextField(fdb.EncodeLatin1Lossy(s))
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
