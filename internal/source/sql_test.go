package source

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/testutil"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		decl string
		want fdb.ValueType
	}{
		{"", fdb.Nothing},
		{"NULL", fdb.Nothing},
		{"INT32", fdb.Integer},
		{"integer", fdb.Integer},
		{"smallint", fdb.Integer},
		{"INT64", fdb.BigInt},
		{"bigint", fdb.BigInt},
		{"REAL", fdb.Float},
		{"double precision", fdb.Float},
		{"DECIMAL(10, 2)", fdb.Float},
		{"INT_BOOL", fdb.Boolean},
		{"boolean", fdb.Boolean},
		{"TEXT_4", fdb.Text},
		{"character varying", fdb.Text},
		{"VARCHAR(255)", fdb.Text},
		{"TEXT_XML", fdb.VarChar},
		{"xml", fdb.VarChar},
	}
	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.decl))
		})
	}
}

func TestConvertValue(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		kind fdb.ValueType
		in   any
		want fdb.Field
	}{
		{"null", fdb.Integer, nil, fdb.NullField()},
		{"int", fdb.Integer, int64(7), fdb.IntField(7)},
		{"int32 driver value", fdb.Integer, int32(-3), fdb.IntField(-3)},
		{"int out of range", fdb.Integer, int64(math.MaxInt32) + 1, fdb.BigIntField(math.MaxInt32 + 1)},
		{"bigint", fdb.BigInt, int64(5), fdb.BigIntField(5)},
		{"int bool", fdb.Boolean, int64(1), fdb.BoolField(true)},
		{"int as float", fdb.Float, int64(2), fdb.FloatField(2)},
		{"float", fdb.Float, 1.5, fdb.FloatField(1.5)},
		{"whole float as int", fdb.Integer, 4.0, fdb.IntField(4)},
		{"fractional float in int column", fdb.Integer, 4.5, fdb.FloatField(4.5)},
		{"bool", fdb.Boolean, true, fdb.BoolField(true)},
		{"bool in int column", fdb.Integer, true, fdb.IntField(1)},
		{"text", fdb.Text, "café", fdb.TextField(fdb.Latin1Str("caf\xe9"))},
		{"bytes", fdb.Text, []byte("abc"), fdb.TextField(fdb.Latin1Str("abc"))},
		{"xml", fdb.VarChar, "<a/>", fdb.VarCharField(fdb.Latin1Str("<a/>"))},
		{"unsupported rune", fdb.Text, "€", fdb.TextField(fdb.Latin1Str("\x1a"))},
		{"time", fdb.Text, ts, fdb.TextField(fdb.Latin1Str("2024-01-02T03:04:05Z"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertValue(tt.kind, tt.in)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestSelectQuery(t *testing.T) {
	cols := []SQLColumn{{Name: "id"}, {Name: `we"ird`}}
	assert.Equal(t, `SELECT "id", "we""ird" FROM "Missions"`, SelectQuery("", "Missions", cols))
	assert.Equal(t, `SELECT "id", "we""ird" FROM "public"."Missions"`, SelectQuery("public", "Missions", cols))
}

var testCatalog = Catalog{
	DefaultSchema: "public",
	TablesQuery:   "SELECT table_name FROM tables WHERE schema = $1",
	ColumnsQuery:  "SELECT name, type FROM columns WHERE schema = $1 AND table = $2",
}

func TestSQLLoader_Load(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(testCatalog.TablesQuery).
		WithArgs("fdb").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("Icons").AddRow("Skipped"))
	mock.ExpectQuery(testCatalog.ColumnsQuery).
		WithArgs("fdb", "Icons").
		WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).
			AddRow("IconID", "integer").
			AddRow("IconPath", "text"))
	mock.ExpectQuery(`SELECT "IconID", "IconPath" FROM "fdb"."Icons"`).
		WillReturnRows(sqlmock.NewRows([]string{"IconID", "IconPath"}).
			AddRow(int64(1), "a.dds").
			AddRow(int64(2), nil))

	l := &SQLLoader{DB: db, Catalog: testCatalog, Logger: testutil.NewTestLogger(t)}
	out, err := l.Load(context.Background(), Config{Schema: "fdb", Tables: []string{"Icons"}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 1, out.Len())
	icons, err := out.ByName("Icons")
	require.NoError(t, err)
	assert.Equal(t, 2, icons.RowCount())
	assert.Equal(t, 2, icons.ColumnCount())

	kinds := map[string]fdb.ValueType{}
	for _, c := range icons.Columns() {
		kinds[c.Name().Decode()] = c.Type()
	}
	assert.Equal(t, map[string]fdb.ValueType{"IconID": fdb.Integer, "IconPath": fdb.Text}, kinds)
}

func TestSQLLoader_Errors(t *testing.T) {
	t.Run("list tables fails", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(testCatalog.TablesQuery).WithArgs("public").WillReturnError(assert.AnError)

		l := &SQLLoader{DB: db, Catalog: testCatalog}
		_, err = l.Load(context.Background(), Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to list tables")
	})

	t.Run("read fails", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(testCatalog.ColumnsQuery).
			WithArgs("public", "Missions").
			WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).AddRow("id", "integer"))
		mock.ExpectQuery(`SELECT "id" FROM "public"."Missions"`).WillReturnError(assert.AnError)

		l := &SQLLoader{DB: db, Catalog: testCatalog}
		_, err = l.LoadTable(context.Background(), "public", "Missions")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Missions")
	})

	t.Run("no columns", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(testCatalog.ColumnsQuery).
			WithArgs("public", "Empty").
			WillReturnRows(sqlmock.NewRows([]string{"name", "type"}))

		l := &SQLLoader{DB: db, Catalog: testCatalog}
		tbl, err := l.LoadTable(context.Background(), "public", "Empty")
		require.NoError(t, err)
		assert.Equal(t, 0, tbl.ColumnCount())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLLoader_NoSchema(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	cat := Catalog{TablesQuery: "SELECT name FROM t", ColumnsQuery: "SELECT name, type FROM c WHERE t = ?"}
	mock.ExpectQuery(cat.TablesQuery).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Missions"))
	mock.ExpectQuery(cat.ColumnsQuery).WithArgs("Missions").
		WillReturnRows(sqlmock.NewRows([]string{"name", "type"}).AddRow("id", "INT32"))
	mock.ExpectQuery(`SELECT "id" FROM "Missions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	l := &SQLLoader{DB: db, Catalog: cat}
	out, err := l.Load(context.Background(), Config{Schema: "ignored"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, out.Len())
}
