package typed_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/testutil"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"
	"github.com/LUDevNet/paradox-typed-db/pkg/typed"
)

type missionsColumn int

const (
	missionsID missionsColumn = iota
	missionsIconID
	missionsName
)

var missionsDef = &typed.TableDef{
	Name: "Missions",
	Columns: []typed.ColumnDef{
		{Name: "id", Kind: fdb.Integer},
		{Name: "missionIconID", Kind: fdb.Integer, Nullable: true},
		{Name: "name", Kind: fdb.Text},
	},
}

func text(s string) fdb.Field { return fdb.TextField(fdb.Latin1Str(s)) }

func missionsTable() *mem.Table {
	return mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("missionIconID", fdb.Integer),
		mem.Col("name", fdb.Text),
	).
		Insert(fdb.IntField(1), fdb.IntField(5), text("first")).
		Insert(fdb.IntField(2), fdb.NullField(), text("second")).
		Insert(fdb.IntField(7), fdb.IntField(9), text("seventh")).
		Build()
}

func TestMissionsEndToEnd(t *testing.T) {
	def := &typed.TableDef{
		Name: "Missions",
		Columns: []typed.ColumnDef{
			{Name: "id", Kind: fdb.Integer},
			{Name: "missionIconID", Kind: fdb.Integer, Nullable: true},
		},
	}
	raw := mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("missionIconID", fdb.Integer),
	).
		Insert(fdb.IntField(1), fdb.IntField(5)).
		Insert(fdb.IntField(2), fdb.NullField()).
		Insert(fdb.IntField(7), fdb.IntField(9)).
		Build()
	tbl := typed.NewTable[missionsColumn](def, raw, testutil.NewTestLogger(t))

	rows := make([]typed.Row[missionsColumn], 0)
	for r := range tbl.Lookup(2) {
		rows = append(rows, r)
	}
	require.Len(t, rows, 1)
	_, ok := rows[0].OptInt32(missionsIconID)
	assert.False(t, ok, "missionIconID of row 2 has no value")

	assert.Equal(t, 3, typed.Count(tbl.Rows()))

	row, ok := typed.First(tbl.Lookup(1))
	require.True(t, ok)
	b, err := json.Marshal(row.Record())
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"missionIconID":5}`, string(b))
}

func TestConcurrentReads(t *testing.T) {
	const n = 200
	b := mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("missionIconID", fdb.Integer),
		mem.Col("name", fdb.Text),
	)
	for i := range int32(n) {
		b.Insert(fdb.IntField(i), fdb.IntField(i*3), text("m"))
	}
	tbl := typed.NewTable[missionsColumn](missionsDef, b.Build(), testutil.NewTestLogger(t))

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, n, typed.Count(tbl.Rows()))
			for k := int32(w); k < n; k += 8 {
				row, ok := typed.First(tbl.Lookup(k))
				if !assert.True(t, ok, "lookup %d", k) {
					return
				}
				icon, _ := row.OptInt32(missionsIconID)
				assert.Equal(t, k*3, icon)
				v, _ := row.Record().Get("id")
				assert.Equal(t, k, v)
			}
			assert.True(t, tbl.Drift().Clean())
		}()
	}
	wg.Wait()
}

func TestResolver_Tolerance(t *testing.T) {
	raw := mem.NewTableBuilder("Missions",
		mem.Col("vendorExtra", fdb.Boolean),
		mem.Col("name", fdb.Text),
		mem.Col("missionIconID", fdb.Integer),
		mem.Col("id", fdb.Integer),
	).
		Insert(fdb.BoolField(true), text("n"), fdb.IntField(4), fdb.IntField(3)).
		Build()

	tbl := typed.NewTable[missionsColumn](missionsDef, raw, nil)

	tests := []struct {
		col  missionsColumn
		want int
	}{
		{missionsID, 3},
		{missionsIconID, 2},
		{missionsName, 1},
	}
	for _, tt := range tests {
		idx, ok := tbl.Col(tt.col)
		assert.True(t, ok)
		assert.Equal(t, tt.want, idx)
	}

	drift := tbl.Drift()
	assert.Equal(t, []string{"vendorExtra"}, drift.Extra)
	assert.Empty(t, drift.Unresolved)
	assert.False(t, drift.Clean())

	// Records follow declared order, not physical order, and drop extras.
	var rec typed.Record
	for r := range tbl.Records() {
		rec = r
	}
	assert.Equal(t, []string{"id", "missionIconID", "name"}, rec.Names())
	v, _ := rec.Get("id")
	assert.Equal(t, int32(3), v)
	_, ok := rec.Get("vendorExtra")
	assert.False(t, ok)

	// Lookup uses physical index 0 as the key, which here is vendorExtra.
	assert.Equal(t, 0, typed.Count(tbl.Lookup(3)))
}

func TestResolver_FirstDuplicateWins(t *testing.T) {
	raw := mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("name", fdb.Text),
		mem.Col("name", fdb.Integer),
	).Build()

	tbl := typed.NewTable[missionsColumn](missionsDef, raw, nil)
	idx, ok := tbl.Col(missionsName)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	drift := tbl.Drift()
	assert.Equal(t, []string{"name"}, drift.Duplicates)
	assert.Equal(t, []string{"missionIconID"}, drift.Unresolved)
	assert.False(t, tbl.Has(missionsIconID))
	assert.False(t, tbl.HasColumn("missionIconID"))
	assert.True(t, tbl.HasColumn("name"))
}

func TestExtractor_NonNullableDefault(t *testing.T) {
	raw := mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("missionIconID", fdb.Integer),
		mem.Col("name", fdb.Text),
	).
		Insert(fdb.IntField(4), fdb.NullField(), fdb.NullField()).
		Build()

	logger, capture := testutil.NewCaptureLogger()
	tbl := typed.NewTable[missionsColumn](missionsDef, raw, logger)
	row, ok := typed.First(tbl.Lookup(4))
	require.True(t, ok)

	name, err := row.Text(missionsName)
	require.NoError(t, err)
	assert.True(t, name.IsEmpty())
	require.Equal(t, 1, capture.Count(slog.LevelWarn))

	e := capture.Entries()[0]
	assert.Equal(t, "Missions", e.Attrs["table"])
	assert.Equal(t, "name", e.Attrs["column"])
	assert.Equal(t, "4", e.Attrs["key"])

	capture.Reset()
	rec := row.Record()
	v, _ := rec.Get("name")
	assert.Equal(t, fdb.Latin1Str{}, v)
	assert.Equal(t, 1, capture.Count(slog.LevelWarn), "serialization warns once per defaulted field")
}

func TestExtractor_NonNullableIntegerNull(t *testing.T) {
	def := &typed.TableDef{
		Name: "T",
		Columns: []typed.ColumnDef{
			{Name: "id", Kind: fdb.Integer},
			{Name: "count", Kind: fdb.Integer},
		},
	}
	raw := mem.NewTableBuilder("T", mem.Col("id", fdb.Integer), mem.Col("count", fdb.Integer)).
		Insert(fdb.IntField(1), fdb.NullField()).
		Build()

	logger, capture := testutil.NewCaptureLogger()
	tbl := typed.NewTable[int](def, raw, logger)
	row, _ := typed.First(tbl.Rows())

	v, err := row.Int32(1)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
	assert.Equal(t, 1, capture.Count(slog.LevelWarn))

	capture.Reset()
	got, _ := row.Record().Get("count")
	assert.Equal(t, int32(0), got)
	assert.Equal(t, 1, capture.Count(slog.LevelWarn))
}

func TestExtractor_Unresolved(t *testing.T) {
	raw := mem.NewTableBuilder("Missions", mem.Col("id", fdb.Integer)).
		Insert(fdb.IntField(1)).
		Build()

	logger, capture := testutil.NewCaptureLogger()
	tbl := typed.NewTable[missionsColumn](missionsDef, raw, logger)
	row, _ := typed.First(tbl.Rows())

	_, err := row.Text(missionsName)
	var missing *typed.MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Missions", missing.Table)
	assert.Equal(t, "name", missing.Column)
	assert.True(t, errors.Is(err, typed.ErrMissingColumn))

	_, ok := row.OptInt32(missionsIconID)
	assert.False(t, ok)
	assert.Equal(t, 1, capture.Count(slog.LevelDebug))

	// Serialization never fails: unresolved non-nullable degrades.
	capture.Reset()
	rec := row.Record()
	v, _ := rec.Get("name")
	assert.Equal(t, fdb.Latin1Str{}, v)
	v, _ = rec.Get("missionIconID")
	assert.Nil(t, v)
	assert.Equal(t, 1, capture.Count(slog.LevelWarn))
}

func TestExtractor_Kinds(t *testing.T) {
	def := &typed.TableDef{
		Name: "Kinds",
		Columns: []typed.ColumnDef{
			{Name: "id", Kind: fdb.Integer},
			{Name: "f", Kind: fdb.Float},
			{Name: "b", Kind: fdb.Boolean},
			{Name: "big", Kind: fdb.BigInt},
			{Name: "xml", Kind: fdb.VarChar},
			{Name: "none", Kind: fdb.Nothing, Nullable: true},
		},
	}
	raw := mem.NewTableBuilder("Kinds",
		mem.Col("id", fdb.Integer),
		mem.Col("f", fdb.Float),
		mem.Col("b", fdb.Boolean),
		mem.Col("big", fdb.BigInt),
		mem.Col("xml", fdb.VarChar),
		mem.Col("none", fdb.Nothing),
	).
		Insert(fdb.IntField(1), fdb.FloatField(2.5), fdb.BoolField(true),
			fdb.BigIntField(1<<40), fdb.VarCharField(fdb.Latin1Str("<a/>"))).
		Build()

	tbl := typed.NewTable[int](def, raw, testutil.NewTestLogger(t))
	row, ok := typed.First(tbl.Lookup(1))
	require.True(t, ok)

	f, err := row.Float32(1)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)

	b, err := row.Bool(2)
	require.NoError(t, err)
	assert.True(t, b)

	big, err := row.Int64(3)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), big)

	xml, err := row.VarText(4)
	require.NoError(t, err)
	assert.Equal(t, "<a/>", xml.Decode())

	assert.True(t, row.OptNothing(5))
	_, ok = row.OptText(4)
	assert.False(t, ok, "varchar is not text")

	out, err := json.Marshal(row.Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"f":2.5,"b":true,"big":1099511627776,"xml":"<a/>","none":null}`, string(out))
}

func TestLookup(t *testing.T) {
	b := mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("missionIconID", fdb.Integer),
		mem.Col("name", fdb.Text),
	)
	keys := []int32{-5, 0, 1, 2, 3, 17, 1000, 2147483647}
	for _, k := range keys {
		b.Insert(fdb.IntField(k), fdb.IntField(k*2), text("x"))
	}
	tbl := typed.NewTable[missionsColumn](missionsDef, b.Build(), nil)

	for _, k := range keys {
		var got []int32
		for r := range tbl.Lookup(k) {
			v, err := r.Int32(missionsID)
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int32{k}, got, "lookup %d", k)
	}

	for _, k := range []int32{4, -1, 99} {
		assert.Equal(t, 0, typed.Count(tbl.Lookup(k)), "lookup of absent key %d", k)
	}
}

func TestLookup_BucketCollision(t *testing.T) {
	raw := mem.NewTableBuilder("Missions",
		mem.Col("id", fdb.Integer),
		mem.Col("missionIconID", fdb.Integer),
		mem.Col("name", fdb.Text),
	).
		Buckets(2).
		Insert(fdb.IntField(1), fdb.IntField(10), text("a")).
		Insert(fdb.IntField(3), fdb.IntField(30), text("b")).
		Build()
	require.Equal(t, 2, typed.Count(raw.Bucket(1)), "both keys share a bucket")

	tbl := typed.NewTable[missionsColumn](missionsDef, raw, nil)
	assert.Equal(t, 2, typed.Count(tbl.Rows()))

	for _, k := range []int32{1, 3} {
		var icons []int32
		for r := range tbl.Lookup(k) {
			v, _ := r.OptInt32(missionsIconID)
			icons = append(icons, v)
		}
		assert.Equal(t, []int32{k * 10}, icons)
	}
}

func TestFind(t *testing.T) {
	def := &typed.TableDef{
		Name: "ObjectSkills",
		Columns: []typed.ColumnDef{
			{Name: "objectTemplate", Kind: fdb.Integer},
			{Name: "skillID", Kind: fdb.Integer},
		},
	}
	raw := mem.NewTableBuilder("ObjectSkills", mem.Col("objectTemplate", fdb.Integer), mem.Col("skillID", fdb.Integer)).
		Buckets(4).
		Insert(fdb.IntField(1), fdb.IntField(100)).
		Insert(fdb.IntField(1), fdb.IntField(101)).
		Insert(fdb.IntField(5), fdb.IntField(100)).
		Build()
	tbl := typed.NewTable[int](def, raw, nil)

	assert.Equal(t, 2, typed.Count(tbl.Lookup(1)), "lookup does not assume unique keys")
	assert.Equal(t, 1, typed.Count(tbl.Find(1, 1, 101)))
	assert.Equal(t, 2, typed.Count(tbl.Find(1, 1, 100)), "bucket of 1 also holds 5; only skillID is compared")
	assert.Equal(t, 0, typed.Count(tbl.Find(2, 1, 100)), "other buckets are not scanned")
	assert.Equal(t, 0, typed.Count(tbl.Find(1, 7, 100)), "unknown column yields nothing")
}

func TestRequireOptional(t *testing.T) {
	db := mem.NewDatabase(
		missionsTable(),
		mem.NewTableBuilder("Empty").Build(),
	)

	raw, err := typed.Require(db, "Missions")
	require.NoError(t, err)
	assert.Equal(t, "Missions", raw.Name())

	_, err = typed.Require(db, "Objects")
	var missing *typed.MissingTableError
	require.True(t, errors.As(err, &missing))
	assert.True(t, errors.Is(err, typed.ErrMissingTable))
	assert.True(t, errors.Is(err, fdb.ErrTableNotFound))

	_, err = typed.Require(db, "Empty")
	var castErr *fdb.CastError
	assert.True(t, errors.As(err, &castErr), "cast failures are surfaced")

	raw, ok, err := typed.Optional(db, "RebuildSections")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)

	_, _, err = typed.Optional(db, "Empty")
	assert.True(t, errors.As(err, &castErr))
}

func TestColumnIdentifiersRoundTrip(t *testing.T) {
	for i, col := range missionsDef.Columns {
		idx, ok := missionsDef.Index(col.Name)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
	_, ok := missionsDef.Index("ID")
	assert.False(t, ok, "names match exactly")
}
