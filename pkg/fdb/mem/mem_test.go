package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

func TestTableBuilder_Buckets(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		explicit int
		want     int
	}{
		{name: "empty", rows: 0, want: 1},
		{name: "single", rows: 1, want: 1},
		{name: "power of two", rows: 4, want: 4},
		{name: "rounds up", rows: 5, want: 8},
		{name: "explicit", rows: 5, explicit: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewTableBuilder("T", Col("id", fdb.Integer)).Buckets(tt.explicit)
			for i := range tt.rows {
				b.Insert(fdb.IntField(int32(i)))
			}
			tbl := b.Build()
			assert.Equal(t, tt.want, tbl.BucketCount())
			assert.Equal(t, tt.rows, tbl.RowCount())
		})
	}
}

func TestTable_RowsPlacedByKeyHash(t *testing.T) {
	tbl := NewTableBuilder("T", Col("id", fdb.Integer), Col("name", fdb.Text)).
		Buckets(4).
		Insert(fdb.IntField(1), fdb.TextField(fdb.Latin1Str("a"))).
		Insert(fdb.IntField(5), fdb.TextField(fdb.Latin1Str("b"))).
		Insert(fdb.IntField(-1)).
		Build()

	var bucket1 []int32
	for r := range tbl.Bucket(1) {
		f, _ := r.Field(0)
		v, _ := f.Int()
		bucket1 = append(bucket1, v)
	}
	assert.Equal(t, []int32{1, 5}, bucket1, "1 and 5 share bucket 1 of 4")

	var bucket3 int
	for r := range tbl.Bucket(3) {
		bucket3++
		f, ok := r.Field(1)
		require.True(t, ok, "short rows are padded")
		assert.True(t, f.IsNull())
	}
	assert.Equal(t, 1, bucket3, "-1 lands in the last bucket")

	n := 0
	for range tbl.Rows() {
		n++
	}
	assert.Equal(t, 3, n)

	for range tbl.Bucket(99) {
		t.Fatal("out of range bucket must be empty")
	}
}

func TestTable_RowsRestartable(t *testing.T) {
	tbl := NewTableBuilder("T", Col("id", fdb.Integer)).
		Insert(fdb.IntField(1)).
		Insert(fdb.IntField(2)).
		Build()

	count := func() int {
		n := 0
		for range tbl.Rows() {
			n++
		}
		return n
	}
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}

func TestDatabase_ByName(t *testing.T) {
	db := NewDatabase(
		NewTableBuilder("Objects", Col("id", fdb.Integer)).Build(),
		NewTableBuilder("Broken").Build(),
	)

	tbl, err := db.ByName("Objects")
	require.NoError(t, err)
	assert.Equal(t, "Objects", tbl.Name())

	_, err = db.ByName("objects")
	assert.True(t, errors.Is(err, fdb.ErrTableNotFound), "names are case sensitive")

	_, err = db.ByName("Broken")
	var castErr *fdb.CastError
	require.True(t, errors.As(err, &castErr))
	assert.Equal(t, "Broken", castErr.Table)
	assert.False(t, errors.Is(err, fdb.ErrTableNotFound))

	assert.Equal(t, 2, db.Len())
}

func TestDatabase_AddReplaces(t *testing.T) {
	db := NewDatabase(NewTableBuilder("T", Col("a", fdb.Integer)).Build())
	db.Add(NewTableBuilder("T", Col("b", fdb.Integer)).Build())

	require.Equal(t, 1, db.Len())
	tbl, err := db.ByName("T")
	require.NoError(t, err)
	for _, c := range tbl.Columns() {
		assert.True(t, c.Name().EqualString("b"))
	}
}
