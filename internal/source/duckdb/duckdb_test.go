package duckdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/source"
	"github.com/LUDevNet/paradox-typed-db/internal/testutil"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

func TestRegistered(t *testing.T) {
	assert.True(t, source.IsRegistered("duckdb"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdclient.duckdb")
	db, err := sql.Open("duckdb", path)
	require.NoError(t, err)
	for _, s := range []string{
		`CREATE TABLE "SkillBehavior" ("skillID" INTEGER, "cooldown" FLOAT, "skillIcon" INTEGER, "inNpcEditor" BOOLEAN, "oomSkillID" VARCHAR)`,
		`INSERT INTO "SkillBehavior" VALUES (1, 1.5, 33, true, 'x'), (2, 0, NULL, false, NULL)`,
	} {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}
	require.NoError(t, db.Close())

	out, err := New(testutil.NewTestLogger(t)).Load(context.Background(), source.Config{Path: path})
	require.NoError(t, err)

	skills, err := out.ByName("SkillBehavior")
	require.NoError(t, err)
	assert.Equal(t, 2, skills.RowCount())

	var kinds []fdb.ValueType
	for _, c := range skills.Columns() {
		kinds = append(kinds, c.Type())
	}
	assert.Equal(t, []fdb.ValueType{fdb.Integer, fdb.Float, fdb.Integer, fdb.Boolean, fdb.Text}, kinds)

	bucket := fdb.BucketIndex(fdb.HashKey(1), skills.BucketCount())
	var icon fdb.Field
	for r := range skills.Bucket(bucket) {
		f, _ := r.Field(0)
		if v, _ := f.Int(); v == 1 {
			icon, _ = r.Field(2)
		}
	}
	assert.True(t, icon.Equal(fdb.IntField(33)))
}

func TestLoad_RequiresPath(t *testing.T) {
	_, err := New(nil).Load(context.Background(), source.Config{Type: "duckdb"})
	assert.ErrorIs(t, err, source.ErrLocationRequired)
}
