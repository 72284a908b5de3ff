package bindgen

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/schema"
	"github.com/LUDevNet/paradox-typed-db/internal/testutil"
)

const testSchema = `
tables:
  Missions:
    columns:
      - { name: id, ty: Integer }
      - { name: missionIconID, ty: Integer, nullable: true }
      - { name: isMission, ty: Boolean, nullable: true }
  Objects:
    columns:
      - { name: id, ty: Integer }
      - { name: name, ty: Text }
      - { name: type, ty: Text, nullable: true }
      - { name: _internalNotes, ty: VarChar, nullable: true }
      - { name: key, ty: BigInt }
      - { name: placeholder, ty: Nothing, nullable: true }
  RebuildSections:
    optional: true
    columns:
      - { name: id, ty: Integer }
      - { name: offset_x, ty: Float }
`

func mustParse(t *testing.T, doc string) *schema.Spec {
	t.Helper()
	spec, err := schema.Parse([]byte(doc))
	require.NoError(t, err)
	return spec
}

// declared collects the top level and method names declared in src.
func declared(t *testing.T, name string, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	require.NoError(t, err, "generated %s must parse", name)

	names := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil && len(d.Recv.List) == 1 {
				names[recvName(d.Recv.List[0].Type)+"."+d.Name.Name] = true
				continue
			}
			names[d.Name.Name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func recvName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if id, ok := expr.(*ast.Ident); ok {
		return id.Name
	}
	return "?"
}

func TestGenerate(t *testing.T) {
	files, err := Generate(mustParse(t, testSchema), Options{Package: "cdclient"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, TablesFile, files[0].Name)
	assert.Equal(t, DatabaseFile, files[1].Name)

	for _, f := range files {
		assert.True(t, strings.HasPrefix(string(f.Content), Header+"\n"), "%s starts with the generated header", f.Name)
	}

	tables := declared(t, TablesFile, files[0].Content)
	for _, want := range []string{
		"MissionsColumn", "MissionsID", "MissionsMissionIconID", "MissionsIsMission",
		"ParseMissionsColumn", "MissionsColumns", "missionsDef",
		"MissionsTable", "NewMissionsTable", "MissionsTable.Rows", "MissionsTable.Lookup",
		"MissionsTable.Find", "MissionsTable.Get",
		"MissionsRow", "MissionsRow.ID", "MissionsRow.MissionIconID", "MissionsRow.IsMission",
		"ObjectsRow.Name", "ObjectsRow.Type", "ObjectsRow.InternalNotes", "ObjectsRow.Key_",
		"ObjectsRow.Placeholder", "ObjectsKey",
		"RebuildSectionsRow.OffsetX",
	} {
		assert.True(t, tables[want], "missing declaration %s", want)
	}

	src := string(files[0].Content)
	assert.Contains(t, src, "func (r MissionsRow) ID() (int32, error) {\n\treturn r.Int32(MissionsID)\n}")
	assert.Contains(t, src, "func (r MissionsRow) MissionIconID() (int32, bool) {\n\treturn r.OptInt32(MissionsMissionIconID)\n}")
	assert.Contains(t, src, "func (r ObjectsRow) InternalNotes() (fdb.Latin1Str, bool) {\n\treturn r.OptVarText(ObjectsInternalNotes)\n}")
	assert.Contains(t, src, "func (r ObjectsRow) Placeholder() bool {\n\treturn r.OptNothing(ObjectsPlaceholder)\n}")
	assert.Contains(t, src, `{Name: "_internalNotes", Kind: fdb.VarChar, Nullable: true},`)

	// Constants follow declared order.
	id := strings.Index(src, "MissionsID MissionsColumn = iota")
	icon := strings.Index(src, "\tMissionsMissionIconID\n")
	isMission := strings.Index(src, "\tMissionsIsMission\n")
	assert.True(t, id >= 0 && id < icon && icon < isMission)

	database := declared(t, DatabaseFile, files[1].Content)
	for _, want := range []string{"Database", "Open", "Database.Views", "Database.View", "NewView", "TableNames", "IsOptional"} {
		assert.True(t, database[want], "missing declaration %s", want)
	}
	dbSrc := string(files[1].Content)
	assert.Contains(t, dbSrc, `typed.Optional(tables, "RebuildSections")`)
	assert.Contains(t, dbSrc, `typed.Require(tables, "Missions")`)
	assert.Contains(t, dbSrc, "\tcase \"Missions\":\n\t\treturn NewMissionsTable(raw, logger).Table, true\n")
	assert.Less(t, strings.Index(dbSrc, `"Missions",`), strings.Index(dbSrc, `"Objects",`), "tables in name order")
}

func TestGenerate_Deterministic(t *testing.T) {
	spec := mustParse(t, testSchema)
	first, err := Generate(spec, Options{})
	require.NoError(t, err)
	for range 5 {
		again, err := Generate(mustParse(t, testSchema), Options{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerate_NoOptionalTables(t *testing.T) {
	files, err := Generate(mustParse(t, "tables: {T: {columns: [{name: id, ty: Integer}]}}"), Options{})
	require.NoError(t, err)
	src := string(files[1].Content)
	assert.NotContains(t, src, "ok  bool")
	declared(t, DatabaseFile, files[1].Content)
}

func TestGenerate_Collisions(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		table string
		ident string
	}{
		{
			name:  "columns normalize identically",
			doc:   "tables: {Missions: {columns: [{name: missionIconID, ty: Integer}, {name: mission_icon_id, ty: Integer}]}}",
			table: "Missions",
			ident: "MissionsMissionIconID",
		},
		{
			name:  "tables normalize identically",
			doc:   "tables: {ItemSets: {columns: [{name: id, ty: Integer}]}, item_sets: {columns: [{name: id, ty: Integer}]}}",
			table: "item_sets",
			ident: "ItemSets",
		},
		{
			name:  "escaped table fields normalize identically",
			doc:   "tables: {Views: {columns: [{name: id, ty: Integer}]}, views_: {columns: [{name: id, ty: Integer}]}}",
			table: "views_",
			ident: "Views_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(mustParse(t, tt.doc), Options{})
			var collision *CollisionError
			require.True(t, errors.As(err, &collision), "expected CollisionError, got %v", err)
			assert.Equal(t, tt.table, collision.Table)
			assert.Equal(t, tt.ident, collision.Name)
		})
	}
}

func TestGenerate_ReservedGeneratedNames(t *testing.T) {
	const doc = `
tables:
  type:
    columns:
      - { name: id, ty: Integer }
      - { name: Row, ty: Integer, nullable: true }
      - { name: table, ty: Text }
      - { name: Column, ty: Boolean }
      - { name: columns, ty: BigInt, nullable: true }
  Views:
    columns:
      - { name: id, ty: Integer }
  View:
    optional: true
    columns:
      - { name: id, ty: Integer }
`
	files, err := Generate(mustParse(t, doc), Options{})
	require.NoError(t, err)

	tables := declared(t, TablesFile, files[0].Content)
	for _, want := range []string{
		"TypeColumn", "TypeTable", "TypeRow", "TypeColumns",
		"TypeRow_", "TypeTable_", "TypeColumn_", "TypeColumns_",
		"TypeRow.Row_", "TypeRow.Table_", "TypeRow.Column", "TypeRow.Columns",
		"ViewsTable", "ViewTable",
	} {
		assert.True(t, tables[want], "missing declaration %s", want)
	}
	src := string(files[0].Content)
	assert.Contains(t, src, "func (r TypeRow) Row_() (int32, bool) {\n\treturn r.OptInt32(TypeRow_)\n}")
	assert.Contains(t, src, "func (r TypeRow) Table_() (fdb.Latin1Str, error) {\n\treturn r.Text(TypeTable_)\n}")

	database := declared(t, DatabaseFile, files[1].Content)
	assert.True(t, database["Database.Views"])
	assert.True(t, database["Database.View"])
	dbSrc := string(files[1].Content)
	assert.Contains(t, dbSrc, "\tdb.Views_ = NewViewsTable(raw, logger)\n")
	assert.Contains(t, dbSrc, "\t\tdb.View_ = NewViewTable(raw, logger)\n")
	assert.Contains(t, dbSrc, "views = append(views, db.Views_.Table)")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o600))

	require.NoError(t, Run(schemaPath, dir, Options{Package: "cdclient"}, testutil.NewTestLogger(t)))
	for _, name := range []string{TablesFile, DatabaseFile} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), Header))
	}

	written, err := writeIfChanged(filepath.Join(dir, TablesFile), mustRead(t, filepath.Join(dir, TablesFile)))
	require.NoError(t, err)
	assert.False(t, written, "unchanged files are not rewritten")

	assert.Error(t, Run(filepath.Join(dir, "missing.yaml"), dir, Options{}, nil))
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, schemaPath, func() error {
			calls.Add(1)
			return nil
		}, testutil.NewTestLogger(t))
	}()

	// Unrelated files are ignored; the schema triggers one debounced run.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600)
		_ = os.WriteFile(schemaPath, []byte(testSchema), 0o600)
		time.Sleep(3 * DebounceDelay)
		return calls.Load() > 0
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
