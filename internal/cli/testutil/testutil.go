// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"database/sql"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/internal/schema"
	"github.com/LUDevNet/paradox-typed-db/internal/source"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"

	_ "modernc.org/sqlite" // fixture writer
)

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string { return tr.Out.String() }

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string { return tr.ErrOut.String() }

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// Fixture builds a sqlite export of the CDClient schema. Every required
// table is created; optional tables only when they get rows or are asked
// for with With.
type Fixture struct {
	t     testing.TB
	spec  *schema.Spec
	rows  map[string][]map[string]any
	with  map[string]bool
	skip  map[string]bool
	extra map[string][]string
}

// NewFixture starts an empty fixture.
func NewFixture(t testing.TB) *Fixture {
	t.Helper()
	spec, err := schema.Parse(cdclient.SchemaDocument())
	require.NoError(t, err)
	return &Fixture{
		t:     t,
		spec:  spec,
		rows:  map[string][]map[string]any{},
		with:  map[string]bool{},
		skip:  map[string]bool{},
		extra: map[string][]string{},
	}
}

// Row adds a row. Columns not in values are NULL.
func (f *Fixture) Row(table string, values map[string]any) *Fixture {
	f.rows[table] = append(f.rows[table], values)
	return f
}

// With creates an optional table even when it has no rows.
func (f *Fixture) With(table string) *Fixture {
	f.with[table] = true
	return f
}

// Without leaves a table out of the export.
func (f *Fixture) Without(table string) *Fixture {
	f.skip[table] = true
	return f
}

// ExtraColumn adds an undeclared TEXT column to a table.
func (f *Fixture) ExtraColumn(table, name string) *Fixture {
	f.extra[table] = append(f.extra[table], name)
	return f
}

// Write creates the sqlite file and returns its path.
func (f *Fixture) Write() string {
	f.t.Helper()
	path := filepath.Join(f.t.TempDir(), "cdclient.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(f.t, err)
	defer func() { _ = db.Close() }()

	for _, ts := range f.spec.Sorted() {
		if f.skip[ts.Name] {
			continue
		}
		if ts.Optional && !f.with[ts.Name] && len(f.rows[ts.Name]) == 0 {
			continue
		}
		f.writeTable(db, ts)
	}
	return path
}

func (f *Fixture) writeTable(db *sql.DB, ts *schema.TableSpec) {
	f.t.Helper()
	var names, defs []string
	for _, c := range ts.Columns {
		names = append(names, c.Name)
		defs = append(defs, source.QuoteIdent(c.Name)+" "+sqlType(c.Ty))
	}
	for _, name := range f.extra[ts.Name] {
		names = append(names, name)
		defs = append(defs, source.QuoteIdent(name)+" TEXT")
	}

	_, err := db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", source.QuoteIdent(ts.Name), strings.Join(defs, ", ")))
	require.NoError(f.t, err)

	quoted := make([]string, len(names))
	marks := make([]string, len(names))
	for i, n := range names {
		quoted[i] = source.QuoteIdent(n)
		marks[i] = "?"
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		source.QuoteIdent(ts.Name), strings.Join(quoted, ", "), strings.Join(marks, ", "))
	for _, row := range f.rows[ts.Name] {
		args := make([]any, len(names))
		for i, n := range names {
			args[i] = row[n]
		}
		_, err := db.Exec(insert, args...)
		require.NoError(f.t, err)
	}
}

// sqlType returns the declared type the fdb-to-sqlite converters write.
func sqlType(kind fdb.ValueType) string {
	switch kind {
	case fdb.Integer:
		return "INT32"
	case fdb.BigInt:
		return "INT64"
	case fdb.Float:
		return "REAL"
	case fdb.Boolean:
		return "INT_BOOL"
	case fdb.VarChar:
		return "TEXT_XML"
	case fdb.Nothing:
		return "NOTHING"
	default:
		return "TEXT"
	}
}
