// Package bindgen compiles a schema into Go bindings over pkg/typed.
//
// For every table T it emits a column identifier type TColumn with one
// constant per declared column, the table declaration, a TTable view with
// full scan and keyed lookup, and a TRow view with one typed accessor per
// column. A second file assembles all tables into a Database.
package bindgen

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/LUDevNet/paradox-typed-db/internal/schema"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// Header is the first line of every generated file.
const Header = "// Code generated by scripts/genbindings. DO NOT EDIT."

const (
	defaultFDBImport   = "github.com/LUDevNet/paradox-typed-db/pkg/fdb"
	defaultTypedImport = "github.com/LUDevNet/paradox-typed-db/pkg/typed"
)

// Generated file names.
const (
	TablesFile   = "tables_gen.go"
	DatabaseFile = "database_gen.go"
)

// Options configures generation.
type Options struct {
	// Package is the package name of the generated files.
	Package string
	// FDBImport and TypedImport override the runtime import paths.
	FDBImport   string
	TypedImport string
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "bindings"
	}
	if o.FDBImport == "" {
		o.FDBImport = defaultFDBImport
	}
	if o.TypedImport == "" {
		o.TypedImport = defaultTypedImport
	}
	return o
}

// File is a generated source file.
type File struct {
	Name    string
	Content []byte
}

// CollisionError reports two schema names that map to the same Go
// identifier.
type CollisionError struct {
	Table  string
	Name   string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: identifier %s is produced by both %s and %s", e.Table, e.Name, e.First, e.Second)
}

// tableNames holds every identifier emitted for one table.
type tableNames struct {
	spec      *schema.TableSpec
	field     string
	column    string
	table     string
	row       string
	newTable  string
	parse     string
	columns   string
	def       string
	wrap      string
	constants []string
	accessors []string
}

func newTableNames(t *schema.TableSpec) tableNames {
	base := Pascal(t.Name)
	n := tableNames{
		spec:     t,
		field:    FieldName(base),
		column:   base + "Column",
		table:    base + "Table",
		row:      base + "Row",
		newTable: "New" + base + "Table",
		parse:    "Parse" + base + "Column",
		columns:  base + "Columns",
		def:      Camel(t.Name) + "Def",
		wrap:     "wrap" + base + "Row",
	}
	for _, c := range t.Columns {
		n.constants = append(n.constants, ConstantName(base, c.Name))
		n.accessors = append(n.accessors, AccessorName(c.Name))
	}
	return n
}

// scope tracks package level identifiers and where they came from.
type scope map[string]string

func (s scope) declare(table, name, origin string) error {
	if prev, ok := s[name]; ok {
		return &CollisionError{Table: table, Name: name, First: prev, Second: origin}
	}
	s[name] = origin
	return nil
}

func resolveNames(spec *schema.Spec) ([]tableNames, error) {
	pkg := scope{
		"Database":       "Database",
		"Open":           "Open",
		"TableNames":     "TableNames",
		"IsOptional":     "IsOptional",
		"NewView":        "NewView",
		"optionalTables": "optionalTables",
	}
	fields := scope{}

	var out []tableNames
	for _, t := range spec.Sorted() {
		n := newTableNames(t)
		if err := fields.declare(t.Name, n.field, "table "+t.Name); err != nil {
			return nil, err
		}
		for _, ident := range []string{n.column, n.table, n.row, n.newTable, n.parse, n.columns, n.def, n.wrap} {
			if err := pkg.declare(t.Name, ident, "table "+t.Name); err != nil {
				return nil, err
			}
		}
		accessors := scope{}
		for i, c := range t.Columns {
			origin := t.Name + "." + c.Name
			if err := pkg.declare(t.Name, n.constants[i], origin); err != nil {
				return nil, err
			}
			if err := accessors.declare(t.Name, n.accessors[i], origin); err != nil {
				return nil, err
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// Generate compiles spec into the tables and database files. Output is
// deterministic: tables are emitted in name order, columns in declared order.
func Generate(spec *schema.Spec, opts Options) ([]File, error) {
	opts = opts.withDefaults()
	names, err := resolveNames(spec)
	if err != nil {
		return nil, err
	}

	var tables bytes.Buffer
	writePreamble(&tables, opts, []string{"iter", "log/slog"})
	for _, n := range names {
		writeTable(&tables, n)
	}

	var database bytes.Buffer
	writePreamble(&database, opts, []string{"log/slog", "slices"})
	writeDatabase(&database, names)

	files := []File{
		{Name: TablesFile, Content: tables.Bytes()},
		{Name: DatabaseFile, Content: database.Bytes()},
	}
	for i, f := range files {
		formatted, err := imports.Process(f.Name, f.Content, nil)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", f.Name, err)
		}
		files[i].Content = formatted
	}
	return files, nil
}

func writePreamble(buf *bytes.Buffer, opts Options, std []string) {
	buf.WriteString(Header + "\n\n")
	fmt.Fprintf(buf, "package %s\n\n", opts.Package)
	buf.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	buf.WriteString("\n")
	fmt.Fprintf(buf, "\t%q\n", opts.FDBImport)
	fmt.Fprintf(buf, "\t%q\n", opts.TypedImport)
	buf.WriteString(")\n")
}

func kindIdent(k fdb.ValueType) string {
	return "fdb." + k.String()
}

// accessor returns the typed.Row method and Go result type for a column.
func accessor(c schema.ColumnSpec) (method, result string) {
	var base, ty string
	switch c.Ty {
	case fdb.Integer:
		base, ty = "Int32", "int32"
	case fdb.Float:
		base, ty = "Float32", "float32"
	case fdb.Text:
		base, ty = "Text", "fdb.Latin1Str"
	case fdb.Boolean:
		base, ty = "Bool", "bool"
	case fdb.BigInt:
		base, ty = "Int64", "int64"
	case fdb.VarChar:
		base, ty = "VarText", "fdb.Latin1Str"
	default:
		if c.Nullable {
			return "OptNothing", "bool"
		}
		return "Nothing", "error"
	}
	if c.Nullable {
		return "Opt" + base, "(" + ty + ", bool)"
	}
	return base, "(" + ty + ", error)"
}

func writeTable(buf *bytes.Buffer, n tableNames) {
	t := n.spec
	w := func(format string, args ...any) { fmt.Fprintf(buf, format, args...) }

	w("\n// %s identifies a well-known column of the %s table.\n", n.column, t.Name)
	w("type %s int\n\n", n.column)
	w("// Columns of the %s table.\n", t.Name)
	w("const (\n")
	for i, c := range n.constants {
		if i == 0 {
			w("\t%s %s = iota\n", c, n.column)
			continue
		}
		w("\t%s\n", c)
	}
	w(")\n\n")

	w("// Name returns the column name as stored.\n")
	w("func (c %s) Name() string {\n", n.column)
	w("\tif d, ok := %s.Column(int(c)); ok {\n\t\treturn d.Name\n\t}\n\treturn \"\"\n}\n\n", n.def)
	w("func (c %s) String() string {\n\treturn %q + c.Name()\n}\n\n", n.column, t.Name+".")

	w("// %s returns the column with the exact name.\n", n.parse)
	w("func %s(name string) (%s, bool) {\n", n.parse, n.column)
	w("\ti, ok := %s.Index(name)\n\treturn %s(i), ok\n}\n\n", n.def, n.column)

	w("// %s returns every column in declared order.\n", n.columns)
	w("func %s() []%s {\n", n.columns, n.column)
	w("\tcols := make([]%s, len(%s.Columns))\n", n.column, n.def)
	w("\tfor i := range cols {\n\t\tcols[i] = %s(i)\n\t}\n\treturn cols\n}\n\n", n.column)

	w("var %s = &typed.TableDef{\n", n.def)
	w("\tName: %q,\n", t.Name)
	w("\tColumns: []typed.ColumnDef{\n")
	for _, c := range t.Columns {
		if c.Nullable {
			w("\t\t{Name: %q, Kind: %s, Nullable: true},\n", c.Name, kindIdent(c.Ty))
		} else {
			w("\t\t{Name: %q, Kind: %s},\n", c.Name, kindIdent(c.Ty))
		}
	}
	w("\t},\n}\n\n")

	w("// %s is a typed view of the %s table.\n", n.table, t.Name)
	w("type %s struct {\n\t*typed.Table[%s]\n}\n\n", n.table, n.column)
	w("// %s wraps raw and resolves its columns.\n", n.newTable)
	w("func %s(raw fdb.Table, logger *slog.Logger) *%s {\n", n.newTable, n.table)
	w("\treturn &%s{typed.NewTable[%s](%s, raw, logger)}\n}\n\n", n.table, n.column, n.def)

	w("// Rows yields every row in table order.\n")
	w("func (t *%s) Rows() iter.Seq[%s] {\n\treturn typed.Map(t.Table.Rows(), %s)\n}\n\n", n.table, n.row, n.wrap)
	w("// Lookup yields the rows whose primary key equals key.\n")
	w("func (t *%s) Lookup(key int32) iter.Seq[%s] {\n\treturn typed.Map(t.Table.Lookup(key), %s)\n}\n\n", n.table, n.row, n.wrap)
	w("// Find yields the rows of the bucket of indexKey whose column col equals key.\n")
	w("func (t *%s) Find(indexKey int32, col %s, key int32) iter.Seq[%s] {\n", n.table, n.column, n.row)
	w("\treturn typed.Map(t.Table.Find(indexKey, col, key), %s)\n}\n\n", n.wrap)
	w("// Get returns the first row whose primary key equals key.\n")
	w("func (t *%s) Get(key int32) (%s, bool) {\n\treturn typed.First(t.Lookup(key))\n}\n\n", n.table, n.row)

	w("// %s is a typed view of a row of the %s table.\n", n.row, t.Name)
	w("type %s struct {\n\ttyped.Row[%s]\n}\n\n", n.row, n.column)
	w("func %s(r typed.Row[%s]) %s {\n\treturn %s{r}\n}\n", n.wrap, n.column, n.row, n.row)

	for i, c := range t.Columns {
		method, result := accessor(c)
		w("\n// %s reads column %s.\n", n.accessors[i], c.Name)
		w("func (r %s) %s() %s {\n\treturn r.%s(%s)\n}\n", n.row, n.accessors[i], result, method, n.constants[i])
	}
}

func writeDatabase(buf *bytes.Buffer, names []tableNames) {
	w := func(format string, args ...any) { fmt.Fprintf(buf, format, args...) }

	var optional []string
	width := 0
	for _, n := range names {
		width = max(width, len(n.field))
		if n.spec.Optional {
			optional = append(optional, n.spec.Name)
		}
	}

	w("\n// Database holds a typed view of every table. Optional tables are nil\n")
	w("// when the store does not have them.\n")
	w("type Database struct {\n")
	for _, n := range names {
		w("\t%-*s *%s\n", width, n.field, n.table)
	}
	w("}\n\n")

	w("// Open assembles a Database. It fails if a required table is missing or\n")
	w("// if any table cannot be opened.\n")
	w("func Open(tables fdb.Tables, logger *slog.Logger) (*Database, error) {\n")
	w("\tvar (\n")
	if len(optional) > 0 {
		w("\t\traw fdb.Table\n\t\tok  bool\n\t\terr error\n")
	} else {
		w("\t\traw fdb.Table\n\t\terr error\n")
	}
	w("\t)\n\tdb := &Database{}\n")
	for _, n := range names {
		if n.spec.Optional {
			w("\tif raw, ok, err = typed.Optional(tables, %q); err != nil {\n\t\treturn nil, err\n\t}\n", n.spec.Name)
			w("\tif ok {\n\t\tdb.%s = %s(raw, logger)\n\t}\n", n.field, n.newTable)
			continue
		}
		w("\tif raw, err = typed.Require(tables, %q); err != nil {\n\t\treturn nil, err\n\t}\n", n.spec.Name)
		w("\tdb.%s = %s(raw, logger)\n", n.field, n.newTable)
	}
	w("\treturn db, nil\n}\n\n")

	w("// Views returns the present tables in name order.\n")
	w("func (db *Database) Views() []typed.View {\n")
	w("\tviews := make([]typed.View, 0, %d)\n", len(names))
	for _, n := range names {
		if n.spec.Optional {
			w("\tif db.%s != nil {\n\t\tviews = append(views, db.%s.Table)\n\t}\n", n.field, n.field)
			continue
		}
		w("\tviews = append(views, db.%s.Table)\n", n.field)
	}
	w("\treturn views\n}\n\n")

	w("// View returns the present table with the exact name.\n")
	w("func (db *Database) View(name string) (typed.View, bool) {\n")
	w("\tfor _, v := range db.Views() {\n\t\tif v.Name() == name {\n\t\t\treturn v, true\n\t\t}\n\t}\n")
	w("\treturn nil, false\n}\n\n")

	w("// NewView wraps raw as the typed view of the named table.\n")
	w("func NewView(name string, raw fdb.Table, logger *slog.Logger) (typed.View, bool) {\n")
	w("\tswitch name {\n")
	for _, n := range names {
		w("\tcase %q:\n\t\treturn %s(raw, logger).Table, true\n", n.spec.Name, n.newTable)
	}
	w("\t}\n\treturn nil, false\n}\n\n")

	w("// TableNames returns every table name of the schema in name order.\n")
	w("func TableNames() []string {\n\treturn []string{\n")
	for _, n := range names {
		w("\t\t%q,\n", n.spec.Name)
	}
	w("\t}\n}\n\n")

	if len(optional) == 0 {
		w("var optionalTables []string\n\n")
	} else {
		w("var optionalTables = []string{%s}\n\n", quoteList(optional))
	}
	w("// IsOptional reports whether the named table may be absent.\n")
	w("func IsOptional(name string) bool {\n\treturn slices.Contains(optionalTables, name)\n}\n")
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}
