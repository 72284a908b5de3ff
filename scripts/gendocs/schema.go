package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LUDevNet/paradox-typed-db/internal/bindgen"
	"github.com/LUDevNet/paradox-typed-db/internal/schema"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
)

// generateSchemaDocs generates the table reference from the embedded
// CDClient schema.
func generateSchemaDocs(outDir string) error {
	log.Printf("Generating schema docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	spec, err := schema.Parse(cdclient.SchemaDocument())
	if err != nil {
		return err
	}

	filename := filepath.Join(outDir, "tables.md")
	if err := os.WriteFile(filename, tablesDoc(spec).Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated tables.md (%d tables)", len(spec.Tables))
	return nil
}

// tablesDoc lists every table with its columns and generated accessors.
func tablesDoc(spec *schema.Spec) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("Tables", "CDClient tables covered by the typed bindings")
	w.GeneratedMarker()

	w.Header(1, "Tables")
	w.Paragraph("Each table below has a generated binding in " + InlineCode("pkg/cdclient") + ". " +
		"Columns are matched by name when a store is opened. Nullable columns read as absent " +
		"when the store lacks them; required columns fall back to the type default.")

	var index [][]string
	for _, ts := range spec.Sorted() {
		anchor := fmt.Sprintf("[%s](#%s)", ts.Name, strings.ToLower(ts.Name))
		index = append(index, []string{anchor, InlineCode(bindgen.Pascal(ts.Name) + "Table"),
			strconv.Itoa(len(ts.Columns)), yesNo(ts.Optional)})
	}
	w.Table([]string{"Table", "Binding", "Columns", "Optional"}, index)

	for _, ts := range spec.Sorted() {
		w.Header(2, ts.Name)
		if ts.Optional {
			w.Paragraph("Optional: older stores do not have this table and the binding is nil.")
		}
		var rows [][]string
		for i, c := range ts.Columns {
			rows = append(rows, []string{
				strconv.Itoa(i),
				InlineCode(c.Name),
				c.Ty.String(),
				yesNo(c.Nullable),
				InlineCode(bindgen.AccessorName(c.Name) + "()"),
			})
		}
		w.Table([]string{"#", "Column", "Type", "Nullable", "Accessor"}, rows)
	}
	return w
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
