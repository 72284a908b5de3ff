package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/schema"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
)

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(2, "Flags")
	w.Table([]string{"Option", "Description"}, [][]string{{InlineCode("--output"), "auto|text"}})
	w.CodeBlock("bash", "ptdb check\n")

	assert.Equal(t, "## Flags\n\n"+
		"| Option | Description |\n| --- | --- |\n| `--output` | auto\\|text |\n\n"+
		"```bash\nptdb check\n```\n\n", string(w.Bytes()))
}

func TestCleanHelpers(t *testing.T) {
	assert.Equal(t, "Show the rows of a table", cleanDescription("Show the rows\n  of a table."))
	assert.Equal(t, "ptdb check\n  --strict", cleanExample("    ptdb check\n      --strict\n"))
}

func TestTablesDoc(t *testing.T) {
	spec, err := schema.Parse(cdclient.SchemaDocument())
	require.NoError(t, err)

	doc := string(tablesDoc(spec).Bytes())
	assert.Contains(t, doc, "| [Missions](#missions) | `MissionsTable` |")
	assert.Contains(t, doc, "## JetPackPadComponent\n\nOptional:")
	assert.Contains(t, doc, "| `missionIconID` | Integer | yes | `MissionIconID()` |")
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(filepath.Join(dir, "cli")))
	require.NoError(t, generateSchemaDocs(filepath.Join(dir, "reference")))

	for _, name := range []string{"cli/index.md", "cli/check.md", "cli/dump.md", "cli/info.md", "reference/tables.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	index, err := os.ReadFile(filepath.Join(dir, "cli", "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "`PTDB_SOURCE__TYPE`")
	assert.Contains(t, string(index), "sqlite")
}
