package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/internal/schema"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [table]",
		Short: "Show the schema the bindings were generated from",
		Long: `List the tables of the embedded schema, or the columns of one table with
their value types and nullability. Does not read any source.`,
		Example: `  ptdb schema
  ptdb schema Missions -o json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: tableNameCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := schema.Parse(cdclient.SchemaDocument())
			if err != nil {
				return err
			}
			r := NewCommandContext(cmd).Renderer
			if len(args) == 0 {
				return renderTables(r, spec)
			}
			ts, ok := spec.Table(args[0])
			if !ok {
				return fmt.Errorf("unknown table %q", args[0])
			}
			return renderColumns(r, ts)
		},
	}
}

func renderTables(r *output.Renderer, spec *schema.Spec) error {
	tables := spec.Sorted()
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(tables)
	}
	rows := make([][]string, 0, len(tables))
	for _, ts := range tables {
		rows = append(rows, []string{ts.Name, strconv.Itoa(len(ts.Columns)), strconv.FormatBool(ts.Optional)})
	}
	r.Table([]string{"table", "columns", "optional"}, rows)
	return nil
}

func renderColumns(r *output.Renderer, ts *schema.TableSpec) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(ts)
	}
	rows := make([][]string, 0, len(ts.Columns))
	for i, c := range ts.Columns {
		rows = append(rows, []string{strconv.Itoa(i), c.Name, c.Ty.String(), strconv.FormatBool(c.Nullable)})
	}
	r.Table([]string{"#", "column", "type", "nullable"}, rows)
	return nil
}
