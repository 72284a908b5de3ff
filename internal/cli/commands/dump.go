package commands

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
	"github.com/LUDevNet/paradox-typed-db/pkg/typed"
)

// DumpOptions holds the dump flags.
type DumpOptions struct {
	Limit int
	Key   string
}

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	opts := &DumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <table>",
		Short: "Print the rows of a table through its typed binding",
		Long: `Print the rows of a schema table in declared column order.

Without --key every row is printed in bucket order. With --key only the rows
whose primary key equals the key are printed. Values the store lacks print as
NULL in tables and null in JSON.`,
		Example: `  # First ten missions
  ptdb dump Missions --limit 10

  # All tasks of mission 173 as JSON
  ptdb dump MissionTasks --key 173 -o json`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: tableNameCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Maximum number of rows (0 for all)")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "Only rows with this primary key")
	return cmd
}

func runDump(cmd *cobra.Command, name string, opts *DumpOptions) error {
	c := NewCommandContext(cmd)
	store, err := c.LoadStore(cmd.Context())
	if err != nil {
		return err
	}

	raw, err := typed.Require(store, name)
	if err != nil {
		return err
	}
	view, ok := cdclient.NewView(name, raw, c.Logger)
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}

	records := view.Records()
	if opts.Key != "" {
		key, err := parseKey(opts.Key)
		if err != nil {
			return err
		}
		records = view.LookupRecords(key)
	}
	return renderRecords(c.Renderer, view.Def(), Limit(records, opts.Limit))
}

// Limit yields at most n elements of seq; n <= 0 yields all.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i == n || !yield(v) {
				return
			}
			i++
		}
	}
}

func renderRecords(r *output.Renderer, def *typed.TableDef, records iter.Seq[typed.Record]) error {
	if r.EffectiveMode() == output.ModeJSON {
		all := []typed.Record{}
		for rec := range records {
			all = append(all, rec)
		}
		return r.JSON(all)
	}

	header := make([]string, len(def.Columns))
	for i, col := range def.Columns {
		header[i] = col.Name
	}
	var rows [][]string
	for rec := range records {
		row := make([]string, len(rec.Fields))
		for i, f := range rec.Fields {
			row[i] = FormatValue(f.Value)
		}
		rows = append(rows, row)
	}
	r.Table(header, rows)
	return nil
}

// FormatValue renders a record value for a table cell.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case fdb.Latin1Str:
		return x.Decode()
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
