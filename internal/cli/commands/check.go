package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
)

// Table statuses reported by check.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusMissing = "missing"
)

// ErrCheckFailed is returned when the store cannot back the bindings.
var ErrCheckFailed = errors.New("check failed")

// TableReport is the check result of one schema table.
type TableReport struct {
	Table      string   `json:"table"`
	Status     string   `json:"status"`
	Optional   bool     `json:"optional,omitempty"`
	Rows       int      `json:"rows"`
	Unresolved []string `json:"unresolved,omitempty"`
	Extra      []string `json:"extra,omitempty"`
	Duplicates []string `json:"duplicates,omitempty"`
}

// Drifted reports whether the physical table differs from its declaration.
func (r TableReport) Drifted() bool {
	return len(r.Unresolved) > 0 || len(r.Extra) > 0 || len(r.Duplicates) > 0
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a store can back the typed bindings",
		Long: `Load the configured source and compare every schema table with the store.

Each table is reported as present, absent (optional table not in the store)
or missing (required table not in the store), with its row count, declared
columns the store lacks and store columns nothing declares.

The command fails when a required table is missing. With --strict it also
fails on any column drift.`,
		Example: `  # Check a sqlite export
  ptdb check --path cdclient.sqlite

  # Check as JSON
  ptdb check -o json

  # Fail on column drift too
  ptdb check --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unresolved, extra or duplicate columns")
	return cmd
}

func runCheck(cmd *cobra.Command, strict bool) error {
	c := NewCommandContext(cmd)
	store, err := c.LoadStore(cmd.Context())
	if err != nil {
		return err
	}

	reports, err := CheckTables(store, c.Logger)
	if err != nil {
		return err
	}

	if err := renderCheck(c.Renderer, reports); err != nil {
		return err
	}

	var missing, drifted []string
	for _, r := range reports {
		if r.Status == StatusMissing {
			missing = append(missing, r.Table)
		}
		if r.Drifted() {
			drifted = append(drifted, r.Table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required tables missing: %s", ErrCheckFailed, strings.Join(missing, ", "))
	}
	if strict && len(drifted) > 0 {
		return fmt.Errorf("%w: column drift in: %s", ErrCheckFailed, strings.Join(drifted, ", "))
	}
	return nil
}

// CheckTables reports every schema table against tables. Tables are
// resolved concurrently; the result is in schema order.
func CheckTables(tables fdb.Tables, logger *slog.Logger) ([]TableReport, error) {
	names := cdclient.TableNames()
	reports := make([]TableReport, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			r, err := checkTable(tables, name, logger)
			reports[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func checkTable(tables fdb.Tables, name string, logger *slog.Logger) (TableReport, error) {
	r := TableReport{Table: name, Optional: cdclient.IsOptional(name)}

	raw, err := tables.ByName(name)
	if errors.Is(err, fdb.ErrTableNotFound) {
		r.Status = StatusMissing
		if r.Optional {
			r.Status = StatusAbsent
		}
		return r, nil
	}
	if err != nil {
		return r, fmt.Errorf("open table %s: %w", name, err)
	}

	view, ok := cdclient.NewView(name, raw, logger)
	if !ok {
		return r, fmt.Errorf("no binding for table %s", name)
	}
	drift := view.Drift()
	r.Status = StatusPresent
	r.Rows = view.RowCount()
	r.Unresolved = drift.Unresolved
	r.Extra = drift.Extra
	r.Duplicates = drift.Duplicates
	return r, nil
}

func renderCheck(r *output.Renderer, reports []TableReport) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(reports)
	}

	s := r.Styles()
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Check"))
	} else {
		r.Println(s.Header1.Render("Check"))
	}
	r.Println()

	rows := make([][]string, 0, len(reports))
	for _, rep := range reports {
		status := rep.Status
		if r.EffectiveMode() == output.ModeText {
			status = s.Status(status)
		}
		rows = append(rows, []string{
			rep.Table,
			status,
			strconv.Itoa(rep.Rows),
			strings.Join(rep.Unresolved, ", "),
			strings.Join(slices.Concat(rep.Extra, rep.Duplicates), ", "),
		})
	}
	r.Table([]string{"table", "status", "rows", "unresolved", "extra"}, rows)
	return nil
}
