package commands

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb"
	"github.com/LUDevNet/paradox-typed-db/pkg/typed"
)

const (
	replPrompt   = "ptdb> "
	defaultScanN = 10
	historyDir   = "ptdb"
	historyFile  = "repl_history"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	var history string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Browse the store interactively",
		Long: `Load the configured source once and look up rows interactively.

Type a table name and a key to print the rows with that primary key, or
.help for the other commands. Tab completes table names.`,
		Example: `  ptdb repl --path cdclient.sqlite
  ptdb> Missions 173
  ptdb> .scan Icons 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, history)
		},
	}

	cmd.Flags().StringVar(&history, "history", defaultHistoryFile(), "History file (empty to disable)")
	return cmd
}

func defaultHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, historyDir, historyFile)
}

func runRepl(cmd *cobra.Command, history string) error {
	c := NewCommandContext(cmd)
	store, err := c.LoadStore(cmd.Context())
	if err != nil {
		return err
	}
	s := newReplSession(store, c.Logger, c.Renderer, cmd.ErrOrStderr())

	if history != "" {
		if err := os.MkdirAll(filepath.Dir(history), 0o750); err != nil {
			c.Logger.Warn("history disabled", slog.String("error", err.Error()))
			history = ""
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     history,
		AutoComplete:    s.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	c.Renderer.Printf("ptdb REPL (%s source, %d tables)\n", c.Cfg.Source.Type, len(s.names))
	c.Renderer.Println("Type .help for commands, .quit to exit")
	c.Renderer.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if s.Exec(line) {
			break
		}
	}
	return nil
}

// replSession holds the views of the tables the store has.
type replSession struct {
	views  map[string]typed.View
	names  []string
	r      *output.Renderer
	errOut io.Writer
}

func newReplSession(store fdb.Tables, logger *slog.Logger, r *output.Renderer, errOut io.Writer) *replSession {
	s := &replSession{views: map[string]typed.View{}, r: r, errOut: errOut}
	for _, name := range cdclient.TableNames() {
		raw, err := store.ByName(name)
		if err != nil {
			continue
		}
		if v, ok := cdclient.NewView(name, raw, logger); ok {
			s.views[name] = v
			s.names = append(s.names, name)
		}
	}
	return s
}

// Exec runs one input line and reports whether the session should end.
func (s *replSession) Exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields := strings.Fields(line)

	if strings.HasPrefix(line, ".") {
		return s.dot(fields)
	}
	if len(fields) != 2 {
		s.fail(errors.New("usage: <Table> <key>"))
		return false
	}
	view, err := s.view(fields[0])
	if err != nil {
		s.fail(err)
		return false
	}
	key, err := parseKey(fields[1])
	if err != nil {
		s.fail(err)
		return false
	}
	s.render(view, view.LookupRecords(key))
	return false
}

func (s *replSession) dot(fields []string) bool {
	switch cmd := strings.ToLower(fields[0]); cmd {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(s.r.Writer())

	case ".tables":
		rows := make([][]string, 0, len(s.names))
		for _, name := range s.names {
			rows = append(rows, []string{name, strconv.Itoa(s.views[name].RowCount())})
		}
		s.r.Table([]string{"table", "rows"}, rows)

	case ".columns":
		if len(fields) < 2 {
			s.fail(errors.New("usage: .columns <Table>"))
			return false
		}
		view, err := s.view(fields[1])
		if err != nil {
			s.fail(err)
			return false
		}
		rows := make([][]string, 0, len(view.Def().Columns))
		for i, col := range view.Def().Columns {
			rows = append(rows, []string{
				strconv.Itoa(i),
				col.Name,
				col.Kind.String(),
				strconv.FormatBool(col.Nullable),
				strconv.FormatBool(view.HasColumn(col.Name)),
			})
		}
		s.r.Table([]string{"#", "column", "type", "nullable", "present"}, rows)

	case ".scan":
		if len(fields) < 2 {
			s.fail(errors.New("usage: .scan <Table> [n]"))
			return false
		}
		view, err := s.view(fields[1])
		if err != nil {
			s.fail(err)
			return false
		}
		n := defaultScanN
		if len(fields) > 2 {
			if n, err = strconv.Atoi(fields[2]); err != nil {
				s.fail(fmt.Errorf("invalid row count %q", fields[2]))
				return false
			}
		}
		s.render(view, Limit(view.Records(), n))

	case ".clear":
		s.r.Printf("\033[H\033[2J")

	default:
		s.fail(fmt.Errorf("unknown command: %s (type .help for commands)", cmd))
	}
	return false
}

// view finds a table by exact name, then case-insensitively.
func (s *replSession) view(name string) (typed.View, error) {
	if v, ok := s.views[name]; ok {
		return v, nil
	}
	for _, n := range s.names {
		if strings.EqualFold(n, name) {
			return s.views[n], nil
		}
	}
	return nil, fmt.Errorf("unknown table %q (type .tables to list)", name)
}

func (s *replSession) render(view typed.View, records iter.Seq[typed.Record]) {
	if err := renderRecords(s.r, view.Def(), records); err != nil {
		s.fail(err)
	}
}

func (s *replSession) fail(err error) {
	_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
}

func (s *replSession) completer() *readline.PrefixCompleter {
	tables := make([]readline.PrefixCompleterInterface, len(s.names))
	for i, name := range s.names {
		tables[i] = readline.PcItem(name)
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(s.names)+6)
	for _, name := range s.names {
		items = append(items, readline.PcItem(name))
	}
	items = append(items,
		readline.PcItem(".scan", tables...),
		readline.PcItem(".columns", tables...),
		readline.PcItem(".tables"),
		readline.PcItem(".help"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
	)
	return readline.NewPrefixCompleter(items...)
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  <Table> <key>        Show the rows of a table with the primary key
  .scan <Table> [n]    Show the first n rows of a table (default 10)
  .tables              List the tables of the store
  .columns <Table>     Show the declared columns of a table
  .clear               Clear the screen
  .quit / .exit        Exit the REPL

Tips:
  - Table names are matched case-insensitively
  - Tab completion works for table names
`
	_, _ = fmt.Fprintln(w, help)
}
