// Package sqlite loads row stores from SQLite exports of FDB files, as
// written by the usual fdb-to-sqlite converters.
//
// Import this package with a blank identifier to register the source:
//
//	import _ "github.com/LUDevNet/paradox-typed-db/internal/source/sqlite"
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/internal/source"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// Catalog enumerates sqlite tables and their declared column types.
var Catalog = source.Catalog{
	TablesQuery:  `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
	ColumnsQuery: `SELECT name, type FROM pragma_table_info(?) ORDER BY cid`,
}

// Source reads a sqlite database file.
type Source struct {
	logger *slog.Logger
}

// New creates a sqlite source. If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{logger: logger}
}

// Load opens cfg.Path (or cfg.DSN) read-only and loads every wanted table.
func (s *Source) Load(ctx context.Context, cfg source.Config) (*mem.Database, error) {
	loc := cfg.Location()
	if loc == "" {
		return nil, source.ErrLocationRequired
	}
	if cfg.DSN == "" {
		loc = "file:" + loc + "?mode=ro"
	}

	s.logger.Debug("opening sqlite", slog.String("location", loc))
	db, err := sql.Open("sqlite", loc)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}

	l := &source.SQLLoader{DB: db, Catalog: Catalog, Logger: s.logger}
	return l.Load(ctx, cfg)
}

func init() {
	source.Register("sqlite", func(logger *slog.Logger) source.Source { return New(logger) })
}
