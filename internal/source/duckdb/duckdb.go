// Package duckdb loads row stores from FDB exports kept in DuckDB files.
//
// Import this package with a blank identifier to register the source:
//
//	import _ "github.com/LUDevNet/paradox-typed-db/internal/source/duckdb"
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/internal/source"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Catalog enumerates DuckDB tables through information_schema.
var Catalog = source.Catalog{
	DefaultSchema: "main",
	TablesQuery: `SELECT table_name FROM information_schema.tables ` +
		`WHERE table_schema = ? AND table_type = 'BASE TABLE' ORDER BY table_name`,
	ColumnsQuery: `SELECT column_name, data_type FROM information_schema.columns ` +
		`WHERE table_schema = ? AND table_name = ? ORDER BY ordinal_position`,
}

// Source reads a DuckDB database file.
type Source struct {
	logger *slog.Logger
}

// New creates a duckdb source. If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{logger: logger}
}

// Load opens cfg.Path read-only and loads every wanted table.
func (s *Source) Load(ctx context.Context, cfg source.Config) (*mem.Database, error) {
	path := cfg.Location()
	if path == "" {
		return nil, source.ErrLocationRequired
	}

	s.logger.Debug("opening duckdb", slog.String("path", path))
	db, err := sql.Open("duckdb", path+"?access_mode=read_only")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb connection: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	l := &source.SQLLoader{DB: db, Catalog: Catalog, Logger: s.logger}
	return l.Load(ctx, cfg)
}

func init() {
	source.Register("duckdb", func(logger *slog.Logger) source.Source { return New(logger) })
}
