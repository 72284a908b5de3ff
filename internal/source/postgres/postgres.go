// Package postgres loads row stores from FDB exports hosted in PostgreSQL.
//
// Import this package with a blank identifier to register the source:
//
//	import _ "github.com/LUDevNet/paradox-typed-db/internal/source/postgres"
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/LUDevNet/paradox-typed-db/internal/source"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// Catalog enumerates PostgreSQL tables through information_schema.
var Catalog = source.Catalog{
	DefaultSchema: "public",
	TablesQuery: `SELECT table_name FROM information_schema.tables ` +
		`WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name`,
	ColumnsQuery: `SELECT column_name, data_type FROM information_schema.columns ` +
		`WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position`,
}

// Source reads from a PostgreSQL database.
type Source struct {
	logger *slog.Logger
}

// New creates a postgres source. If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Source{logger: logger}
}

// Load connects with cfg.DSN and loads every wanted table of cfg.Schema.
func (s *Source) Load(ctx context.Context, cfg source.Config) (*mem.Database, error) {
	dsn := cfg.Location()
	if dsn == "" {
		return nil, source.ErrLocationRequired
	}

	s.logger.Debug("connecting to postgres", slog.String("schema", cfg.Schema))
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return s.LoadDB(ctx, db, cfg)
}

// LoadDB loads from an open connection.
func (s *Source) LoadDB(ctx context.Context, db *sql.DB, cfg source.Config) (*mem.Database, error) {
	l := &source.SQLLoader{DB: db, Catalog: Catalog, Logger: s.logger}
	return l.Load(ctx, cfg)
}

func init() {
	source.Register("postgres", func(logger *slog.Logger) source.Source { return New(logger) })
}
