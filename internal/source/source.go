// Package source materializes an FDB row store from exports hosted in SQL
// databases. Each backend lives in its own package and registers itself on
// import:
//
//	import _ "github.com/LUDevNet/paradox-typed-db/internal/source/sqlite"
package source

import (
	"context"
	"errors"
	"slices"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"
)

var (
	// ErrTypeRequired is returned when no source type is configured.
	ErrTypeRequired = errors.New("source type not specified")
	// ErrLocationRequired is returned when neither path nor dsn is set.
	ErrLocationRequired = errors.New("source path or dsn is required")
)

// Config selects and locates a source.
type Config struct {
	Type   string   `koanf:"type" json:"type"`
	Path   string   `koanf:"path" json:"path,omitempty"`
	DSN    string   `koanf:"dsn" json:"dsn,omitempty"`
	Schema string   `koanf:"schema" json:"schema,omitempty"`
	Tables []string `koanf:"tables" json:"tables,omitempty"`
}

// Location returns DSN when set, else Path.
func (c Config) Location() string {
	if c.DSN != "" {
		return c.DSN
	}
	return c.Path
}

// Wants reports whether the table should be loaded. An empty Tables list
// loads everything.
func (c Config) Wants(table string) bool {
	return len(c.Tables) == 0 || slices.Contains(c.Tables, table)
}

// Source loads a whole row store into memory.
type Source interface {
	Load(ctx context.Context, cfg Config) (*mem.Database, error)
}
