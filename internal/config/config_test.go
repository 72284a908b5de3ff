package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/internal/source"

	// Import source packages to ensure sources are registered via init()
	_ "github.com/LUDevNet/paradox-typed-db/internal/source/duckdb"
	_ "github.com/LUDevNet/paradox-typed-db/internal/source/postgres"
	_ "github.com/LUDevNet/paradox-typed-db/internal/source/sqlite"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("source", "", "")
	fs.String("path", "", "")
	fs.String("dsn", "", "")
	fs.String("schema", "", "")
	fs.StringSlice("tables", nil, "")
	fs.String("log-level", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	return fs
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		errSubstr string
	}{
		{
			name:      "empty type",
			cfg:       Config{Output: "auto"},
			wantErr:   true,
			errSubstr: "source type not specified",
		},
		{
			name: "valid sqlite",
			cfg:  Config{Source: source.Config{Type: "sqlite"}, Output: "auto"},
		},
		{
			name: "valid duckdb uppercase",
			cfg:  Config{Source: source.Config{Type: "DuckDB"}, Output: "json"},
		},
		{
			name:      "unknown type",
			cfg:       Config{Source: source.Config{Type: "mysql"}, Output: "auto"},
			wantErr:   true,
			errSubstr: "unknown source type",
		},
		{
			name:      "unknown output",
			cfg:       Config{Source: source.Config{Type: "sqlite"}, Output: "yaml"},
			wantErr:   true,
			errSubstr: "unknown output mode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default().Source, cfg.Source)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "ptdb.yaml", `
source:
  type: duckdb
  path: data/cdclient.duckdb
  tables: [Missions, Icons]
log_level: debug
output: json
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "ptdb.yaml", cfg.File)
	assert.Equal(t, "duckdb", cfg.Source.Type)
	assert.Equal(t, filepath.Join("data", "cdclient.duckdb"), cfg.Source.Path)
	assert.Equal(t, []string{"Missions", "Icons"}, cfg.Source.Tables)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_ExplicitFileResolvesPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yml", "source:\n  path: cdclient.sqlite\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cdclient.sqlite"), cfg.Source.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "ptdb.yaml", `
source:
  type: duckdb
  path: from-file.duckdb
  schema: file_schema
output: markdown
`)
	t.Setenv("PTDB_SOURCE__TYPE", "postgres")
	t.Setenv("PTDB_SOURCE__SCHEMA", "env_schema")
	t.Setenv("PTDB_SOURCE__TABLES", "Missions,Objects")
	t.Setenv("PTDB_LOG_LEVEL", "error")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--source", "sqlite", "--path", "cli.sqlite", "-o", "text"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Source.Type, "flag beats env")
	assert.Equal(t, "cli.sqlite", cfg.Source.Path, "flag paths are not rebased")
	assert.Equal(t, "env_schema", cfg.Source.Schema, "env beats file")
	assert.Equal(t, []string{"Missions", "Objects"}, cfg.Source.Tables)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
	assert.Equal(t, "text", cfg.Output)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PTDB_OUTPUT", "json")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "sqlite", cfg.Source.Type)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PTDB_SOURCE__TYPE", "oracle")

	_, err := Load("", nil)
	require.Error(t, err)
	var use *source.UnknownSourceError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, "oracle", use.Type)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "source.type", envKey("PTDB_SOURCE__TYPE"))
	assert.Equal(t, "log_level", envKey("PTDB_LOG_LEVEL"))
	assert.Equal(t, "verbose", envKey("PTDB_VERBOSE"))
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "source.type", flagKey("source"))
	assert.Equal(t, "log_level", flagKey("log-level"))
	assert.Equal(t, "output", flagKey("output"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, Default(), FromContext(ctx))
	assert.NotNil(t, GetLogger(ctx))

	cfg := Default()
	cfg.Source.Path = "cdclient.sqlite"
	logger := slog.New(slog.DiscardHandler)
	ctx = WithLogger(WithConfig(ctx, cfg), logger)

	assert.Same(t, cfg, FromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		verbose   bool
		wantDebug bool
		wantInfo  bool
	}{
		{"warn", slog.LevelWarn, false, false, false},
		{"info", slog.LevelInfo, false, false, true},
		{"verbose", slog.LevelWarn, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cfg := &Config{LogLevel: tt.level, Verbose: tt.verbose}
			logger := cfg.NewLogger(buf)

			logger.Debug("loaded table")
			logger.Info("opening store")
			logger.Warn("non-nullable field is null, using default")

			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("loaded table")))
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("opening store")))
			assert.Contains(t, buf.String(), "level=WARN")
		})
	}
}
