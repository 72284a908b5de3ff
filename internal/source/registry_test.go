package source

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"
)

type stubSource struct{ logger *slog.Logger }

func (s *stubSource) Load(context.Context, Config) (*mem.Database, error) {
	return mem.NewDatabase(), nil
}

func TestUnknownSourceError_Error(t *testing.T) {
	err := &UnknownSourceError{
		Type:      "fake_db",
		Available: []string{"duckdb", "sqlite"},
	}

	msg := err.Error()
	assert.Contains(t, msg, "fake_db")
	assert.Contains(t, msg, "duckdb")
	assert.Contains(t, msg, "ptdb.yaml", "error should mention config file")
}

func TestRegister(t *testing.T) {
	Register("test_source_internal", func(l *slog.Logger) Source { return &stubSource{logger: l} })

	assert.True(t, IsRegistered("test_source_internal"))
	factory, ok := Get("test_source_internal")
	require.True(t, ok)
	assert.NotNil(t, factory)
	assert.Contains(t, List(), "test_source_internal")
}

func TestNew(t *testing.T) {
	Register("test_source_new", func(l *slog.Logger) Source { return &stubSource{logger: l} })

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
		unknown bool
	}{
		{name: "empty type", cfg: Config{}, wantErr: ErrTypeRequired},
		{name: "unknown type", cfg: Config{Type: "nope"}, unknown: true},
		{name: "registered", cfg: Config{Type: "test_source_new"}},
		{name: "case insensitive", cfg: Config{Type: "TEST_SOURCE_NEW"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(tt.cfg, nil)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.unknown:
				var use *UnknownSourceError
				require.ErrorAs(t, err, &use)
				assert.Equal(t, "nope", use.Type)
				assert.IsIncreasing(t, use.Available)
			default:
				require.NoError(t, err)
				stub, ok := src.(*stubSource)
				require.True(t, ok)
				assert.NotNil(t, stub.logger, "nil logger is replaced")
			}
		})
	}
}

func TestConfig(t *testing.T) {
	assert.Equal(t, "dsn", Config{Path: "p", DSN: "dsn"}.Location())
	assert.Equal(t, "p", Config{Path: "p"}.Location())

	all := Config{}
	assert.True(t, all.Wants("Missions"))

	some := Config{Tables: []string{"Icons"}}
	assert.True(t, some.Wants("Icons"))
	assert.False(t, some.Wants("icons"))
	assert.False(t, some.Wants("Missions"))
}
