// Package commands implements the ptdb subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LUDevNet/paradox-typed-db/internal/cli/output"
	"github.com/LUDevNet/paradox-typed-db/internal/config"
	"github.com/LUDevNet/paradox-typed-db/internal/source"
	"github.com/LUDevNet/paradox-typed-db/pkg/cdclient"
	"github.com/LUDevNet/paradox-typed-db/pkg/fdb/mem"
)

// CommandContext holds the common dependencies of a command.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config and logger the root command stored
// in cmd's context and creates a renderer for cmd's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.FromContext(ctx)
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

// LoadStore materializes the configured source.
func (c *CommandContext) LoadStore(ctx context.Context) (*mem.Database, error) {
	src, err := source.New(c.Cfg.Source, c.Logger)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("loading source",
		slog.String("type", c.Cfg.Source.Type),
		slog.String("path", c.Cfg.Source.Path))
	store, err := src.Load(ctx, c.Cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s source: %w", c.Cfg.Source.Type, err)
	}
	return store, nil
}

// OpenDatabase loads the source and assembles the typed database.
func (c *CommandContext) OpenDatabase(ctx context.Context) (*cdclient.Database, error) {
	store, err := c.LoadStore(ctx)
	if err != nil {
		return nil, err
	}
	return cdclient.Open(store, c.Logger)
}

func parseKey(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: must be a 32-bit integer", s)
	}
	return int32(v), nil
}

// tableNameCompletion completes schema table names.
func tableNameCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cdclient.TableNames(), cobra.ShellCompDirectiveNoFileComp
}
