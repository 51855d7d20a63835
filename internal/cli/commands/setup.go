package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/dbdialect/internal/cli/config"
	"github.com/leapstack-labs/dbdialect/pkg/core"
	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
)

// CommandContext holds the shared dependencies of a command run.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: NewRenderer(cmd.OutOrStdout(), cfg.OutputFormat),
	}
}

// Dialect builds the configured dialect, applying target options and params.
func (c *CommandContext) Dialect() (database.Dialect, error) {
	d, err := database.New(c.Cfg.Target.Type, c.Logger)
	if err != nil {
		return nil, err
	}
	if cd, ok := d.(database.Configurable); ok {
		if err := cd.Configure(*c.Cfg.Target); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// OpenSession connects to the configured target.
// Returns the session and a cleanup function that must be called (typically via defer).
func (c *CommandContext) OpenSession(ctx context.Context) (*database.Session, func(), error) {
	s, err := database.OpenSession(ctx, *c.Cfg.Target, c.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s target: %w", c.Cfg.Target.Type, err)
	}
	return s, func() { _ = s.Close() }, nil
}

// Out returns the command's output writer.
func (c *CommandContext) Out() io.Writer {
	return c.Renderer.w
}

// getConfig returns the current configuration, or a default DM target when
// no configuration has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	target := &core.TargetConfig{}
	config.ApplyTargetDefaults(target)
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Target:       target,
	}
}
