package commands

import (
	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
)

// NewURLCommand creates the url command.
func NewURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Show the driver and connection URL for the target",
		Long: `Resolve the configured target into the database/sql driver name and
connection URL the dialect builds for its access mode.

An explicit dsn in the configuration is shown as-is.`,
		Example: `  # URL for the configured target
  dbdialect url

  # Override connection values
  dbdialect url --host db1 --port 5237 --database SALES

  # ODBC access
  dbdialect url --access odbc --database DM_DSN`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			d, err := cmdCtx.Dialect()
			if err != nil {
				return err
			}

			driver, url, err := database.NewSession(d, cmdCtx.Logger).DataSource(*cmdCtx.Cfg.Target)
			if err != nil {
				return err
			}

			return cmdCtx.Renderer.KeyValue(
				[][2]string{{"driver", driver}, {"url", url}},
				map[string]string{"driver": driver, "url": url},
			)
		},
	}
}
