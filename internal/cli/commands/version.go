package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/leapstack-labs/dbdialect/pkg/database"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display dbdialect version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dbdialect v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Database dialect toolkit built with %s\n", runtime.Version())
			if names := database.List(); len(names) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dialects: %s\n", strings.Join(names, ", "))
			}
		},
	}
}
